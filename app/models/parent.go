package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Parent is one row of the Parents sheet: the contact directory entry for a
// student's guardian.
type Parent struct {
	ID          string `json:"id"`
	Student     string `json:"student"`
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LastContact string `json:"lastContact"`
}

func ParentFromRow(r tabular.Row) Parent {
	return Parent{
		ID:          r.Cell(0, ""),
		Student:     r.Cell(1, ""),
		Name:        r.Cell(2, ""),
		Relation:    r.Cell(3, ""),
		Phone:       r.Cell(4, ""),
		Email:       r.Cell(5, ""),
		LastContact: r.Cell(6, ""),
	}
}
