package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Teacher is one row of the Teachers sheet.
type Teacher struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	Class      string `json:"class"`
	Department string `json:"department"`
}

func TeacherFromRow(r tabular.Row) Teacher {
	return Teacher{
		ID:         r.Cell(0, ""),
		Name:       r.Cell(1, ""),
		Subject:    r.Cell(2, ""),
		Class:      r.Cell(3, ""),
		Department: r.Cell(4, ""),
	}
}
