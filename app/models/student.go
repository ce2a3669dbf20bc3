package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Student is one row of the Students sheet. RollNo is the natural key used
// to cross-reference performance, discipline and attendance records.
type Student struct {
	RollNo          string `json:"rollNo"`
	Name            string `json:"name"`
	Gender          string `json:"gender"`
	Category        string `json:"category"`
	ServiceCategory string `json:"serviceCategory"`
	Contact         string `json:"contact"`
	Status          string `json:"status"`
}

func StudentFromRow(r tabular.Row) Student {
	return Student{
		RollNo:          r.Cell(0, ""),
		Name:            r.Cell(1, ""),
		Gender:          r.Cell(2, ""),
		Category:        r.Cell(3, ""),
		ServiceCategory: r.Cell(4, ""),
		Contact:         r.Cell(5, ""),
		Status:          r.Cell(6, "Active"),
	}
}
