package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Discipline is one row of the Discipline sheet.
type Discipline struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StudentName string `json:"studentName"`
	RollNo      string `json:"rollNo"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

func DisciplineFromRow(r tabular.Row) Discipline {
	return Discipline{
		ID:          r.Cell(0, ""),
		Date:        r.Cell(1, ""),
		StudentName: r.Cell(2, ""),
		RollNo:      r.Cell(3, ""),
		Description: r.Cell(4, ""),
		Action:      r.Cell(5, "Pending"),
	}
}
