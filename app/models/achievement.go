package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Achievement is one row of the Achievements sheet. Achievements reference
// students by name, not roll number.
type Achievement struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StudentName string `json:"studentName"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func AchievementFromRow(r tabular.Row) Achievement {
	return Achievement{
		ID:          r.Cell(0, ""),
		Date:        r.Cell(1, ""),
		StudentName: r.Cell(2, ""),
		Title:       r.Cell(3, ""),
		Description: r.Cell(4, ""),
	}
}
