package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Assessment is one row of the Assessments sheet.
type Assessment struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	MaxScore int    `json:"maxScore"`
	Status   string `json:"status"`
}

func AssessmentFromRow(r tabular.Row) Assessment {
	return Assessment{
		ID:       r.Cell(0, ""),
		Date:     r.Cell(1, ""),
		Title:    r.Cell(2, ""),
		Type:     r.Cell(3, ""),
		MaxScore: r.CellInt(4, 100),
		Status:   r.Cell(5, "Upcoming"),
	}
}
