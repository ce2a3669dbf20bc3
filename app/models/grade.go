package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Grade is one row of the Grades sheet, keyed by assessment ID.
type Grade struct {
	AssessmentID string `json:"assessmentId"`
	StudentID    string `json:"studentId"`
	Score        int    `json:"score"`
	Percentage   int    `json:"percentage"`
	Grade        string `json:"grade"`
}

func GradeFromRow(r tabular.Row) Grade {
	return Grade{
		AssessmentID: r.Cell(0, ""),
		StudentID:    r.Cell(1, ""),
		Score:        r.CellInt(2, 0),
		Percentage:   r.CellInt(3, 0),
		Grade:        r.Cell(4, ""),
	}
}
