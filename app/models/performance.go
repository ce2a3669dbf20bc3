package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Performance is one row of the Performance sheet, keyed by the student's
// roll number. Strengths and weaknesses arrive as comma-joined cells.
type Performance struct {
	RollNo     string   `json:"rollNo"`
	Summary    string   `json:"summary"`
	Category   string   `json:"category"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Report     string   `json:"report"`
}

func PerformanceFromRow(r tabular.Row) Performance {
	return Performance{
		RollNo:     r.Cell(0, ""),
		Summary:    r.Cell(1, ""),
		Category:   r.Cell(2, ""),
		Strengths:  r.CellList(3),
		Weaknesses: r.CellList(4),
		Report:     r.Cell(5, ""),
	}
}
