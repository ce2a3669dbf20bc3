package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// SyllabusTopic is one row of the Syllabus sheet: a single topic within a
// unit, with planned and actual hours.
type SyllabusTopic struct {
	ID             string `json:"id"`
	Unit           string `json:"unit"`
	Name           string `json:"name"`
	ExpectedHours  int    `json:"expectedHours"`
	TimeSpent      int    `json:"timeSpent"`
	Status         string `json:"status"`
	StartDate      string `json:"startDate"`
	CompletionDate string `json:"completionDate"`
	TopicGroup     string `json:"topicGroup"`
}

func SyllabusTopicFromRow(r tabular.Row) SyllabusTopic {
	return SyllabusTopic{
		ID:             r.Cell(0, ""),
		Unit:           r.Cell(1, ""),
		Name:           r.Cell(2, ""),
		ExpectedHours:  r.CellInt(3, 0),
		TimeSpent:      r.CellInt(4, 0),
		Status:         r.Cell(5, "Not Started"),
		StartDate:      r.Cell(6, ""),
		CompletionDate: r.Cell(7, ""),
		TopicGroup:     r.Cell(8, ""),
	}
}
