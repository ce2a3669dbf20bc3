package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Workshop is one row of the Workshops or ServiceCourses sheet; both share
// the same column layout.
type Workshop struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Duration      string   `json:"duration"`
	Status        string   `json:"status"`
	SessionDates  []string `json:"-"`
	SessionTopics []string `json:"-"`
}

func WorkshopFromRow(r tabular.Row) Workshop {
	return Workshop{
		ID:            r.Cell(0, ""),
		Title:         r.Cell(1, ""),
		Duration:      r.Cell(2, ""),
		Status:        r.Cell(3, "Scheduled"),
		SessionDates:  r.CellList(4),
		SessionTopics: r.CellList(5),
	}
}
