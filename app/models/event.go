package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Event is one row of the Events sheet: a dated calendar entry.
type Event struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

func EventFromRow(r tabular.Row) Event {
	return Event{
		ID:          r.Cell(0, ""),
		Date:        r.Cell(1, ""),
		Title:       r.Cell(2, ""),
		Type:        r.Cell(3, "General"),
		Time:        r.Cell(4, ""),
		Description: r.Cell(5, ""),
	}
}
