package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Communication is one row of the Communications sheet: one logged contact
// with a parent.
type Communication struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Student string `json:"student"`
	Parent  string `json:"parent"`
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
}

func CommunicationFromRow(r tabular.Row) Communication {
	return Communication{
		ID:      r.Cell(0, ""),
		Date:    r.Cell(1, ""),
		Student: r.Cell(2, ""),
		Parent:  r.Cell(3, ""),
		Type:    r.Cell(4, ""),
		Subject: r.Cell(5, ""),
		Status:  r.Cell(6, "Pending"),
	}
}
