package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Attendance is one row of the Attendance sheet. Dates are YYYY-MM-DD
// strings; membership tests compare them by string equality.
type Attendance struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
}

func AttendanceFromRow(r tabular.Row) Attendance {
	return Attendance{
		ID:        r.Cell(0, ""),
		Date:      r.Cell(1, ""),
		StudentID: r.Cell(2, ""),
		Status:    r.Cell(3, "Absent"),
		Remarks:   r.Cell(4, ""),
	}
}
