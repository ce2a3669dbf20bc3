package models

import "github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"

// Credential is one row of the Authentication sheet: an employee ID and its
// placeholder access token.
type Credential struct {
	EmployeeID string `json:"employeeId"`
	Token      string `json:"-"`
}

func CredentialFromRow(r tabular.Row) Credential {
	return Credential{
		EmployeeID: r.Cell(0, ""),
		Token:      r.Cell(1, ""),
	}
}
