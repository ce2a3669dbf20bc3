package views

import (
	"context"
	"fmt"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// Authenticate resolves an employee ID against the Authentication sheet.
// An unknown ID is ErrUnauthorized, not ErrNotFound: auth reports 401.
func (a *Assembler) Authenticate(ctx context.Context, employeeID string) (models.Credential, error) {
	if employeeID == "" {
		return models.Credential{}, fmt.Errorf("%w: employee ID is required", ErrValidation)
	}

	table, err := a.Store.Table(ctx, tableAuthentication, rangeAuthentication)
	if err != nil {
		return models.Credential{}, err
	}

	creds := tabular.MapRows(table, models.CredentialFromRow)
	ix := tabular.NewIndex(creds, func(c models.Credential) string { return c.EmployeeID })
	cred, ok := ix.FindOne(employeeID)
	if !ok {
		return models.Credential{}, fmt.Errorf("%w: unknown employee ID", ErrUnauthorized)
	}
	return cred, nil
}
