package views

import (
	"context"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// Enrollment returns the full student roster in row order.
func (a *Assembler) Enrollment(ctx context.Context) ([]models.Student, error) {
	table, err := a.Store.Table(ctx, tableStudents, rangeStudents)
	if err != nil {
		return nil, err
	}
	students := tabular.MapRows(table, models.StudentFromRow)
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}
