package views

import (
	"context"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// Discipline returns the discipline log in row order.
func (a *Assembler) Discipline(ctx context.Context) ([]models.Discipline, error) {
	table, err := a.Store.Table(ctx, tableDiscipline, rangeDiscipline)
	if err != nil {
		return nil, err
	}
	records := tabular.MapRows(table, models.DisciplineFromRow)
	if records == nil {
		records = []models.Discipline{}
	}
	return records, nil
}
