package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// TeacherInfo returns one teacher's profile. An empty id selects the first
// data row; an unknown id is a 404.
func (a *Assembler) TeacherInfo(ctx context.Context, id string) (*models.Teacher, error) {
	table, err := a.Store.Table(ctx, tableTeachers, rangeTeachers)
	if err != nil {
		return nil, err
	}
	teachers := tabular.MapRows(table, models.TeacherFromRow)

	if id == "" {
		if len(teachers) == 0 {
			return nil, errors.New("teachers sheet has no data rows")
		}
		t := teachers[0]
		return &t, nil
	}

	ix := tabular.NewIndex(teachers, func(t models.Teacher) string { return t.ID })
	t, ok := ix.FindOne(id)
	if !ok {
		return nil, fmt.Errorf("%w: teacher %s", ErrNotFound, id)
	}
	return &t, nil
}
