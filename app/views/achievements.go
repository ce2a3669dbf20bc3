package views

import (
	"context"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// Achievements returns the achievements log in row order.
func (a *Assembler) Achievements(ctx context.Context) ([]models.Achievement, error) {
	table, err := a.Store.Table(ctx, tableAchievements, rangeAchievements)
	if err != nil {
		return nil, err
	}
	records := tabular.MapRows(table, models.AchievementFromRow)
	if records == nil {
		records = []models.Achievement{}
	}
	return records, nil
}
