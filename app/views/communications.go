package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

type CommunicationStats struct {
	Total    int                  `json:"total"`
	ByType   []tabular.LabelCount `json:"byType"`
	ByStatus []tabular.LabelCount `json:"byStatus"`
}

type CommunicationsView struct {
	Logs    []models.Communication `json:"logs"`
	Parents []models.Parent        `json:"parents"`
	Stats   CommunicationStats     `json:"stats"`
}

// Communications returns the contact log, the parent directory and dynamic
// counts over the log's type and status columns.
func (a *Assembler) Communications(ctx context.Context) (*CommunicationsView, error) {
	var commTable, parentTable [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		commTable, err = a.Store.Table(gctx, tableCommunications, rangeCommunications)
		return err
	})
	g.Go(func() (err error) {
		parentTable, err = a.Store.Table(gctx, tableParents, rangeParents)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("communications tables: %w", err)
	}

	logs := tabular.MapRows(commTable, models.CommunicationFromRow)
	parents := tabular.MapRows(parentTable, models.ParentFromRow)
	if logs == nil {
		logs = []models.Communication{}
	}
	if parents == nil {
		parents = []models.Parent{}
	}

	return &CommunicationsView{
		Logs:    logs,
		Parents: parents,
		Stats: CommunicationStats{
			Total: len(logs),
			ByType: tabular.CountDistinct(logs, func(c models.Communication) string {
				return c.Type
			}),
			ByStatus: tabular.CountDistinct(logs, func(c models.Communication) string {
				return c.Status
			}),
		},
	}, nil
}
