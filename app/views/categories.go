package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// CategoryBreakdown is the per-caste detail row: member counts split by
// gender and by performance category.
type CategoryBreakdown struct {
	Category       string `json:"category"`
	Total          int    `json:"total"`
	Boys           int    `json:"boys"`
	Girls          int    `json:"girls"`
	BrightLearners int    `json:"brightLearners"`
	LateBloomers   int    `json:"lateBloomers"`
}

type CategoriesView struct {
	CasteCounts   []tabular.LabelCount `json:"casteCounts"`
	ServiceCounts []tabular.LabelCount `json:"serviceCounts"`
	Breakdown     []CategoryBreakdown  `json:"breakdown"`
}

// Categories builds caste and service-category distributions. Caste counts
// run against the fixed label set; service categories are whatever distinct
// values the roster holds.
func (a *Assembler) Categories(ctx context.Context) (*CategoriesView, error) {
	var studentTable, perfTable [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		studentTable, err = a.Store.Table(gctx, tableStudents, rangeStudents)
		return err
	})
	g.Go(func() (err error) {
		perfTable, err = a.Store.Table(gctx, tablePerformance, rangePerformance)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("categories tables: %w", err)
	}

	students := tabular.MapRows(studentTable, models.StudentFromRow)
	performance := tabular.MapRows(perfTable, models.PerformanceFromRow)
	perfIx := tabular.NewIndex(performance, func(p models.Performance) string { return p.RollNo })

	view := &CategoriesView{
		CasteCounts: tabular.CountByLabels(students, func(s models.Student) string {
			return s.Category
		}, casteCategories),
		ServiceCounts: tabular.CountDistinct(students, func(s models.Student) string {
			return s.ServiceCategory
		}),
		Breakdown: make([]CategoryBreakdown, 0, len(casteCategories)),
	}

	// For each fixed category, filter the roster and probe the performance
	// sheet per member. Indices are pre-built, so the nested lookup stays
	// cheap at single-school volumes.
	for _, category := range casteCategories {
		members := tabular.Filter(students, func(s models.Student) bool {
			return s.Category == category
		})
		row := CategoryBreakdown{
			Category: category,
			Total:    len(members),
			Boys: tabular.CountWhere(members, func(s models.Student) bool {
				return s.Gender == "Male"
			}),
			Girls: tabular.CountWhere(members, func(s models.Student) bool {
				return s.Gender == "Female"
			}),
		}
		for _, m := range members {
			p, ok := perfIx.FindOne(m.RollNo)
			if !ok {
				continue
			}
			switch p.Category {
			case "Bright Learner":
				row.BrightLearners++
			case "Late Bloomer":
				row.LateBloomers++
			}
		}
		view.Breakdown = append(view.Breakdown, row)
	}

	return view, nil
}
