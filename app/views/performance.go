package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// PerformanceEntry is one student joined with their performance record.
type PerformanceEntry struct {
	RollNo     string   `json:"rollNo"`
	Name       string   `json:"name"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Report     string   `json:"report"`
}

type PerformanceView struct {
	BrightLearners []PerformanceEntry `json:"brightLearners"`
	LateBloomers   []PerformanceEntry `json:"lateBloomers"`
}

// Performance joins the roster against the Performance sheet by roll number
// and splits the result by performance category, preserving roster order.
func (a *Assembler) Performance(ctx context.Context) (*PerformanceView, error) {
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
		return nil, fmt.Errorf("performance tables: %w", err)
	}

	students := tabular.MapRows(studentTable, models.StudentFromRow)
	performance := tabular.MapRows(perfTable, models.PerformanceFromRow)
	perfIx := tabular.NewIndex(performance, func(p models.Performance) string { return p.RollNo })

	view := &PerformanceView{
		BrightLearners: []PerformanceEntry{},
		LateBloomers:   []PerformanceEntry{},
	}
	for _, s := range students {
		p, ok := perfIx.FindOne(s.RollNo)
		if !ok {
			continue
		}
		entry := PerformanceEntry{
			RollNo:     s.RollNo,
			Name:       s.Name,
			Summary:    p.Summary,
			Strengths:  p.Strengths,
			Weaknesses: p.Weaknesses,
			Report:     p.Report,
		}
		switch p.Category {
		case "Bright Learner":
			view.BrightLearners = append(view.BrightLearners, entry)
		case "Late Bloomer":
			view.LateBloomers = append(view.LateBloomers, entry)
		}
	}
	return view, nil
}
