package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// AssessmentRef names an assessment for the summary cards.
type AssessmentRef struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// GradeBucket is one bar of the grade distribution. A bucket whose true
// count is zero carries the fixed literal fallback and is flagged synthetic.
type GradeBucket struct {
	Grade     string `json:"grade"`
	Count     int    `json:"count"`
	Synthetic bool   `json:"synthetic"`
}

// AssessmentTrendPoint is the average score of one completed assessment.
type AssessmentTrendPoint struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	Average int    `json:"average"`
}

type AssessmentsView struct {
	Assessments           []models.Assessment    `json:"assessments"`
	NextAssessment        AssessmentRef          `json:"nextAssessment"`
	NextSynthetic         bool                   `json:"nextSynthetic"`
	LastAssessment        *AssessmentRef         `json:"lastAssessment"`
	LastAssessmentAverage int                    `json:"lastAssessmentAverage"`
	GradeDistribution     []GradeBucket          `json:"gradeDistribution"`
	Trend                 []AssessmentTrendPoint `json:"trend"`
}

// Assessments joins the Assessments and Grades sheets by assessment ID:
// upcoming/completed picks, the grade distribution and a per-assessment
// average trend.
func (a *Assembler) Assessments(ctx context.Context) (*AssessmentsView, error) {
	var assessmentTable, gradeTable [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		assessmentTable, err = a.Store.Table(gctx, tableAssessments, rangeAssessments)
		return err
	})
	g.Go(func() (err error) {
		gradeTable, err = a.Store.Table(gctx, tableGrades, rangeGrades)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assessments tables: %w", err)
	}

	assessments := tabular.MapRows(assessmentTable, models.AssessmentFromRow)
	grades := tabular.MapRows(gradeTable, models.GradeFromRow)
	gradeIx := tabular.NewIndex(grades, func(g models.Grade) string { return g.AssessmentID })

	view := &AssessmentsView{
		Assessments: assessments,
		Trend:       []AssessmentTrendPoint{},
	}
	if view.Assessments == nil {
		view.Assessments = []models.Assessment{}
	}

	// Next: earliest upcoming assessment; placeholder literal when none.
	upcoming := sortByDate(tabular.Filter(assessments, func(x models.Assessment) bool {
		return x.Status == "Upcoming"
	}), func(x models.Assessment) string { return x.Date }, true)
	if len(upcoming) > 0 {
		view.NextAssessment = AssessmentRef{Date: upcoming[0].Date, Name: upcoming[0].Title}
	} else {
		view.NextAssessment = AssessmentRef{
			Date: tabular.NextAssessmentDate,
			Name: tabular.NextAssessmentName,
		}
		view.NextSynthetic = true
	}

	// Last: latest completed assessment, averaged over its grade rows.
	completed := sortByDate(tabular.Filter(assessments, func(x models.Assessment) bool {
		return x.Status == "Completed"
	}), func(x models.Assessment) string { return x.Date }, false)
	view.LastAssessmentAverage = tabular.LastAssessmentAverage
	if len(completed) > 0 {
		last := completed[0]
		view.LastAssessment = &AssessmentRef{Date: last.Date, Name: last.Title}
		view.LastAssessmentAverage = tabular.RoundedMean(
			gradePercentages(gradeIx.FindAll(last.ID)),
			tabular.LastAssessmentAverage,
		)
	}

	counts := tabular.CountByLabels(grades, func(g models.Grade) string { return g.Grade }, gradeLabels)
	view.GradeDistribution = make([]GradeBucket, 0, len(counts))
	for _, c := range counts {
		bucket := GradeBucket{Grade: c.Label, Count: c.Count}
		if c.Count == 0 {
			bucket.Count = tabular.GradeBucketCount(c.Label)
			bucket.Synthetic = true
		}
		view.GradeDistribution = append(view.GradeDistribution, bucket)
	}

	// Trend over completed assessments, oldest first. Assessments with no
	// grade rows contribute nothing to the trend.
	for _, x := range sortByDate(tabular.Filter(assessments, func(x models.Assessment) bool {
		return x.Status == "Completed"
	}), func(x models.Assessment) string { return x.Date }, true) {
		pcts := gradePercentages(gradeIx.FindAll(x.ID))
		if len(pcts) == 0 {
			continue
		}
		view.Trend = append(view.Trend, AssessmentTrendPoint{
			Date:    x.Date,
			Name:    x.Title,
			Average: tabular.RoundedMean(pcts, 0),
		})
	}

	return view, nil
}

func gradePercentages(grades []models.Grade) []int {
	out := make([]int, 0, len(grades))
	for _, g := range grades {
		out = append(out, g.Percentage)
	}
	return out
}
