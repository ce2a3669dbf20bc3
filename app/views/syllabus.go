package views

import (
	"context"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// UnitProgress summarizes one syllabus unit: topic completion plus planned
// versus actual hours. Units are discovered dynamically, in the order they
// first appear in the sheet.
type UnitProgress struct {
	Unit          string `json:"unit"`
	TotalTopics   int    `json:"totalTopics"`
	Completed     int    `json:"completed"`
	Percent       int    `json:"percent"`
	ExpectedHours int    `json:"expectedHours"`
	TimeSpent     int    `json:"timeSpent"`
}

type UpcomingTopic struct {
	Unit      string `json:"unit"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
}

type SyllabusView struct {
	Units          []UnitProgress       `json:"units"`
	TopicGroups    []tabular.LabelCount `json:"topicGroups"`
	UpcomingTopics []UpcomingTopic      `json:"upcomingTopics"`
	OverallPercent int                  `json:"overallPercent"`
}

func (a *Assembler) Syllabus(ctx context.Context) (*SyllabusView, error) {
	table, err := a.Store.Table(ctx, tableSyllabus, rangeSyllabus)
	if err != nil {
		return nil, err
	}
	topics := tabular.MapRows(table, models.SyllabusTopicFromRow)

	view := &SyllabusView{
		Units: []UnitProgress{},
		TopicGroups: tabular.CountDistinct(topics, func(t models.SyllabusTopic) string {
			return t.TopicGroup
		}),
		UpcomingTopics: []UpcomingTopic{},
	}

	byUnit := make(map[string]int)
	for _, t := range topics {
		i, seen := byUnit[t.Unit]
		if !seen {
			i = len(view.Units)
			byUnit[t.Unit] = i
			view.Units = append(view.Units, UnitProgress{Unit: t.Unit})
		}
		u := &view.Units[i]
		u.TotalTopics++
		u.ExpectedHours += t.ExpectedHours
		u.TimeSpent += t.TimeSpent
		if t.Status == "Completed" {
			u.Completed++
		}
	}
	var total, done int
	for i := range view.Units {
		u := &view.Units[i]
		u.Percent = tabular.Percent(u.Completed, u.TotalTopics, 0)
		total += u.TotalTopics
		done += u.Completed
	}
	view.OverallPercent = tabular.Percent(done, total, 0)

	pending := sortByDate(tabular.Filter(topics, func(t models.SyllabusTopic) bool {
		return t.Status != "Completed"
	}), func(t models.SyllabusTopic) string { return t.StartDate }, true)
	for i, t := range pending {
		if i == 3 {
			break
		}
		view.UpcomingTopics = append(view.UpcomingTopics, UpcomingTopic{
			Unit:      t.Unit,
			Name:      t.Name,
			StartDate: t.StartDate,
		})
	}

	return view, nil
}
