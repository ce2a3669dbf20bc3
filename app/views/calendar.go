package views

import (
	"context"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// CalendarCell is one day of the 5-week grid.
type CalendarCell struct {
	Date    string         `json:"date"`
	Day     int            `json:"day"`
	InMonth bool           `json:"inMonth"`
	IsToday bool           `json:"isToday"`
	Events  []models.Event `json:"events"`
}

type CalendarView struct {
	Weeks          [][]CalendarCell `json:"weeks"`
	UpcomingEvents []models.Event   `json:"upcomingEvents"`
}

// Calendar produces 5 weeks of 7 days, Sunday-first, starting from the
// Sunday of the current week. Events attach to cells by date-string match.
func (a *Assembler) Calendar(ctx context.Context) (*CalendarView, error) {
	table, err := a.Store.Table(ctx, tableEvents, rangeEvents)
	if err != nil {
		return nil, err
	}
	events := tabular.MapRows(table, models.EventFromRow)
	byDate := tabular.NewIndex(events, func(e models.Event) string { return e.Date })

	today := a.now()
	todayKey := dateKey(today)
	start := today.AddDate(0, 0, -int(today.Weekday()))

	view := &CalendarView{
		Weeks:          make([][]CalendarCell, 0, 5),
		UpcomingEvents: []models.Event{},
	}
	for w := 0; w < 5; w++ {
		week := make([]CalendarCell, 0, 7)
		for d := 0; d < 7; d++ {
			day := start.AddDate(0, 0, w*7+d)
			key := dateKey(day)
			cell := CalendarCell{
				Date:    key,
				Day:     day.Day(),
				InMonth: day.Month() == today.Month() && day.Year() == today.Year(),
				IsToday: key == todayKey,
				Events:  byDate.FindAll(key),
			}
			if cell.Events == nil {
				cell.Events = []models.Event{}
			}
			week = append(week, cell)
		}
		view.Weeks = append(view.Weeks, week)
	}

	upcoming := sortByDate(tabular.Filter(events, func(e models.Event) bool {
		_, ok := parseDate(e.Date)
		return ok && e.Date >= todayKey
	}), func(e models.Event) string { return e.Date }, true)
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	view.UpcomingEvents = append(view.UpcomingEvents, upcoming...)

	return view, nil
}
