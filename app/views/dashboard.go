package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// DashboardView is the landing-page summary: headline counts, categorical
// distributions and the next couple of events.
type DashboardView struct {
	TotalStudents           int                  `json:"totalStudents"`
	ActiveStudents          int                  `json:"activeStudents"`
	GenderDistribution      []tabular.LabelCount `json:"genderDistribution"`
	CategoryDistribution    []tabular.LabelCount `json:"categoryDistribution"`
	PerformanceDistribution []tabular.LabelCount `json:"performanceDistribution"`
	AttendanceToday         int                  `json:"attendanceToday"`
	AttendanceSynthetic     bool                 `json:"attendanceSynthetic"`
	UpcomingEvents          []models.Event       `json:"upcomingEvents"`
}

func (a *Assembler) Dashboard(ctx context.Context) (*DashboardView, error) {
	var studentTable, perfTable, attendanceTable, eventTable [][]string

	// Independent fetches run concurrently; every aggregate below starts
	// only after the whole group resolves.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		studentTable, err = a.Store.Table(gctx, tableStudents, rangeStudents)
		return err
	})
	g.Go(func() (err error) {
		perfTable, err = a.Store.Table(gctx, tablePerformance, rangePerformance)
		return err
	})
	g.Go(func() (err error) {
		attendanceTable, err = a.Store.Table(gctx, tableAttendance, rangeAttendance)
		return err
	})
	g.Go(func() (err error) {
		eventTable, err = a.Store.Table(gctx, tableEvents, rangeEvents)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard tables: %w", err)
	}

	students := tabular.MapRows(studentTable, models.StudentFromRow)
	performance := tabular.MapRows(perfTable, models.PerformanceFromRow)
	attendance := tabular.MapRows(attendanceTable, models.AttendanceFromRow)
	events := tabular.MapRows(eventTable, models.EventFromRow)

	view := &DashboardView{
		TotalStudents: len(students),
		ActiveStudents: tabular.CountWhere(students, func(s models.Student) bool {
			return s.Status == "Active"
		}),
		GenderDistribution: tabular.CountByLabels(students, func(s models.Student) string {
			return s.Gender
		}, genderLabels),
		CategoryDistribution: tabular.CountByLabels(students, func(s models.Student) string {
			return s.Category
		}, casteCategories),
		PerformanceDistribution: tabular.CountByLabels(performance, func(p models.Performance) string {
			return p.Category
		}, performanceCategories),
		UpcomingEvents: []models.Event{},
	}

	today := dateKey(a.now())
	todayRows := tabular.Filter(attendance, func(r models.Attendance) bool {
		return r.Date == today
	})
	if len(todayRows) > 0 {
		present := tabular.CountWhere(todayRows, func(r models.Attendance) bool {
			return r.Status == "Present"
		})
		view.AttendanceToday = tabular.Percent(present, len(todayRows), 0)
	} else {
		view.AttendanceToday = tabular.DailyAttendancePercent()
		view.AttendanceSynthetic = true
	}

	// YYYY-MM-DD keys compare correctly as strings.
	upcoming := tabular.Filter(events, func(e models.Event) bool {
		_, ok := parseDate(e.Date)
		return ok && e.Date >= today
	})
	upcoming = sortByDate(upcoming, func(e models.Event) string { return e.Date }, true)
	if len(upcoming) > 2 {
		upcoming = upcoming[:2]
	}
	view.UpcomingEvents = append(view.UpcomingEvents, upcoming...)

	return view, nil
}
