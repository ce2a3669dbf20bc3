package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// TrendPoint is one day of the 7-day attendance trend. Synthetic marks a
// day with no underlying rows, where the percent comes from the fallback
// band instead of real data.
type TrendPoint struct {
	Date      string `json:"date"`
	Percent   int    `json:"percent"`
	Synthetic bool   `json:"synthetic"`
}

// StudentAttendance is the per-student rollup line.
type StudentAttendance struct {
	RollNo         string `json:"rollNo"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	AttendanceRate int    `json:"attendanceRate"`
	Synthetic      bool   `json:"synthetic"`
}

type AttendanceView struct {
	PresentToday   int                 `json:"presentToday"`
	AbsentToday    int                 `json:"absentToday"`
	TodayPercent   int                 `json:"todayPercent"`
	TodaySynthetic bool                `json:"todaySynthetic"`
	WeeklyAverage  int                 `json:"weeklyAverage"`
	Trend          []TrendPoint        `json:"trend"`
	Students       []StudentAttendance `json:"students"`
}

// Attendance builds today's stats, the weekly average, the 7-day trend and
// a per-student rollup from one snapshot of the Attendance sheet.
func (a *Assembler) Attendance(ctx context.Context) (*AttendanceView, error) {
	var studentTable, attendanceTable [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		studentTable, err = a.Store.Table(gctx, tableStudents, rangeStudents)
		return err
	})
	g.Go(func() (err error) {
		attendanceTable, err = a.Store.Table(gctx, tableAttendance, rangeAttendance)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("attendance tables: %w", err)
	}

	students := tabular.MapRows(studentTable, models.StudentFromRow)
	records := tabular.MapRows(attendanceTable, models.AttendanceFromRow)

	byDate := tabular.NewIndex(records, func(r models.Attendance) string { return r.Date })
	byStudent := tabular.NewIndex(records, func(r models.Attendance) string { return r.StudentID })

	present := func(r models.Attendance) bool { return r.Status == "Present" }

	today := dateKey(a.now())
	todayRows := byDate.FindAll(today)

	view := &AttendanceView{
		PresentToday: tabular.CountWhere(todayRows, present),
		AbsentToday: tabular.CountWhere(todayRows, func(r models.Attendance) bool {
			return r.Status == "Absent"
		}),
		Trend:    make([]TrendPoint, 0, 7),
		Students: make([]StudentAttendance, 0, len(students)),
	}
	if len(todayRows) > 0 {
		view.TodayPercent = tabular.Percent(view.PresentToday, len(todayRows), 0)
	} else {
		// No rows for today: the dashboard still shows a plausible figure.
		view.TodayPercent = tabular.DailyAttendancePercent()
		view.TodaySynthetic = true
	}

	window := lastNDates(a.now(), 7)
	var weekRows, weekPresent int
	for _, day := range window {
		rows := byDate.FindAll(day)
		weekRows += len(rows)
		weekPresent += tabular.CountWhere(rows, present)

		point := TrendPoint{Date: day}
		if len(rows) > 0 {
			point.Percent = tabular.Percent(tabular.CountWhere(rows, present), len(rows), 0)
		} else {
			point.Percent = tabular.DailyAttendancePercent()
			point.Synthetic = true
		}
		view.Trend = append(view.Trend, point)
	}
	// Zero 7-day records: fixed constant, not a random draw.
	view.WeeklyAverage = tabular.Percent(weekPresent, weekRows, tabular.WeeklyAverageAttendance)

	todayIx := tabular.NewIndex(todayRows, func(r models.Attendance) string { return r.StudentID })
	for _, s := range students {
		line := StudentAttendance{RollNo: s.RollNo, Name: s.Name}
		if rec, ok := todayIx.FindOne(s.RollNo); ok {
			line.Status = rec.Status
		} else {
			line.Status = tabular.StudentDayStatus()
			line.Synthetic = true
		}
		own := byStudent.FindAll(s.RollNo)
		if len(own) > 0 {
			line.AttendanceRate = tabular.Percent(tabular.CountWhere(own, present), len(own), 0)
		} else {
			line.AttendanceRate = tabular.DailyAttendancePercent()
			line.Synthetic = true
		}
		view.Students = append(view.Students, line)
	}

	return view, nil
}
