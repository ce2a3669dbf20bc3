package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// StudentDetailsView merges everything known about one student. Performance
// may be nil when the Performance sheet has no row for the roll number;
// discipline joins by roll number, achievements by student name.
type StudentDetailsView struct {
	Student             models.Student       `json:"student"`
	Performance         *models.Performance  `json:"performance"`
	Discipline          []models.Discipline  `json:"discipline"`
	Achievements        []models.Achievement `json:"achievements"`
	AttendanceRate      int                  `json:"attendanceRate"`
	AttendanceSynthetic bool                 `json:"attendanceSynthetic"`
}

func (a *Assembler) StudentDetails(ctx context.Context, rollNo string) (*StudentDetailsView, error) {
	if rollNo == "" {
		return nil, fmt.Errorf("%w: roll number is required", ErrValidation)
	}

	var studentTable, perfTable, disciplineTable, achievementTable, attendanceTable [][]string

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
		disciplineTable, err = a.Store.Table(gctx, tableDiscipline, rangeDiscipline)
		return err
	})
	g.Go(func() (err error) {
		achievementTable, err = a.Store.Table(gctx, tableAchievements, rangeAchievements)
		return err
	})
	g.Go(func() (err error) {
		attendanceTable, err = a.Store.Table(gctx, tableAttendance, rangeAttendance)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("student details tables: %w", err)
	}

	students := tabular.MapRows(studentTable, models.StudentFromRow)
	studentIx := tabular.NewIndex(students, func(s models.Student) string { return s.RollNo })
	student, ok := studentIx.FindOne(rollNo)
	if !ok {
		return nil, fmt.Errorf("%w: student %s", ErrNotFound, rollNo)
	}

	view := &StudentDetailsView{Student: student}

	performance := tabular.MapRows(perfTable, models.PerformanceFromRow)
	perfIx := tabular.NewIndex(performance, func(p models.Performance) string { return p.RollNo })
	if p, found := perfIx.FindOne(rollNo); found {
		view.Performance = &p
	}

	discipline := tabular.MapRows(disciplineTable, models.DisciplineFromRow)
	view.Discipline = tabular.NewIndex(discipline, func(d models.Discipline) string {
		return d.RollNo
	}).FindAll(rollNo)
	if view.Discipline == nil {
		view.Discipline = []models.Discipline{}
	}

	achievements := tabular.MapRows(achievementTable, models.AchievementFromRow)
	view.Achievements = tabular.NewIndex(achievements, func(x models.Achievement) string {
		return x.StudentName
	}).FindAll(student.Name)
	if view.Achievements == nil {
		view.Achievements = []models.Achievement{}
	}

	attendance := tabular.MapRows(attendanceTable, models.AttendanceFromRow)
	own := tabular.NewIndex(attendance, func(r models.Attendance) string {
		return r.StudentID
	}).FindAll(rollNo)
	if len(own) > 0 {
		present := tabular.CountWhere(own, func(r models.Attendance) bool {
			return r.Status == "Present"
		})
		view.AttendanceRate = tabular.Percent(present, len(own), 0)
	} else {
		view.AttendanceRate = tabular.DailyAttendancePercent()
		view.AttendanceSynthetic = true
	}

	return view, nil
}
