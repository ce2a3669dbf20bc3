package views

import (
	"time"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/sheets"
)

// Sheet names and the column range each endpoint reads. Column positions are
// fixed contracts with the spreadsheet; RowMapper constructors in app/models
// depend on them.
const (
	tableAuthentication = "Authentication"
	tableTeachers       = "Teachers"
	tableStudents       = "Students"
	tablePerformance    = "Performance"
	tableWorkshops      = "Workshops"
	tableServiceCourses = "ServiceCourses"
	tableDiscipline     = "Discipline"
	tableAchievements   = "Achievements"
	tableAttendance     = "Attendance"
	tableAssessments    = "Assessments"
	tableGrades         = "Grades"
	tableSyllabus       = "Syllabus"
	tableEvents         = "Events"
	tableCommunications = "Communications"
	tableParents        = "Parents"
)

const (
	rangeAuthentication = "A:B"
	rangeTeachers       = "A:E"
	rangeStudents       = "A:G"
	rangePerformance    = "A:F"
	rangeWorkshops      = "A:F"
	rangeDiscipline     = "A:F"
	rangeAchievements   = "A:E"
	rangeAttendance     = "A:E"
	rangeAssessments    = "A:F"
	rangeGrades         = "A:E"
	rangeSyllabus       = "A:I"
	rangeEvents         = "A:F"
	rangeCommunications = "A:G"
	rangeParents        = "A:G"
)

// Fixed label sets. Fixed-set aggregations never report a label outside
// these lists, even when one appears in the data.
var (
	casteCategories       = []string{"General", "OBC", "SC", "ST", "Muslim"}
	genderLabels          = []string{"Male", "Female"}
	performanceCategories = []string{"Bright Learner", "Late Bloomer"}
	gradeLabels           = []string{"A", "B", "C", "D", "F"}
)

// Assembler builds one endpoint's view model from a fresh table-store
// snapshot. It holds no per-request state; every build re-fetches. Now is
// injectable so tests can pin the clock.
type Assembler struct {
	Store sheets.Store
	Now   func() time.Time
}

func NewAssembler(store sheets.Store) *Assembler {
	return &Assembler{Store: store, Now: time.Now}
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
