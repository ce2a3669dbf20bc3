package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceLiveDay(t *testing.T) {
	asm := newTestAssembler(map[string][][]string{
		tableStudents: {
			studentHeader,
			{"101", "Asha", "Female", "OBC", "2", "", "Active"},
			{"102", "Ravi", "Male", "General", "1", "", "Active"},
		},
		tableAttendance: {
			{"id", "date", "studentId", "status", "remarks"},
			{"T1", "2025-03-12", "101", "Present", ""},
			{"T2", "2025-03-12", "102", "Absent", ""},
			{"T3", "2025-03-11", "101", "Present", ""},
		},
	})

	view, err := asm.Attendance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, view.PresentToday)
	assert.Equal(t, 1, view.AbsentToday)
	assert.Equal(t, 50, view.TodayPercent)
	assert.False(t, view.TodaySynthetic)

	// 3 rows inside the window, 2 present.
	assert.Equal(t, 67, view.WeeklyAverage)

	require.Len(t, view.Trend, 7)
	assert.Equal(t, "2025-03-06", view.Trend[0].Date, "window runs oldest to today")
	assert.Equal(t, "2025-03-12", view.Trend[6].Date)
	assert.Equal(t, 50, view.Trend[6].Percent)
	assert.False(t, view.Trend[6].Synthetic)
	assert.True(t, view.Trend[0].Synthetic, "days without rows draw from the fallback band")

	require.Len(t, view.Students, 2)
	asha := view.Students[0]
	assert.Equal(t, "Present", asha.Status)
	assert.Equal(t, 100, asha.AttendanceRate)
	assert.False(t, asha.Synthetic)
}

func TestAttendanceNoRowsForToday(t *testing.T) {
	asm := newTestAssembler(map[string][][]string{
		tableStudents: {
			studentHeader,
			{"101", "Asha", "Female", "OBC", "2", "", "Active"},
		},
		tableAttendance: {
			{"id", "date", "studentId", "status", "remarks"},
		},
	})

	view, err := asm.Attendance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, view.PresentToday)
	assert.True(t, view.TodaySynthetic)
	assert.GreaterOrEqual(t, view.TodayPercent, 85)
	assert.LessOrEqual(t, view.TodayPercent, 94)

	// Zero 7-day records takes the fixed constant, not a random draw.
	assert.Equal(t, 90, view.WeeklyAverage)

	for _, p := range view.Trend {
		assert.True(t, p.Synthetic)
		assert.GreaterOrEqual(t, p.Percent, 85)
		assert.LessOrEqual(t, p.Percent, 94)
	}

	require.Len(t, view.Students, 1)
	line := view.Students[0]
	assert.True(t, line.Synthetic)
	assert.Contains(t, []string{"Present", "Absent"}, line.Status)
	assert.GreaterOrEqual(t, line.AttendanceRate, 85)
	assert.LessOrEqual(t, line.AttendanceRate, 94)
}
