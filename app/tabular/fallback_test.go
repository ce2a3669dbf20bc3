package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyAttendancePercentBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := DailyAttendancePercent()
		assert.GreaterOrEqual(t, v, 85)
		assert.LessOrEqual(t, v, 94)
	}
}

func TestParticipantCountBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := ParticipantCount()
		assert.GreaterOrEqual(t, v, 15)
		assert.LessOrEqual(t, v, 44)
	}
}

func TestStudentDayStatus(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := StudentDayStatus()
		assert.Contains(t, []string{"Present", "Absent"}, s)
	}
}

func TestGradeBucketCount(t *testing.T) {
	assert.Equal(t, 5, GradeBucketCount("A"))
	assert.Equal(t, 12, GradeBucketCount("B"))
	assert.Equal(t, 18, GradeBucketCount("C"))
	assert.Equal(t, 8, GradeBucketCount("D"))
	assert.Equal(t, 2, GradeBucketCount("F"))
	assert.Equal(t, 0, GradeBucketCount("X"))
}
