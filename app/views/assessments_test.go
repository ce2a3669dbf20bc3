package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentsEmptySheet(t *testing.T) {
	asm := newTestAssembler(map[string][][]string{
		tableAssessments: {{"id", "date", "title", "type", "maxScore", "status"}},
		tableGrades:      {{"assessmentId", "studentId", "score", "percentage", "grade"}},
	})

	view, err := asm.Assessments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, AssessmentRef{Date: "Apr 15", Name: "Unit Test 3"}, view.NextAssessment)
	assert.True(t, view.NextSynthetic)
	assert.Nil(t, view.LastAssessment)
	assert.Equal(t, 76, view.LastAssessmentAverage)

	// Every bucket is zero, so every bucket shows its literal.
	want := map[string]int{"A": 5, "B": 12, "C": 18, "D": 8, "F": 2}
	require.Len(t, view.GradeDistribution, 5)
	for _, b := range view.GradeDistribution {
		assert.Equal(t, want[b.Grade], b.Count)
		assert.True(t, b.Synthetic)
	}
	assert.Empty(t, view.Trend)
}

func TestAssessmentsLive(t *testing.T) {
	asm := newTestAssembler(map[string][][]string{
		tableAssessments: {
			{"id", "date", "title", "type", "maxScore", "status"},
			{"AS3", "2025-03-20", "Unit Test 2", "Written", "50", "Upcoming"},
			{"AS1", "2025-02-01", "Unit Test 1", "Written", "50", "Completed"},
			{"AS2", "2025-03-01", "Quiz 1", "Oral", "20", "Completed"},
			{"AS4", "2025-03-18", "Recital", "Oral", "20", "Upcoming"},
		},
		tableGrades: {
			{"assessmentId", "studentId", "score", "percentage", "grade"},
			{"AS1", "101", "40", "80", "A"},
			{"AS1", "102", "30", "60", "C"},
			{"AS2", "101", "15", "75", "B"},
		},
	})

	view, err := asm.Assessments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, AssessmentRef{Date: "2025-03-18", Name: "Recital"}, view.NextAssessment,
		"next is the earliest upcoming by date")
	assert.False(t, view.NextSynthetic)

	require.NotNil(t, view.LastAssessment)
	assert.Equal(t, "Quiz 1", view.LastAssessment.Name, "last is the latest completed by date")
	assert.Equal(t, 75, view.LastAssessmentAverage)

	byGrade := map[string]GradeBucket{}
	for _, b := range view.GradeDistribution {
		byGrade[b.Grade] = b
	}
	assert.Equal(t, 1, byGrade["A"].Count)
	assert.False(t, byGrade["A"].Synthetic)
	assert.Equal(t, 1, byGrade["C"].Count)
	// Buckets with a true zero still show their literal, flagged synthetic.
	assert.Equal(t, 8, byGrade["D"].Count)
	assert.True(t, byGrade["D"].Synthetic)

	require.Len(t, view.Trend, 2)
	assert.Equal(t, "Unit Test 1", view.Trend[0].Name)
	assert.Equal(t, 70, view.Trend[0].Average)
	assert.Equal(t, "Quiz 1", view.Trend[1].Name)
	assert.Equal(t, 75, view.Trend[1].Average)
}
