package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type student struct {
	category string
}

func cat(s student) string { return s.category }

func TestCountByLabelsDropsUnlisted(t *testing.T) {
	students := []student{
		{"General"}, {"OBC"}, {"OBC"}, {"SC"}, {"Unknown"},
	}
	counts := CountByLabels(students, cat, []string{"General", "OBC", "SC", "ST", "Muslim"})

	assert.Equal(t, []LabelCount{
		{"General", 1},
		{"OBC", 2},
		{"SC", 1},
		{"ST", 0},
		{"Muslim", 0},
	}, counts)

	// The unlisted value is dropped, so the sum stays below the input size.
	sum := 0
	for _, c := range counts {
		sum += c.Count
	}
	assert.Equal(t, len(students)-1, sum)
}

func TestCountDistinctObservedOrder(t *testing.T) {
	students := []student{
		{"Unit 2"}, {"Unit 1"}, {"Unit 2"}, {"unit 2"},
	}
	counts := CountDistinct(students, cat)

	assert.Equal(t, []LabelCount{
		{"Unit 2", 2},
		{"Unit 1", 1},
		{"unit 2", 1}, // case-sensitive
	}, counts)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50, Percent(1, 2, 0))
	assert.Equal(t, 33, Percent(1, 3, 0))
	assert.Equal(t, 67, Percent(2, 3, 0))
	assert.Equal(t, 100, Percent(5, 5, 0))
	assert.Equal(t, 90, Percent(0, 0, 90), "zero denominator takes the call-site default")
	assert.Equal(t, 0, Percent(3, 0, 0))
}

func TestRoundedMean(t *testing.T) {
	assert.Equal(t, 76, RoundedMean(nil, 76))
	assert.Equal(t, 80, RoundedMean([]int{70, 90}, 0))
	assert.Equal(t, 77, RoundedMean([]int{76, 77, 77}, 0))
}

func TestFilterAndCountWhere(t *testing.T) {
	students := []student{{"a"}, {"b"}, {"a"}}
	got := Filter(students, func(s student) bool { return s.category == "a" })
	assert.Len(t, got, 2)
	assert.Equal(t, 1, CountWhere(students, func(s student) bool { return s.category == "b" }))
}
