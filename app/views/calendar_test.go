package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarGridShape(t *testing.T) {
	asm := newTestAssembler(map[string][][]string{
		tableEvents: {
			{"id", "date", "title", "type", "time", "description"},
			{"E1", "2025-03-12", "Parent meet", "Meeting", "10:00", ""},
			{"E2", "2025-03-12", "Quiz", "Academic", "12:00", ""},
			{"E3", "2025-03-30", "Sports day", "Sports", "", ""},
			{"E4", "2025-03-01", "Old event", "General", "", ""},
		},
	})

	view, err := asm.Calendar(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Weeks, 5)
	for _, week := range view.Weeks {
		require.Len(t, week, 7)
	}

	// Week 0 day 0 is the Sunday on or before today (2025-03-12 is a Wednesday).
	assert.Equal(t, "2025-03-09", view.Weeks[0][0].Date)

	todayCells := 0
	for _, week := range view.Weeks {
		for _, cell := range week {
			if cell.IsToday {
				todayCells++
				assert.Equal(t, "2025-03-12", cell.Date)
				assert.Len(t, cell.Events, 2, "events attach by date-string match")
			}
		}
	}
	assert.Equal(t, 1, todayCells, "exactly one cell is today")

	// Upcoming skips past events and sorts ascending.
	require.Len(t, view.UpcomingEvents, 3)
	assert.Equal(t, "Parent meet", view.UpcomingEvents[0].Title)
	assert.Equal(t, "Sports day", view.UpcomingEvents[2].Title)
}

func TestCalendarGridAnyToday(t *testing.T) {
	// The grid starts at most 6 days before today, so today always lands in
	// the 35-day window regardless of weekday.
	for offset := 0; offset < 7; offset++ {
		day := time.Date(2025, 6, 1+offset, 8, 0, 0, 0, time.UTC)
		asm := &Assembler{
			Store: &fakeStore{tables: map[string][][]string{tableEvents: nil}},
			Now:   func() time.Time { return day },
		}
		view, err := asm.Calendar(context.Background())
		require.NoError(t, err)

		count := 0
		for _, week := range view.Weeks {
			for _, cell := range week {
				if cell.IsToday {
					count++
				}
			}
		}
		assert.Equal(t, 1, count, "weekday %s", day.Weekday())
	}
}

func TestSyllabusAggregation(t *testing.T) {
	asm := newTestAssembler(map[string][][]string{
		tableSyllabus: {
			{"id", "unit", "name", "expectedHours", "timeSpent", "status", "startDate", "completionDate", "topicGroup"},
			{"S1", "Unit 1", "Nouns", "4", "5", "Completed", "2025-01-06", "2025-01-17", "Grammar"},
			{"S2", "Unit 1", "Verbs", "4", "2", "In Progress", "2025-03-03", "", "Grammar"},
			{"S3", "Unit 2", "Essays", "6", "0", "Not Started", "2025-04-01", "", "Writing"},
		},
	})

	view, err := asm.Syllabus(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Units, 2)
	u1 := view.Units[0]
	assert.Equal(t, "Unit 1", u1.Unit)
	assert.Equal(t, 2, u1.TotalTopics)
	assert.Equal(t, 1, u1.Completed)
	assert.Equal(t, 50, u1.Percent)
	assert.Equal(t, 8, u1.ExpectedHours)
	assert.Equal(t, 7, u1.TimeSpent)

	assert.Equal(t, 33, view.OverallPercent)

	assert.Equal(t, []string{"Grammar", "Writing"}, []string{
		view.TopicGroups[0].Label, view.TopicGroups[1].Label,
	})

	require.Len(t, view.UpcomingTopics, 2)
	assert.Equal(t, "Verbs", view.UpcomingTopics[0].Name, "pending topics sort by start date")
}
