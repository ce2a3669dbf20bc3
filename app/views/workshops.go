package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/models"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/tabular"
)

// Session pairs a session date with its topic.
type Session struct {
	Date  string `json:"date"`
	Topic string `json:"topic"`
}

// WorkshopEntry is one workshop or service course with its parsed sessions.
// Participants is synthetic once a workshop leaves "Scheduled": the sheet
// never records a real headcount.
type WorkshopEntry struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Duration              string    `json:"duration"`
	Status                string    `json:"status"`
	Participants          int       `json:"participants"`
	ParticipantsSynthetic bool      `json:"participantsSynthetic"`
	Sessions              []Session `json:"sessions"`
}

type WorkshopsView struct {
	Workshops      []WorkshopEntry `json:"workshops"`
	ServiceCourses []WorkshopEntry `json:"serviceCourses"`
}

func (a *Assembler) Workshops(ctx context.Context) (*WorkshopsView, error) {
	var workshopTable, courseTable [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		workshopTable, err = a.Store.Table(gctx, tableWorkshops, rangeWorkshops)
		return err
	})
	g.Go(func() (err error) {
		courseTable, err = a.Store.Table(gctx, tableServiceCourses, rangeWorkshops)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("workshops tables: %w", err)
	}

	return &WorkshopsView{
		Workshops:      workshopEntries(tabular.MapRows(workshopTable, models.WorkshopFromRow)),
		ServiceCourses: workshopEntries(tabular.MapRows(courseTable, models.WorkshopFromRow)),
	}, nil
}

func workshopEntries(records []models.Workshop) []WorkshopEntry {
	out := make([]WorkshopEntry, 0, len(records))
	for _, w := range records {
		entry := WorkshopEntry{
			ID:       w.ID,
			Title:    w.Title,
			Duration: w.Duration,
			Status:   w.Status,
			Sessions: make([]Session, 0, len(w.SessionDates)),
		}
		if w.Status != "Scheduled" {
			entry.Participants = tabular.ParticipantCount()
			entry.ParticipantsSynthetic = true
		}
		for i, d := range w.SessionDates {
			s := Session{Date: d}
			if i < len(w.SessionTopics) {
				s.Topic = w.SessionTopics[i]
			}
			entry.Sessions = append(entry.Sessions, s)
		}
		out = append(out, entry)
	}
	return out
}
