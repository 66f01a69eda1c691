// Package reminderservice schedules prayer time notifications.
//
// The schedule for the current day is resolved once at startup and then
// refreshed shortly after every midnight. One reminder fires per daily
// prayer at its exact time.
package reminderservice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alfurqan/alfurqan/internal/app"
)

// TimingsSource resolves the prayer schedule for one day.
type TimingsSource interface {
	Timings(ctx context.Context, c app.Coordinates, date time.Time) (app.PrayerTimes, error)
}

// LocationSource provides the configured location.
type LocationSource interface {
	Location() app.Location
}

// ReminderService schedules one notification per daily prayer.
type ReminderService struct {
	source   TimingsSource
	location LocationSource
	notify   func(title, body string)
	cron     *cron.Cron

	mu     sync.Mutex
	timers []*time.Timer
}

type Params struct {
	Source   TimingsSource
	Location LocationSource
	// Notify delivers a reminder to the user.
	Notify func(title, body string)
}

// New creates a new ReminderService and returns it.
func New(arg Params) *ReminderService {
	return &ReminderService{
		source:   arg.Source,
		location: arg.Location,
		notify:   arg.Notify,
		cron:     cron.New(),
	}
}

// Start resolves today's schedule and begins the daily refresh cycle.
func (s *ReminderService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		s.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule daily refresh: %w", err)
	}
	s.cron.Start()
	s.Refresh(ctx)
	return nil
}

// Stop cancels all pending reminders and the refresh cycle.
func (s *ReminderService) Stop() {
	s.cron.Stop()
	s.clearTimers()
}

// Refresh replaces all pending reminders with today's schedule.
// Without a configured location it only clears pending reminders.
func (s *ReminderService) Refresh(ctx context.Context) {
	s.refreshFor(ctx, time.Now())
}

// PendingReminders returns the number of reminders not yet fired.
func (s *ReminderService) PendingReminders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *ReminderService) refreshFor(ctx context.Context, now time.Time) {
	s.clearTimers()
	loc := s.location.Location()
	if loc.IsZero() {
		return
	}
	pt, err := s.source.Timings(ctx, loc.Coordinates, now)
	if err != nil {
		slog.Error("Failed to resolve prayer schedule", "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range app.PrayerNames {
		if name == app.Sunrise {
			continue // not a prayer, no reminder
		}
		v, ok := pt.Timings[name]
		if !ok {
			continue
		}
		at, err := timingToTime(now, v)
		if err != nil {
			slog.Warn("Skipping unparsable prayer timing", "prayer", name, "value", v)
			continue
		}
		d := at.Sub(now)
		if d <= 0 {
			continue // already past for today
		}
		title := fmt.Sprintf("Time for %s", name)
		body := fmt.Sprintf("%s prayer at %s", name, v)
		s.timers = append(s.timers, time.AfterFunc(d, func() {
			s.notify(title, body)
		}))
	}
}

func (s *ReminderService) clearTimers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// timingToTime combines a date with a "HH:MM" timing in local time.
func timingToTime(date time.Time, v string) (time.Time, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location(),
	), nil
}
