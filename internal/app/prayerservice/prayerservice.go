// Package prayerservice provides prayer schedules, the Hijri calendar and
// the Qibla direction from the remote prayer times API.
package prayerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alfurqan/alfurqan/internal/app"
)

const (
	baseURLDefault = "https://api.aladhan.com/v1"

	// calculation method passed to the API (Umm al-Qura)
	methodDefault = 4

	apiDateFormat = "02-01-2006"
)

// PrayerService provides access to the prayer times API.
type PrayerService struct {
	baseURL    string
	httpClient *http.Client
	method     int
	sfg        *singleflight.Group
}

type Params struct {
	// optional
	BaseURL    string
	HTTPClient *http.Client
	Method     int
}

// New creates a new PrayerService and returns it.
// When nil is passed for any parameter a default will be used instead.
func New(arg Params) *PrayerService {
	s := &PrayerService{
		baseURL: baseURLDefault,
		method:  methodDefault,
		sfg:     new(singleflight.Group),
	}
	if arg.BaseURL != "" {
		s.baseURL = arg.BaseURL
	}
	if arg.HTTPClient != nil {
		s.httpClient = arg.HTTPClient
	} else {
		s.httpClient = http.DefaultClient
	}
	if arg.Method != 0 {
		s.method = arg.Method
	}
	return s
}

// Timings returns the prayer schedule for one day at the given position.
func (s *PrayerService) Timings(ctx context.Context, c app.Coordinates, date time.Time) (app.PrayerTimes, error) {
	path := fmt.Sprintf(
		"/timings/%s?latitude=%f&longitude=%f&method=%d",
		date.Format(apiDateFormat), c.Lat, c.Lon, s.method,
	)
	payload, err := getJSON[struct {
		Data dayPayload `json:"data"`
	}](ctx, s, path)
	if err != nil {
		return app.PrayerTimes{}, fmt.Errorf("fetch timings: %w", err)
	}
	return app.PrayerTimes{
		Date:    date,
		Hijri:   payload.Data.Date.Hijri.toHijriDate(),
		Timings: payload.Data.timingsByPrayer(),
	}, nil
}

// Calendar returns the prayer schedule and Hijri date
// for every day of a Gregorian month.
func (s *PrayerService) Calendar(ctx context.Context, c app.Coordinates, year int, month time.Month) ([]app.CalendarDay, error) {
	path := fmt.Sprintf(
		"/calendar/%d/%d?latitude=%f&longitude=%f&method=%d",
		year, int(month), c.Lat, c.Lon, s.method,
	)
	payload, err := getJSON[struct {
		Data []dayPayload `json:"data"`
	}](ctx, s, path)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar %d-%d: %w", year, month, err)
	}
	days := make([]app.CalendarDay, 0, len(payload.Data))
	for _, d := range payload.Data {
		g, err := time.Parse(apiDateFormat, d.Date.Gregorian.Date)
		if err != nil {
			return nil, fmt.Errorf("fetch calendar %d-%d: %w", year, month, err)
		}
		days = append(days, app.CalendarDay{
			Gregorian: g,
			Hijri:     d.Date.Hijri.toHijriDate(),
			Timings:   d.timingsByPrayer(),
		})
	}
	return days, nil
}

// Qibla returns the bearing towards the Kaaba for the given position.
func (s *PrayerService) Qibla(ctx context.Context, c app.Coordinates) (app.QiblaDirection, error) {
	path := fmt.Sprintf("/qibla/%f/%f", c.Lat, c.Lon)
	payload, err := getJSON[struct {
		Data struct {
			Direction float64 `json:"direction"`
		} `json:"data"`
	}](ctx, s, path)
	if err != nil {
		return app.QiblaDirection{}, fmt.Errorf("fetch qibla: %w", err)
	}
	return app.QiblaDirection{Origin: c, Direction: payload.Data.Direction}, nil
}

type dayPayload struct {
	Timings map[string]string `json:"timings"`
	Date    struct {
		Gregorian struct {
			Date string `json:"date"` // DD-MM-YYYY
		} `json:"gregorian"`
		Hijri hijriPayload `json:"hijri"`
	} `json:"date"`
}

// timingsByPrayer maps the raw timings to the daily prayers,
// dropping auxiliary timings like Imsak and Midnight.
func (d dayPayload) timingsByPrayer() map[app.PrayerName]string {
	m := make(map[app.PrayerName]string)
	for _, p := range app.PrayerNames {
		if v, ok := d.Timings[string(p)]; ok {
			// values can carry a timezone suffix like "04:43 (BST)"
			if i := len("HH:MM"); len(v) > i {
				v = v[:i]
			}
			m[p] = v
		}
	}
	return m
}

type hijriPayload struct {
	Day   string `json:"day"`
	Year  string `json:"year"`
	Month struct {
		Number int    `json:"number"`
		En     string `json:"en"`
	} `json:"month"`
	Weekday struct {
		En string `json:"en"`
	} `json:"weekday"`
}

func (h hijriPayload) toHijriDate() app.HijriDate {
	day, _ := strconv.Atoi(h.Day)
	year, _ := strconv.Atoi(h.Year)
	return app.HijriDate{
		Day:       day,
		Month:     h.Month.Number,
		MonthName: h.Month.En,
		Year:      year,
		Weekday:   h.Weekday.En,
	}
}

func getJSON[T any](ctx context.Context, s *PrayerService, path string) (T, error) {
	var z T
	x, err, _ := s.sfg.Do(path, func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
		if err != nil {
			return z, err
		}
		r, err := s.httpClient.Do(req)
		if err != nil {
			return z, err
		}
		defer r.Body.Close()
		if r.StatusCode != http.StatusOK {
			return z, fmt.Errorf("get %s: %s", path, r.Status)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return z, err
		}
		var o T
		if err := json.Unmarshal(body, &o); err != nil {
			return z, fmt.Errorf("unmarshal %s: %w", path, err)
		}
		return o, nil
	})
	if err != nil {
		return z, err
	}
	return x.(T), nil
}
