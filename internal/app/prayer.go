package app

import "time"

// PrayerName identifies one of the daily prayers.
type PrayerName string

const (
	Fajr    PrayerName = "Fajr"
	Sunrise PrayerName = "Sunrise"
	Dhuhr   PrayerName = "Dhuhr"
	Asr     PrayerName = "Asr"
	Maghrib PrayerName = "Maghrib"
	Isha    PrayerName = "Isha"
)

// PrayerNames lists the daily schedule in display order.
var PrayerNames = []PrayerName{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// PrayerTimes is the prayer schedule for one day at one location.
type PrayerTimes struct {
	Date    time.Time
	Hijri   HijriDate
	Timings map[PrayerName]string // "HH:MM" local time
}

// HijriDate is a date in the Islamic lunar calendar.
type HijriDate struct {
	Day       int
	Month     int
	MonthName string
	Year      int
	Weekday   string
}

// CalendarDay is one day of a monthly Hijri calendar.
type CalendarDay struct {
	Gregorian time.Time
	Hijri     HijriDate
	Timings   map[PrayerName]string
}

// QiblaDirection is the great circle bearing towards the Kaaba
// for a given position, in degrees from true north.
type QiblaDirection struct {
	Origin    Coordinates
	Direction float64
}
