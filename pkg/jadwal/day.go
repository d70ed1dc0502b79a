package jadwal

import (
	"strings"
	"time"
)

// Days lists the day names used by the schedule document, Monday first.
var Days = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jum'at", "Sabtu", "Minggu"}

var dayWeekdays = map[string]time.Weekday{
	"Senin":  time.Monday,
	"Selasa": time.Tuesday,
	"Rabu":   time.Wednesday,
	"Kamis":  time.Thursday,
	"Jum'at": time.Friday,
	"Sabtu":  time.Saturday,
	"Minggu": time.Sunday,
}

// PDF text layers often render the apostrophe of "Jum'at" as a typographic quote.
var apostrophes = strings.NewReplacer("\u2019", "'", "\u2018", "'", "\u02bc", "'")

// IsDay reports whether s is one of the known day names.
func IsDay(s string) bool {
	_, ok := Weekday(s)
	return ok
}

// Weekday maps an Indonesian day name to its time.Weekday.
func Weekday(day string) (time.Weekday, bool) {
	wd, ok := dayWeekdays[apostrophes.Replace(strings.TrimSpace(day))]
	return wd, ok
}

// startsWithDay reports whether line opens with "<Day>," as schedule rows do.
func startsWithDay(line string) bool {
	line = apostrophes.Replace(line)
	for _, d := range Days {
		if strings.HasPrefix(line, d+",") {
			return true
		}
	}
	return false
}

// Bounds splits the session time range into its start and end clock times.
func (s Session) Bounds() (start, end string, ok bool) {
	start, end, ok = strings.Cut(s.Time, "-")
	if !ok || start == "" || end == "" {
		return "", "", false
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), true
}
