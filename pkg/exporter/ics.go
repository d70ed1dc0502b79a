package exporter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"

	ics "github.com/arran4/golang-ical"
)

// ErrNoSessions is returned when a schedule has no session that can be placed on a calendar.
var ErrNoSessions = errors.New("schedule has no exportable sessions")

// ICSOptions places the weekly sessions on real dates.
type ICSOptions struct {
	Start    time.Time      // first day of lectures
	Weeks    int            // number of weekly occurrences
	Location *time.Location // timezone of the printed times
}

// GenerateICS creates a calendar with one weekly recurring event per session and writes it to w
func GenerateICS(s *jadwal.Schedule, opts ICSOptions, w io.Writer) error {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", opts.Weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//jaku//Jadwal Kuliah//ID")
	if s.Name != "" {
		cal.SetXWRCalName(fmt.Sprintf("Jadwal Kuliah %s", s.Name))
	}
	cal.SetXWRTimezone(opts.Location.String())

	startDay := time.Date(opts.Start.Year(), opts.Start.Month(), opts.Start.Day(), 0, 0, 0, 0, opts.Location)
	now := time.Now()
	events := 0

	// course numbers are not unique; UIDs use the position in the slice
	for i, c := range s.Courses {
		for j, sess := range c.Sessions {
			startAt, endAt, ok := firstOccurrence(startDay, sess, opts.Location)
			if !ok {
				continue // unknown day or malformed time
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d-%d-%s@jaku", eventOwner(s), i, j, startAt.Format("20060102T1504")))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(startAt)
			event.SetEndAt(endAt)
			event.SetSummary(c.Title)
			event.SetLocation(sess.Room)
			event.SetDescription(describe(c))
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", opts.Weeks))
			events++
		}
	}

	if events == 0 {
		return ErrNoSessions
	}

	return cal.SerializeTo(w)
}

// firstOccurrence finds the first meeting of sess on or after startDay.
func firstOccurrence(startDay time.Time, sess jadwal.Session, loc *time.Location) (time.Time, time.Time, bool) {
	wd, ok := jadwal.Weekday(sess.Day)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	from, to, ok := sess.Bounds()
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	offset := (int(wd) - int(startDay.Weekday()) + 7) % 7
	day := startDay.AddDate(0, 0, offset).Format("2006-01-02")

	layout := "2006-01-02 15:04"
	startAt, err := time.ParseInLocation(layout, day+" "+from, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	endAt, err := time.ParseInLocation(layout, day+" "+to, loc)
	if err != nil || !endAt.After(startAt) {
		return time.Time{}, time.Time{}, false
	}
	return startAt, endAt, true
}

func eventOwner(s *jadwal.Schedule) string {
	if s.ID != "" {
		return s.ID
	}
	return "krs"
}

func describe(c jadwal.Course) string {
	description := fmt.Sprintf("SKS: %d", c.Credits)
	if len(c.Instructors) > 0 {
		names := make([]string, 0, len(c.Instructors))
		for _, ins := range c.Instructors {
			names = append(names, ins.Name)
		}
		description += fmt.Sprintf("\nDosen: %s", strings.Join(names, ", "))
	}
	return description
}
