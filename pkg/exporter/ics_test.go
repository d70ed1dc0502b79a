package exporter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"
)

func testSchedule() *jadwal.Schedule {
	return &jadwal.Schedule{
		Student: jadwal.Student{Name: "John Doe", ID: "12345678"},
		Courses: []jadwal.Course{
			{
				Number:  1,
				Title:   "Algoritma dan Struktur Data",
				Credits: 3,
				Sessions: []jadwal.Session{
					{Day: "Senin", Time: "08:00-09:40", Room: "FST-305"},
					{Day: "Rabu", Time: "10:00-11:40", Room: "FST-201"},
				},
				Instructors: []jadwal.Instructor{{Name: "Dr. Jane Smith"}},
			},
			{
				Number:      2,
				Title:       "Etika Profesi",
				Credits:     2,
				Sessions:    []jadwal.Session{{Day: "Senen", Time: "08:00-09:40", Room: "FST-101"}},
				Instructors: []jadwal.Instructor{},
			},
		},
	}
}

func jakarta(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("could not load timezone: %v", err)
	}
	return loc
}

func TestGenerateICS(t *testing.T) {
	loc := jakarta(t)
	opts := ICSOptions{
		Start:    time.Date(2024, 9, 2, 0, 0, 0, 0, loc), // a Monday
		Weeks:    16,
		Location: loc,
	}

	var buf bytes.Buffer
	if err := GenerateICS(testSchedule(), opts, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Algoritma dan Struktur Data") {
		t.Errorf("Expected ICS to contain course summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:FST-305") {
		t.Errorf("Expected ICS to contain room location")
	}

	// 02-Sep-2024 08:00 Jakarta time is 01:00 UTC.
	if !strings.Contains(output, "DTSTART:20240902T010000Z") {
		t.Errorf("Expected Monday start time in ICS (should be UTC), got: \n%s", output)
	}

	// Wednesday of the same week, 10:00 WIB.
	if !strings.Contains(output, "DTSTART:20240904T030000Z") {
		t.Errorf("Expected Wednesday start time in ICS, got: \n%s", output)
	}

	if strings.Count(output, "RRULE:FREQ=WEEKLY;COUNT=16") != 2 {
		t.Errorf("Expected two weekly recurring events, got: \n%s", output)
	}

	// The session with an unknown day name is skipped.
	if strings.Contains(output, "Etika Profesi") {
		t.Errorf("Expected session with unknown day to be skipped")
	}
}

func TestGenerateICSStartsOnNextMatchingDay(t *testing.T) {
	loc := jakarta(t)
	opts := ICSOptions{
		Start:    time.Date(2024, 9, 5, 0, 0, 0, 0, loc), // a Thursday
		Weeks:    2,
		Location: loc,
	}

	var buf bytes.Buffer
	if err := GenerateICS(testSchedule(), opts, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "DTSTART:20240909T010000Z") {
		t.Errorf("Expected Monday session to start on 9 Sep, got: \n%s", output)
	}
	if !strings.Contains(output, "DTSTART:20240911T030000Z") {
		t.Errorf("Expected Wednesday session to start on 11 Sep, got: \n%s", output)
	}
}

func TestGenerateICSNoSessions(t *testing.T) {
	s := &jadwal.Schedule{Courses: []jadwal.Course{{Number: 1, Title: "Skripsi", Credits: 6}}}

	err := GenerateICS(s, ICSOptions{Start: time.Now(), Weeks: 16}, &bytes.Buffer{})
	if !errors.Is(err, ErrNoSessions) {
		t.Errorf("expected ErrNoSessions, got %v", err)
	}

	if err := GenerateICS(testSchedule(), ICSOptions{Start: time.Now()}, &bytes.Buffer{}); err == nil {
		t.Errorf("expected error for zero weeks")
	}
}

func TestWriteJSON(t *testing.T) {
	s := &jadwal.Schedule{
		Student: jadwal.Student{Name: "Siti & Co"},
		Courses: []jadwal.Course{},
	}

	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	expected := `{
    "nama": "Siti & Co",
    "nim": "",
    "semester": "",
    "tahun_akademik": "",
    "program_studi": "",
    "jadwal": []
}
`
	if buf.String() != expected {
		t.Errorf("unexpected JSON.\nGot:\n%s\nExpected:\n%s", buf.String(), expected)
	}
}

func TestSaveFiles(t *testing.T) {
	dir := t.TempDir()
	s := testSchedule()

	jsonPath := filepath.Join(dir, "out", DefaultJSONFile)
	if err := SaveJSON(jsonPath, s); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("json file not written: %v", err)
	}
	if !strings.Contains(string(data), `"mata_kuliah": "Algoritma dan Struktur Data"`) {
		t.Errorf("unexpected json file:\n%s", data)
	}

	icsPath := filepath.Join(dir, "jadwal.ics")
	opts := ICSOptions{Start: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), Weeks: 2, Location: time.UTC}
	if err := SaveICS(icsPath, s, opts); err != nil {
		t.Fatalf("SaveICS failed: %v", err)
	}
	if _, err := os.Stat(icsPath); err != nil {
		t.Errorf("ics file not written: %v", err)
	}

	emptyPath := filepath.Join(dir, "empty.ics")
	err = SaveICS(emptyPath, &jadwal.Schedule{Courses: []jadwal.Course{}}, opts)
	if !errors.Is(err, ErrNoSessions) {
		t.Fatalf("expected ErrNoSessions, got %v", err)
	}
	if _, err := os.Stat(emptyPath); !os.IsNotExist(err) {
		t.Error("no file should be written for an empty calendar")
	}
}

func TestGenerateICSUniqueEventIDs(t *testing.T) {
	sess := []jadwal.Session{{Day: "Jum\u2019at", Time: "08:00-09:40", Room: "FST-305"}}
	s := &jadwal.Schedule{
		Student: jadwal.Student{ID: "12345678"},
		Courses: []jadwal.Course{
			{Number: 1, Title: "Kalkulus", Credits: 3, Sessions: sess, Instructors: []jadwal.Instructor{}},
			{Number: 1, Title: "Fisika Dasar", Credits: 3, Sessions: sess, Instructors: []jadwal.Instructor{}},
		},
	}

	var buf bytes.Buffer
	opts := ICSOptions{Start: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), Weeks: 1, Location: time.UTC}
	if err := GenerateICS(s, opts, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	uids := make(map[string]bool)
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "UID:") {
			uids[strings.TrimSpace(line)] = true
		}
	}
	if len(uids) != 2 {
		t.Errorf("expected 2 distinct UIDs, got %v", uids)
	}

	// Friday of the same week, printed with a typographic apostrophe.
	if strings.Count(output, "DTSTART:20240906T080000Z") != 2 {
		t.Errorf("expected both Friday sessions on 2024-09-06, got: \n%s", output)
	}
}
