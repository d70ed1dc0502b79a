package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ariyalex/pdf-parse-jaku/pkg/jadwal"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Indonesian)

// RenderSchedule formats a parsed schedule as a student header followed by a course table.
func RenderSchedule(s *jadwal.Schedule) string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Bold(true)
	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-15s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("Nama", s.Name)
	field("NIM", s.ID)
	field("Program Studi", s.Program)
	field("Semester", s.Semester)
	field("Tahun Akademik", s.AcademicYear)
	b.WriteString("\n")

	if len(s.Courses) == 0 {
		b.WriteString(errorStyle.Render("No courses found."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		rows = append(rows, []string{
			strconv.Itoa(c.Number),
			titleCaser.String(c.Title),
			strconv.Itoa(c.Credits),
			formatSessions(c.Sessions),
			formatInstructors(c.Instructors),
		})
	}

	headerStyle := accentStyle.Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("No", "Mata Kuliah", "SKS", "Jadwal", "Dosen").
		Rows(rows...)

	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(fmt.Sprintf("%d courses, %d sessions, %d SKS", len(s.Courses), s.SessionCount(), s.TotalCredits())))
	b.WriteString("\n")

	return b.String()
}

func formatSessions(sessions []jadwal.Session) string {
	if len(sessions) == 0 {
		return "-"
	}
	lines := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		lines = append(lines, fmt.Sprintf("%s %s %s", sess.Day, sess.Time, sess.Room))
	}
	return strings.Join(lines, "\n")
}

func formatInstructors(instructors []jadwal.Instructor) string {
	if len(instructors) == 0 {
		return "-"
	}
	names := make([]string, 0, len(instructors))
	for _, in := range instructors {
		names = append(names, in.Name)
	}
	return strings.Join(names, "\n")
}
