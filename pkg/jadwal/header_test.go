package jadwal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStudent(t *testing.T) {
	t.Run("all labels in any order", func(t *testing.T) {
		lines := []string{
			"Program Studi", ": Sistem Informasi",
			"Semester", ": Genap",
			"NIM", ": 11220910000042",
			"Nama Mahasiswa", ": Siti Nurhaliza",
			"Tahun Akademik: 2024/2025",
		}

		assert.Equal(t, Student{
			Name:         "Siti Nurhaliza",
			ID:           "11220910000042",
			Semester:     "Genap",
			AcademicYear: "2024/2025",
			Program:      "Sistem Informasi",
		}, ExtractStudent(lines))
	})

	t.Run("value line without colon is ignored", func(t *testing.T) {
		s := ExtractStudent([]string{"NIM", "12345678", "Nama Mahasiswa", "John Doe"})
		assert.Equal(t, Student{}, s)
	})

	t.Run("academic year without colon leaves field unchanged", func(t *testing.T) {
		assert.Equal(t, Student{}, ExtractStudent([]string{"Tahun Akademik 2023/2024"}))

		s := ExtractStudent([]string{"Tahun Akademik : 2023/2024", "Tahun Akademik Ganjil"})
		assert.Equal(t, "2023/2024", s.AcademicYear)
	})

	t.Run("label on last line", func(t *testing.T) {
		assert.Equal(t, Student{}, ExtractStudent([]string{"Semester"}))
	})

	t.Run("labels must stand alone", func(t *testing.T) {
		s := ExtractStudent([]string{"NIM Mahasiswa", ": 1", "Semester Pendek", ": 2"})
		assert.Equal(t, Student{}, s)
	})

	t.Run("academic year takes text after last colon", func(t *testing.T) {
		s := ExtractStudent([]string{"Cetak: 01/09/2023 Tahun Akademik : 2023/2024"})
		assert.Equal(t, "2023/2024", s.AcademicYear)
	})

	t.Run("next line value keeps later colons", func(t *testing.T) {
		s := ExtractStudent([]string{"Program Studi", ": S1: Teknik Informatika"})
		assert.Equal(t, "S1: Teknik Informatika", s.Program)
	})

	t.Run("repeated label reassigns", func(t *testing.T) {
		s := ExtractStudent([]string{"Semester", ": Ganjil", "Semester", ": Genap"})
		assert.Equal(t, "Genap", s.Semester)
	})
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b c", ""}, SplitLines("  a \n\n\tb c\r\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

func TestParseBareNumber(t *testing.T) {
	n, ok := parseBareNumber("42")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, line := range []string{"", "4a", "-1", "1.5", "99999999999999999999999"} {
		_, ok := parseBareNumber(line)
		assert.False(t, ok, line)
	}
}
