package jadwal

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeLine = "Senin, 08:00-09:40 R: FST-305 Dr. Jane Smith (12345678 123456 1 001)"

// sampleKRS mirrors the text layer of a printed KRS.
const sampleKRS = `KARTU RENCANA STUDI
Tahun Akademik : 2023/2024
Nama Mahasiswa
: John Doe
NIM
: 12345678
Semester
: Ganjil
Program Studi
: Teknik Informatika
No
Mata Kuliah
SKS
Jadwal
1
Algoritma dan Struktur Data
3
Senin, 08:00-09:40 R: FST-305 Dr. Jane Smith (12345678 123456 1 001)
Rabu, 10:00-11:40 R: FST-201 Dr. Jane Smith (12345678 123456 1 001)
Budi Santoso, M.Kom. (19870512 201903 1 004)

2
Basis Data
Lanjut
3
Selasa, 13:00-15:30 R: FST-402 Siti Aminah, M.T.
3
Kewarganegaraan
2
`

func TestParse_Scenarios(t *testing.T) {
	p := NewParser(DefaultOptions())

	t.Run("header extraction", func(t *testing.T) {
		lines := []string{"NIM", ":12345678", "Tahun Akademik : 2023/2024", "Nama Mahasiswa", ": John Doe"}

		s := p.ParseLines(lines)

		assert.Equal(t, Student{ID: "12345678", AcademicYear: "2023/2024", Name: "John Doe"}, s.Student)
		assert.Empty(t, s.Courses)
		assert.NotNil(t, s.Courses)
	})

	t.Run("single course with combined line", func(t *testing.T) {
		lines := []string{"1", "Algoritma dan Struktur Data", "3", janeLine}

		s := p.ParseLines(lines)

		require.Len(t, s.Courses, 1)
		c := s.Courses[0]
		assert.Equal(t, 1, c.Number)
		assert.Equal(t, "Algoritma dan Struktur Data", c.Title)
		assert.Equal(t, 3, c.Credits)
		assert.Equal(t, []Session{{Day: "Senin", Time: "08:00-09:40", Room: "FST-305"}}, c.Sessions)
		assert.Equal(t, []Instructor{{Name: "Dr. Jane Smith"}}, c.Instructors)
	})

	t.Run("multi-line title", func(t *testing.T) {
		s := p.ParseLines([]string{"2", "Basis Data", "Lanjut", "3"})

		require.Len(t, s.Courses, 1)
		c := s.Courses[0]
		assert.Equal(t, 2, c.Number)
		assert.Equal(t, "Basis Data Lanjut", c.Title)
		assert.Equal(t, 3, c.Credits)
		assert.Empty(t, c.Sessions)
		assert.Empty(t, c.Instructors)
	})

	t.Run("blank title segment is skipped", func(t *testing.T) {
		s := p.ParseLines([]string{"1", "Basis Data", "", "Lanjut", "3"})

		require.Len(t, s.Courses, 1)
		assert.Equal(t, "Basis Data Lanjut", s.Courses[0].Title)
		assert.Equal(t, 3, s.Courses[0].Credits)
	})

	t.Run("friday with typographic apostrophe keeps its session", func(t *testing.T) {
		s := p.ParseLines([]string{"1", "X", "3", "Jum\u2019at, 08:00-09:40 R: FST-305 Budi Santoso"})

		require.Len(t, s.Courses, 1)
		c := s.Courses[0]
		assert.Equal(t, []Session{{Day: "Jum\u2019at", Time: "08:00-09:40", Room: "FST-305"}}, c.Sessions)
		assert.Equal(t, []Instructor{{Name: "Budi Santoso"}}, c.Instructors)
	})

	t.Run("duplicate instructor collapses", func(t *testing.T) {
		lines := []string{
			"1", "Pemrograman Web", "3",
			janeLine,
			"Dr. Jane Smith (12345678 123456 1 001)",
			"Rabu, 10:00-11:40 R: FST-201 Budi Santoso",
			"Budi Santoso",
		}

		s := p.ParseLines(lines)

		require.Len(t, s.Courses, 1)
		c := s.Courses[0]
		assert.Len(t, c.Sessions, 2)
		assert.Equal(t, []Instructor{{Name: "Dr. Jane Smith"}, {Name: "Budi Santoso"}}, c.Instructors)
	})

	t.Run("short instructor rejected", func(t *testing.T) {
		s := p.ParseLines([]string{"1", "Kalkulus", "2", "Andi (12345678 123456 1 001)"})

		require.Len(t, s.Courses, 1)
		assert.Empty(t, s.Courses[0].Instructors)
	})
}

func TestParse_FullDocument(t *testing.T) {
	s := Parse(sampleKRS)

	assert.Equal(t, Student{
		Name:         "John Doe",
		ID:           "12345678",
		Semester:     "Ganjil",
		AcademicYear: "2023/2024",
		Program:      "Teknik Informatika",
	}, s.Student)

	require.Len(t, s.Courses, 3)

	first := s.Courses[0]
	assert.Equal(t, "Algoritma dan Struktur Data", first.Title)
	assert.Equal(t, []Session{
		{Day: "Senin", Time: "08:00-09:40", Room: "FST-305"},
		{Day: "Rabu", Time: "10:00-11:40", Room: "FST-201"},
	}, first.Sessions)
	assert.Equal(t, []Instructor{{Name: "Dr. Jane Smith"}, {Name: "Budi Santoso, M.Kom."}}, first.Instructors)

	second := s.Courses[1]
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, "Basis Data Lanjut", second.Title)
	assert.Equal(t, []Instructor{{Name: "Siti Aminah, M.T."}}, second.Instructors)

	third := s.Courses[2]
	assert.Equal(t, "Kewarganegaraan", third.Title)
	assert.Equal(t, 2, third.Credits)
	assert.Empty(t, third.Sessions)

	assert.Equal(t, 8, s.TotalCredits())
	assert.Equal(t, 3, s.SessionCount())
}

func TestParse_Degenerate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		s := Parse("")
		require.NotNil(t, s)
		assert.Equal(t, Student{}, s.Student)
		assert.NotNil(t, s.Courses)
		assert.Empty(t, s.Courses)
	})

	t.Run("title runs to end of input", func(t *testing.T) {
		s := Parse("5\nStatistika\nTerapan")
		require.Len(t, s.Courses, 1)
		assert.Equal(t, "Statistika Terapan", s.Courses[0].Title)
		assert.Equal(t, 0, s.Courses[0].Credits)
	})

	t.Run("marker on last line", func(t *testing.T) {
		s := Parse("7")
		require.Len(t, s.Courses, 1)
		assert.Equal(t, 7, s.Courses[0].Number)
		assert.Equal(t, "", s.Courses[0].Title)
	})

	t.Run("day row without room ends the block", func(t *testing.T) {
		s := Parse("1\nFisika\n3\nSenin, 08:00-09:40\n2\nKimia\n2")
		require.Len(t, s.Courses, 2)
		assert.Empty(t, s.Courses[0].Sessions)
		assert.Equal(t, "Kimia", s.Courses[1].Title)
		assert.Equal(t, 2, s.Courses[1].Credits)
	})

	t.Run("windows line endings", func(t *testing.T) {
		s := Parse("NIM\r\n: 99\r\n1\r\nFisika\r\n3\r\n")
		assert.Equal(t, "99", s.ID)
		require.Len(t, s.Courses, 1)
		assert.Equal(t, "Fisika", s.Courses[0].Title)
	})

	t.Run("sequence numbers are not validated", func(t *testing.T) {
		s := Parse("4\nA\n1\n\n4\nB\n2\n\n1\nC\n3")
		require.Len(t, s.Courses, 3)
		assert.Equal(t, []int{4, 4, 1}, []int{s.Courses[0].Number, s.Courses[1].Number, s.Courses[2].Number})
	})
}

func TestParse_Idempotent(t *testing.T) {
	p := NewParser(DefaultOptions())
	lines := SplitLines(sampleKRS)

	assert.Equal(t, p.ParseLines(lines), p.ParseLines(lines))
}

func TestParse_Concurrent(t *testing.T) {
	p := NewParser(DefaultOptions())
	want := p.Parse(sampleKRS)

	var wg sync.WaitGroup
	results := make([]*Schedule, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Parse(sampleKRS)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParse_MinInstructorNameLen(t *testing.T) {
	lines := []string{"1", "Kalkulus", "2", "Andi (12345678 123456 1 001)"}

	s := NewParser(Options{MinInstructorNameLen: 4}).ParseLines(lines)
	require.Len(t, s.Courses, 1)
	assert.Equal(t, []Instructor{{Name: "Andi"}}, s.Courses[0].Instructors)

	assert.Equal(t, DefaultMinInstructorNameLen, NewParser(Options{}).Options().MinInstructorNameLen)
}

func TestSchedule_JSON(t *testing.T) {
	s := Parse(strings.Join([]string{"NIM", ":12345678", "1", "Algoritma dan Struktur Data", "3", janeLine, "2", "Etika", "2"}, "\n"))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"nama": "",
		"nim": "12345678",
		"semester": "",
		"tahun_akademik": "",
		"program_studi": "",
		"jadwal": [
			{
				"no": 1,
				"mata_kuliah": "Algoritma dan Struktur Data",
				"sks": 3,
				"jadwal_kuliah": [{"hari": "Senin", "waktu": "08:00-09:40", "ruangan": "FST-305"}],
				"dosen": [{"nama": "Dr. Jane Smith"}]
			},
			{
				"no": 2,
				"mata_kuliah": "Etika",
				"sks": 2,
				"jadwal_kuliah": [],
				"dosen": []
			}
		]
	}`, string(data))
}
