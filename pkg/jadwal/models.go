package jadwal

// Student holds the header fields of a schedule document (Kartu Rencana Studi).
type Student struct {
	Name         string `json:"nama"`
	ID           string `json:"nim"`
	Semester     string `json:"semester"`
	AcademicYear string `json:"tahun_akademik"`
	Program      string `json:"program_studi"`
}

// Session is one weekly meeting of a course
type Session struct {
	Day  string `json:"hari"`    // "Senin"
	Time string `json:"waktu"`   // "08:00-09:40"
	Room string `json:"ruangan"` // "FST-305"
}

// Instructor is a lecturer assigned to a course, with the staff identifier stripped
type Instructor struct {
	Name string `json:"nama"`
}

// Course is one numbered course record of the schedule
type Course struct {
	Number      int          `json:"no"`
	Title       string       `json:"mata_kuliah"`
	Credits     int          `json:"sks"`
	Sessions    []Session    `json:"jadwal_kuliah"`
	Instructors []Instructor `json:"dosen"`
}

// Schedule is the parsed document: the student header plus courses in document order.
// Student is embedded so that its fields sit at the top level of the JSON record.
type Schedule struct {
	Student
	Courses []Course `json:"jadwal"`
}

// TotalCredits sums the SKS of all courses.
func (s *Schedule) TotalCredits() int {
	total := 0
	for _, c := range s.Courses {
		total += c.Credits
	}
	return total
}

// SessionCount returns the number of sessions across all courses.
func (s *Schedule) SessionCount() int {
	n := 0
	for _, c := range s.Courses {
		n += len(c.Sessions)
	}
	return n
}
