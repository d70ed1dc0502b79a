package jadwal

// blockState is the position of the course scanner inside a course record.
type blockState int

const (
	// stateScanning looks for the next bare course number.
	stateScanning blockState = iota
	// stateTitle joins title lines until the SKS line.
	stateTitle
	// stateSessions collects session and lecturer rows.
	stateSessions
)

// ParseCourses walks the document once and returns the course records in document order.
//
// A record opens on a bare number line; the line after it always starts the title,
// further lines are appended to the title until a bare number (the SKS) appears, and
// the rows that follow are classified with ClassifyLine until one falls outside the
// block. That row is then re-read as a possible course marker. Malformed input never
// fails, it only yields fewer or emptier records. Instructors are not deduplicated here.
func (p *Parser) ParseCourses(lines []string) []Course {
	courses := []Course{}
	var current *Course
	state := stateScanning

	closeCourse := func() {
		if current != nil {
			courses = append(courses, *current)
			current = nil
		}
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		switch state {
		case stateScanning:
			i++
			number, ok := parseBareNumber(line)
			if !ok {
				continue
			}
			closeCourse()
			current = newCourse(number)
			if i < len(lines) {
				current.Title = lines[i]
				i++
			}
			state = stateTitle

		case stateTitle:
			i++
			if credits, ok := parseBareNumber(line); ok {
				current.Credits = credits
				state = stateSessions
				continue
			}
			current.Title = appendTitle(current.Title, line)

		case stateSessions:
			res := p.ClassifyLine(line)
			if res.Kind == LineOutside {
				state = stateScanning
				continue
			}
			i++
			if res.Session != nil {
				current.Sessions = append(current.Sessions, *res.Session)
			}
			if res.Instructor != nil {
				current.Instructors = append(current.Instructors, *res.Instructor)
			}
		}
	}

	closeCourse()
	return courses
}

func newCourse(number int) *Course {
	return &Course{
		Number:      number,
		Sessions:    []Session{},
		Instructors: []Instructor{},
	}
}

// appendTitle joins a wrapped title segment. Blank segments are dropped.
func appendTitle(title, segment string) string {
	if segment == "" {
		return title
	}
	if title == "" {
		return segment
	}
	return title + " " + segment
}
