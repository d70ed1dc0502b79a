// Package jadwal turns the text of a student schedule document (KRS) into a Schedule.
//
// The parser only sees lines of text: getting them out of a PDF or HTML page is the job
// of package extract. Parsing never fails; unrecognised lines are skipped and missing
// fields keep their zero value.
package jadwal

// DefaultMinInstructorNameLen is the shortest lecturer name kept, in runes.
const DefaultMinInstructorNameLen = 6

// Options configures the parser
type Options struct {
	// MinInstructorNameLen rejects shorter lecturer candidates (<= 0 means default).
	MinInstructorNameLen int
}

// DefaultOptions returns the options matching the university's KRS layout.
func DefaultOptions() Options {
	return Options{
		MinInstructorNameLen: DefaultMinInstructorNameLen,
	}
}

// Parser extracts schedules. It holds only its options, so one Parser may be shared
// between goroutines.
type Parser struct {
	opts Options
}

// NewParser creates a new parser with the given options
func NewParser(opts Options) *Parser {
	if opts.MinInstructorNameLen <= 0 {
		opts.MinInstructorNameLen = DefaultMinInstructorNameLen
	}
	return &Parser{opts: opts}
}

// Options returns the effective parser options.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse splits text into lines and parses them.
func (p *Parser) Parse(text string) *Schedule {
	return p.ParseLines(SplitLines(text))
}

// ParseLines runs the header and course passes over the same lines and assembles the result.
func (p *Parser) ParseLines(lines []string) *Schedule {
	student := ExtractStudent(lines)
	courses := p.ParseCourses(lines)
	return p.Assemble(student, courses)
}

// Assemble combines the header with the course records, deduplicating the lecturers
// of every course.
func (p *Parser) Assemble(student Student, courses []Course) *Schedule {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		c.Instructors = DedupeInstructors(c.Instructors, p.opts.MinInstructorNameLen)
		if c.Sessions == nil {
			c.Sessions = []Session{}
		}
		out = append(out, c)
	}

	return &Schedule{
		Student: student,
		Courses: out,
	}
}

// Parse parses text with the default options.
func Parse(text string) *Schedule {
	return NewParser(DefaultOptions()).Parse(text)
}
