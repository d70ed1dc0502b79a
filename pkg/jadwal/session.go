package jadwal

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	roomMarker = "R: FST"
	roomSplit  = "R: FST-"
	roomPrefix = "FST-"
)

var (
	timeRangePattern = regexp.MustCompile(`\d+:\d+-\d+:\d+`)
	// staff identifier printed after lecturer names, e.g. "(19870512 201903 1 004)"
	staffIDPattern = regexp.MustCompile(`\(\d{8} \d{6} \d \d{3}\)`)
)

// LineKind classifies a line seen while collecting the sessions of a course.
type LineKind int

const (
	// LineOutside ends the current course block.
	LineOutside LineKind = iota
	// LineSession is a "<Day>, <time> R: FST-<room> <lecturer>" row.
	LineSession
	// LineInstructor is a row holding only a lecturer name.
	LineInstructor
)

func (k LineKind) String() string {
	switch k {
	case LineSession:
		return "session"
	case LineInstructor:
		return "instructor"
	default:
		return "outside"
	}
}

// LineResult is what ClassifyLine found on a single line. Session and Instructor are nil
// when the line belongs to the block but did not yield a complete value.
type LineResult struct {
	Kind       LineKind
	Session    *Session
	Instructor *Instructor
}

// ClassifyLine decomposes one line of a course block into a session and/or an instructor.
func (p *Parser) ClassifyLine(line string) LineResult {
	if strings.Contains(line, roomMarker) {
		return p.parseSessionLine(line)
	}

	if line == "" || startsWithDay(line) {
		return LineResult{Kind: LineOutside}
	}
	if _, ok := parseBareNumber(line); ok {
		return LineResult{Kind: LineOutside}
	}

	res := LineResult{Kind: LineInstructor}
	if name, ok := p.normalizeInstructor(line); ok {
		res.Instructor = &Instructor{Name: name}
	}
	return res
}

func (p *Parser) parseSessionLine(line string) LineResult {
	res := LineResult{Kind: LineSession}

	left, right, found := strings.Cut(line, roomSplit)
	if !found {
		return res
	}

	room, rest, _ := strings.Cut(right, " ")

	day, _, hasComma := strings.Cut(left, ",")
	day = strings.TrimSpace(day)
	timeRange := timeRangePattern.FindString(left)

	if hasComma && day != "" && timeRange != "" && room != "" {
		res.Session = &Session{
			Day:  day,
			Time: timeRange,
			Room: roomPrefix + room,
		}
	}

	if rest = strings.TrimSpace(rest); rest != "" {
		if name, ok := p.normalizeInstructor(rest); ok {
			res.Instructor = &Instructor{Name: name}
		}
	}

	return res
}

// normalizeInstructor strips the staff identifier and rejects fragments shorter than
// the configured minimum.
func (p *Parser) normalizeInstructor(raw string) (string, bool) {
	name := strings.TrimSpace(staffIDPattern.ReplaceAllString(raw, ""))
	return name, validInstructorName(name, p.opts.MinInstructorNameLen)
}

func validInstructorName(name string, minLen int) bool {
	return name != "" && utf8.RuneCountInString(name) >= minLen
}
