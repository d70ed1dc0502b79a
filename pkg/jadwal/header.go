package jadwal

import "strings"

const (
	labelNIM      = "NIM"
	labelYear     = "Tahun Akademik"
	labelName     = "Nama Mahasiswa"
	labelSemester = "Semester"
	labelProgram  = "Program Studi"
)

// ExtractStudent scans the whole document once for the student header fields.
//
// Most labels sit alone on a line with the value on the following line, prefixed by a
// colon (": John Doe"). "Tahun Akademik" carries its value on the same line. A label whose
// value line has no colon leaves the field untouched. A repeated label re-assigns the field.
func ExtractStudent(lines []string) Student {
	var s Student

	for i, line := range lines {
		switch {
		case line == labelNIM:
			if v, ok := nextLineValue(lines, i); ok {
				s.ID = v
			}
		case strings.Contains(line, labelYear):
			if idx := strings.LastIndex(line, ":"); idx >= 0 {
				s.AcademicYear = strings.TrimSpace(line[idx+1:])
			}
		case line == labelName:
			if v, ok := nextLineValue(lines, i); ok {
				s.Name = v
			}
		case line == labelSemester:
			if v, ok := nextLineValue(lines, i); ok {
				s.Semester = v
			}
		case line == labelProgram:
			if v, ok := nextLineValue(lines, i); ok {
				s.Program = v
			}
		}
	}

	return s
}

// nextLineValue returns the text after the first colon of the line following i.
func nextLineValue(lines []string, i int) (string, bool) {
	if i+1 >= len(lines) {
		return "", false
	}
	_, value, ok := strings.Cut(lines[i+1], ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}
