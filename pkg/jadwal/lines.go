package jadwal

import (
	"regexp"
	"strconv"
	"strings"
)

// bareNumberPattern matches a line that is nothing but a number: course markers and SKS lines.
var bareNumberPattern = regexp.MustCompile(`^\d+$`)

// SplitLines splits extracted text into trimmed lines. Blank lines are kept as "".
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// parseBareNumber returns the integer value of a bare-digits line.
func parseBareNumber(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if !bareNumberPattern.MatchString(line) {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		// out of int range, not something a KRS prints
		return 0, false
	}
	return n, true
}
