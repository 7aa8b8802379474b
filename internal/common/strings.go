package common

import "strings"

// UnknownStr is the fallback label for unrecognized enum values.
const UnknownStr = "unknown"

// Dedent strips the longest common leading whitespace run from all
// non-blank lines of text.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin = indent
			first = false
			continue
		}

		for !strings.HasPrefix(line, margin) {
			margin = margin[:len(margin)-1]
		}
	}

	if margin == "" {
		return text
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}

	return strings.Join(lines, "\n")
}
