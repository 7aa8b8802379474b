package source

import "strings"

// Format normalizes whitespace after a rewrite: trailing spaces are
// stripped, runs of three or more blank lines collapse to one, and the
// text ends with exactly one newline. The splice itself preserves all
// surrounding text byte-for-byte, so this is the only cosmetic pass.
func (u *Unit) Format() {
	lines := strings.Split(string(u.text), "\n")

	var out []string

	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")

		if line == "" {
			blanks++
			continue
		}

		if blanks > 0 {
			if blanks >= 3 {
				blanks = 1
			}

			for range blanks {
				out = append(out, "")
			}

			blanks = 0
		}

		out = append(out, line)
	}

	u.text = []byte(strings.Join(out, "\n") + "\n")
}
