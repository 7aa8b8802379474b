package migrate

import (
	"strings"

	"vue-class-migrator/internal/common"
)

// indentUnit is one level of indentation in emitted code.
const indentUnit = "  "

// entryLines accumulates the rendered lines of one option entry.
type entryLines struct {
	lines []string
}

func (e *entryLines) add(depth int, text string) {
	e.lines = append(e.lines, strings.Repeat(indentUnit, depth)+text)
}

// addDoc re-attaches a doc comment ahead of the next emitted line.
// The comment is reconstructed line-by-line, one emitted line per source
// line; transplanting the block as a single pre-rendered unit does not
// indent correctly at the target depth. No-op when the block carries no
// text.
func (e *entryLines) addDoc(depth int, doc []string) {
	if common.IsEmpty(doc) {
		return
	}

	indent := strings.Repeat(indentUnit, depth)

	for _, line := range doc {
		switch {
		case line == "":
			e.lines = append(e.lines, "")
		case strings.HasPrefix(line, "*"):
			// Continuation lines of a /** */ block sit one space in.
			e.lines = append(e.lines, indent+" "+line)
		default:
			e.lines = append(e.lines, indent+line)
		}
	}
}

// addBody reproduces a method body verbatim, one opaque text span per
// original top-level statement (interleaved comments included). The
// statements are re-indented to the target depth and otherwise carried
// byte-for-byte; their structure is not re-derived.
func (e *entryLines) addBody(depth int, statements []string) {
	indent := strings.Repeat(indentUnit, depth)

	for _, stmt := range statements {
		for _, line := range strings.Split(stmt, "\n") {
			if strings.TrimSpace(line) == "" {
				e.lines = append(e.lines, "")
				continue
			}

			e.lines = append(e.lines, indent+line)
		}
	}
}

func (e *entryLines) addAll(other entryLines) {
	e.lines = append(e.lines, other.lines...)
}
