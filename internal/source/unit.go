package source

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Unit is one parsed TypeScript source file under rewrite.
type Unit struct {
	// Path is the file path the unit was read from (informational).
	Path string

	text  []byte
	tree  *sitter.Tree
	edits []*Edit
}

// Edit is a staged replacement of the byte range [Start, End) with Text.
// Insertions use Start == End. The text can be re-rendered up until Apply.
type Edit struct {
	Start uint32
	End   uint32
	Text  string
}

// SetText replaces the edit's replacement text.
func (e *Edit) SetText(text string) {
	e.Text = text
}

// Parse parses content as TypeScript and returns a new Unit.
func Parse(ctx context.Context, path string, content []byte) (*Unit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Unit{
		Path: path,
		text: content,
		tree: tree,
	}, nil
}

// Root returns the root node of the current syntax tree.
func (u *Unit) Root() *sitter.Node {
	return u.tree.RootNode()
}

// Text returns the unit's current text.
func (u *Unit) Text() []byte {
	return u.text
}

// NodeText returns the exact source text of node.
func (u *Unit) NodeText(node *sitter.Node) string {
	if node == nil {
		return ""
	}

	return string(u.text[node.StartByte():node.EndByte()])
}

// Stage queues a replacement of [start, end) with text and returns the
// edit so the caller can re-render it before Apply.
func (u *Unit) Stage(start, end uint32, text string) *Edit {
	e := &Edit{Start: start, End: end, Text: text}
	u.edits = append(u.edits, e)

	return e
}

// StageNode queues a replacement of node's span with text.
func (u *Unit) StageNode(node *sitter.Node, text string) *Edit {
	return u.Stage(node.StartByte(), node.EndByte(), text)
}

// Pending returns the number of staged edits.
func (u *Unit) Pending() int {
	return len(u.edits)
}

// Apply splices all staged edits into the text in one pass and re-parses.
// Staged spans must not overlap; overlapping edits indicate a translator
// bug and abort the unit.
func (u *Unit) Apply(ctx context.Context) error {
	if len(u.edits) == 0 {
		return nil
	}

	edits := make([]*Edit, len(u.edits))
	copy(edits, u.edits)

	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Start < edits[j].Start
	})

	for i := 1; i < len(edits); i++ {
		if edits[i].Start < edits[i-1].End {
			return fmt.Errorf("%s: overlapping edits at byte %d", u.Path, edits[i].Start)
		}
	}

	var out []byte

	var cursor uint32
	for _, e := range edits {
		out = append(out, u.text[cursor:e.Start]...)
		out = append(out, e.Text...)
		cursor = e.End
	}

	out = append(out, u.text[cursor:]...)

	u.text = out
	u.edits = nil

	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, u.text)
	if err != nil {
		return fmt.Errorf("re-parsing %s after rewrite: %w", u.Path, err)
	}

	u.tree = tree

	return nil
}

// String returns the unit's current text as a string.
func (u *Unit) String() string {
	return string(u.text)
}
