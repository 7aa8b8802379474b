// Package imports idempotently registers named imports in a source unit.
//
// Registration stages edits on the unit; nothing is written until the
// unit's edits are applied. Repeated calls for the same module merge into
// one staged edit, and names already imported by the source are never
// added twice.
package imports

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"vue-class-migrator/internal/source"
)

// Ensurer tracks staged named imports for one source unit.
type Ensurer struct {
	unit    *source.Unit
	modules map[string]*moduleState
}

type moduleState struct {
	// existing names already imported from the module in the source.
	existing map[string]bool
	// staged names queued for addition, in first-request order.
	staged []string
	// edit is the staged edit rendering the additions. Re-rendered
	// whenever staged grows.
	edit *source.Edit

	// Exactly one of the three targets below is active.

	// namedImports is the existing `{ a, b }` clause to extend.
	namedImports *sitter.Node
	// clause is the existing default-only import clause (`Vue`) to
	// which a named group is appended.
	clause *sitter.Node
	// insertAt is the byte offset for a brand-new import statement.
	insertAt     uint32
	atFileStart  bool
	quote        string
	clausePrefix string
}

// NewEnsurer creates an Ensurer for the unit.
func NewEnsurer(u *source.Unit) *Ensurer {
	return &Ensurer{
		unit:    u,
		modules: make(map[string]*moduleState),
	}
}

// Ensure guarantees the named imports exist for the module, staging at
// most one edit per module regardless of how often it is called.
func (e *Ensurer) Ensure(module string, names ...string) {
	state, ok := e.modules[module]
	if !ok {
		state = e.scan(module)
		e.modules[module] = state
	}

	added := false

	for _, name := range names {
		if state.existing[name] {
			continue
		}

		state.existing[name] = true
		state.staged = append(state.staged, name)
		added = true
	}

	if added {
		e.render(module, state)
	}
}

// scan locates the module's import statement (if any) and records the
// names it already provides.
func (e *Ensurer) scan(module string) *moduleState {
	state := &moduleState{
		existing: make(map[string]bool),
		quote:    `"`,
	}

	root := e.unit.Root()

	var lastImport *sitter.Node

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "import_statement" {
			continue
		}

		lastImport = stmt

		src := stmt.ChildByFieldName("source")
		if src == nil {
			continue
		}

		srcText := e.unit.NodeText(src)
		if len(srcText) >= 2 {
			state.quote = srcText[:1]
		}

		if strings.Trim(srcText, `'"`) != module {
			continue
		}

		clause := firstChildOfType(stmt, "import_clause")
		if clause == nil {
			continue
		}

		if named := firstChildOfType(clause, "named_imports"); named != nil {
			state.namedImports = named

			for j := 0; j < int(named.NamedChildCount()); j++ {
				spec := named.NamedChild(j)
				if spec.Type() != "import_specifier" {
					continue
				}

				if name := spec.ChildByFieldName("name"); name != nil {
					state.existing[e.unit.NodeText(name)] = true
				}
			}

			return state
		}

		// Default-only import: append a named group to the clause.
		state.clause = clause
		state.clausePrefix = e.unit.NodeText(clause)

		return state
	}

	if lastImport != nil {
		state.insertAt = lastImport.EndByte()
	} else {
		state.atFileStart = true
	}

	return state
}

// render (re)writes the staged edit's replacement text.
func (e *Ensurer) render(module string, state *moduleState) {
	switch {
	case state.namedImports != nil:
		text := e.unit.NodeText(state.namedImports)
		text = strings.TrimSuffix(text, "}")
		text = strings.TrimRight(text, " \t\n,")

		if strings.TrimLeft(text, "{ \t\n") == "" {
			text = "{ " + strings.Join(state.staged, ", ")
		} else {
			text += ", " + strings.Join(state.staged, ", ")
		}

		text += " }"

		if state.edit == nil {
			state.edit = e.unit.StageNode(state.namedImports, text)
		} else {
			state.edit.SetText(text)
		}
	case state.clause != nil:
		text := state.clausePrefix + ", { " + strings.Join(state.staged, ", ") + " }"

		if state.edit == nil {
			state.edit = e.unit.StageNode(state.clause, text)
		} else {
			state.edit.SetText(text)
		}
	default:
		line := "import { " + strings.Join(state.staged, ", ") + " } from " +
			state.quote + module + state.quote + ";"

		text := "\n" + line
		if state.atFileStart {
			text = line + "\n"
		}

		if state.edit == nil {
			state.edit = e.unit.Stage(state.insertAt, state.insertAt, text)
		} else {
			state.edit.SetText(text)
		}
	}
}

func firstChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			return child
		}
	}

	return nil
}
