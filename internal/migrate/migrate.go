package migrate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vue-class-migrator/internal/diagnostic"
	"vue-class-migrator/internal/extract"
	"vue-class-migrator/internal/imports"
	"vue-class-migrator/internal/source"
)

// ErrUnnamedComponent is returned when the class declaration carries no
// identifier to derive the component name from.
var ErrUnnamedComponent = errors.New("component class has no name")

// Engine translates one class component per source unit.
type Engine struct {
	// Diags receives heuristic-degradation warnings and notes. The
	// engine never writes them anywhere else; printing is the caller's
	// concern.
	Diags *diagnostic.Diagnostics
}

// New creates an Engine reporting into the given diagnostics sink.
func New(diags *diagnostic.Diagnostics) *Engine {
	return &Engine{Diags: diags}
}

// Run translates the unit's class component in place. Returns false when
// the unit holds no recognizable component (the unit is left untouched).
// On error no edit has been applied; removal of the class and insertion
// of the new export happen in one splice or not at all.
func (e *Engine) Run(ctx context.Context, u *source.Unit) (bool, error) {
	model, ok := extract.Extract(u, e.Diags)
	if !ok {
		return false, nil
	}

	if model.Name == "" {
		return false, fmt.Errorf("%s: %w", u.Path, ErrUnnamedComponent)
	}

	ens := imports.NewEnsurer(u)

	// Fixed emission order: name, passthrough, props, data, computed.
	entries := []entryLines{
		e.nameEntry(model),
		e.passthroughEntries(model),
		e.propsEntry(model, ens),
		e.dataEntry(model),
	}

	computed, err := e.computedEntry(model)
	if err != nil {
		return false, fmt.Errorf("%s: %w", u.Path, err)
	}

	entries = append(entries, computed)

	ens.Ensure(vueModule, "defineComponent")

	u.Stage(model.Start, model.End, e.assemble(model, entries))

	if err := u.Apply(ctx); err != nil {
		return false, err
	}

	u.Format()

	return true, nil
}

// nameEntry renders the component's name as a string literal entry.
func (e *Engine) nameEntry(model *extract.ComponentModel) entryLines {
	var out entryLines

	out.add(1, "name: '"+model.Name+"',")

	return out
}

// assemble wraps the accumulated entries in the factory call and puts
// the class doc comment back on top of the new export statement.
func (e *Engine) assemble(model *extract.ComponentModel, entries []entryLines) string {
	var out entryLines

	out.addDoc(0, model.Doc)
	out.add(0, "export default defineComponent({")

	for _, entry := range entries {
		out.addAll(entry)
	}

	out.add(0, "});")

	return strings.Join(out.lines, "\n")
}
