package migrate

import (
	"vue-class-migrator/internal/common"
	"vue-class-migrator/internal/extract"
)

// dataEntry renders the data option: a zero-parameter method returning
// one object entry per reactive field, in declaration order. A field's
// standalone type annotation has no place in the object literal, so typed
// fields cast their initializer instead. Returns an empty entry when the
// component has no data fields.
func (e *Engine) dataEntry(model *extract.ComponentModel) entryLines {
	var out entryLines

	if common.IsEmpty(model.Data) {
		return out
	}

	out.add(1, "data() {")
	out.add(2, "return {")

	for _, field := range model.Data {
		out.addDoc(3, field.Doc)

		value := field.Initializer
		if field.Type != "" {
			value += " as " + field.Type
		}

		out.add(3, field.Name+": "+value+",")
	}

	out.add(2, "};")
	out.add(1, "},")

	return out
}
