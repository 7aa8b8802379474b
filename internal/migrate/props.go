package migrate

import (
	"fmt"

	"vue-class-migrator/internal/common"
	"vue-class-migrator/internal/diagnostic"
	"vue-class-migrator/internal/extract"
	"vue-class-migrator/internal/imports"
)

// vueModule is the module providing defineComponent and PropType.
const vueModule = "vue"

// propsEntry renders the props option: one config object per @Prop field,
// in declaration order. Returns an empty entry when the component has no
// props.
func (e *Engine) propsEntry(model *extract.ComponentModel, ens *imports.Ensurer) entryLines {
	var out entryLines

	if common.IsEmpty(model.Props) {
		return out
	}

	out.add(1, "props: {")

	for _, prop := range model.Props {
		out.addDoc(2, prop.Doc)
		out.add(2, prop.Name+": {")
		out.add(3, "type: "+e.propType(prop, ens)+",")
		out.add(3, e.propPresence(model.Name, prop)+",")
		out.add(2, "},")
	}

	out.add(1, "},")

	return out
}

// propType maps the prop's declared type to a runtime type marker.
// Primitive types map directly; anything richer degrades to
// Function/Array/Object and keeps the declared type through a PropType
// cast, which requires the PropType import.
func (e *Engine) propType(prop extract.PropModel, ens *imports.Ensurer) string {
	if prop.Type == "" {
		// No annotation to classify; fall back to the conservative
		// marker without a cast.
		return RuntimeObject.String()
	}

	marker := ClassifyRuntimeType(prop.Type)
	if marker.IsPrimitive() {
		return marker.String()
	}

	ens.Ensure(vueModule, "PropType")

	return fmt.Sprintf("%s as PropType<%s>", marker, prop.Type)
}

// propPresence resolves the default/required pair to exactly one emitted
// entry. A declared default implies non-required, so it wins; a bare
// required expression is carried verbatim; absent both, the framework's
// implicit required: false is made explicit.
func (e *Engine) propPresence(component string, prop extract.PropModel) string {
	switch {
	case prop.Default != "":
		if prop.Required != "" {
			e.Diags.AddInfo(diagnostic.CodeDefaultOverridesRequired,
				"prop declares both default and required; required is dropped",
				component, prop.Name)
		}

		return "default: " + prop.Default
	case prop.Required != "":
		return "required: " + prop.Required
	default:
		return "required: false"
	}
}
