package migrate

import (
	"fmt"

	"vue-class-migrator/internal/common"
	"vue-class-migrator/internal/diagnostic"
	"vue-class-migrator/internal/extract"
)

// permissiveType is the placeholder return type for getters whose return
// type could not be determined.
const permissiveType = "unknown"

// computedEntry renders the computed option. Getter-only properties
// become a single method; getter+setter pairs become a get/set object.
// Write-only properties and setters without a parameter are structural
// violations and abort the unit. Returns an empty entry when the
// component has no computed properties.
func (e *Engine) computedEntry(model *extract.ComponentModel) (entryLines, error) {
	var out entryLines

	if common.IsEmpty(model.ComputedOrder) {
		return out, nil
	}

	out.add(1, "computed: {")

	for _, name := range model.ComputedOrder {
		pair := model.Computed[name]

		if pair.Getter == nil {
			return entryLines{}, fmt.Errorf(
				"computed property %q has a setter but no getter; write-only computed properties are not representable", name)
		}

		if pair.Setter == nil {
			e.renderGetterOnly(&out, model.Name, name, pair.Getter)
			continue
		}

		if err := e.renderPair(&out, model.Name, name, pair); err != nil {
			return entryLines{}, err
		}
	}

	out.add(1, "},")

	return out, nil
}

func (e *Engine) renderGetterOnly(out *entryLines, component, name string, getter *extract.AccessorModel) {
	returnType := getter.ReturnType
	if returnType == "" {
		returnType = permissiveType
		e.Diags.AddWarning(diagnostic.CodeComputedNeedsReturnType,
			"getter has no explicit return type; add one to replace the permissive placeholder",
			component, name)
	}

	out.addDoc(2, getter.Doc)
	out.add(2, fmt.Sprintf("%s(): %s {", name, returnType))
	out.addBody(3, getter.Statements)
	out.add(2, "},")
}

// renderPair renders a get/set object. The getter's return type must
// mirror the setter's parameter type; when the parameter is untyped the
// permissive placeholder is used instead.
func (e *Engine) renderPair(out *entryLines, component, name string, pair *extract.ComputedPair) error {
	setter := pair.Setter
	if setter.ParamName == "" {
		return fmt.Errorf("setter of computed property %q has no parameter to assign from", name)
	}

	returnType := setter.ParamType
	if returnType == "" {
		returnType = permissiveType
		e.Diags.AddWarning(diagnostic.CodeComputedNeedsReturnType,
			"setter parameter has no explicit type; the getter keeps the permissive placeholder",
			component, name)
	}

	param := setter.ParamName
	if setter.ParamType != "" {
		param += ": " + setter.ParamType
	}

	out.addDoc(2, pair.Getter.Doc)
	out.add(2, name+": {")
	out.add(3, fmt.Sprintf("get(): %s {", returnType))
	out.addBody(4, pair.Getter.Statements)
	out.add(3, "},")
	out.add(3, fmt.Sprintf("set(%s) {", param))
	out.addBody(4, setter.Statements)
	out.add(3, "},")
	out.add(2, "},")

	return nil
}
