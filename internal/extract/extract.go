package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"vue-class-migrator/internal/common"
	"vue-class-migrator/internal/diagnostic"
	"vue-class-migrator/internal/source"
)

// componentDecorator is the decorator name that marks a class component.
const componentDecorator = "Component"

// Extract scans the unit for a @Component class declaration and builds
// its model. Returns false when the unit holds no recognizable component;
// the caller then leaves the unit untouched.
func Extract(u *source.Unit, diags *diagnostic.Diagnostics) (*ComponentModel, bool) {
	root := u.Root()

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)

		var class *sitter.Node

		var decorators []*sitter.Node

		switch child.Type() {
		case "export_statement":
			decorators = childrenOfType(child, "decorator")

			decl := child.ChildByFieldName("declaration")
			if decl == nil || decl.Type() != "class_declaration" {
				continue
			}

			class = decl
		case "class_declaration":
			class = child
		default:
			continue
		}

		decorators = append(decorators, childrenOfType(class, "decorator")...)

		component := findComponentDecorator(u, decorators)
		if component == nil {
			continue
		}

		return buildModel(u, child, class, component, diags), true
	}

	return nil, false
}

// findComponentDecorator returns the @Component decorator node, or nil.
func findComponentDecorator(u *source.Unit, decorators []*sitter.Node) *sitter.Node {
	for _, dec := range decorators {
		expr := dec.NamedChild(0)
		if expr == nil {
			continue
		}

		switch expr.Type() {
		case "identifier":
			if u.NodeText(expr) == componentDecorator {
				return dec
			}
		case "call_expression":
			fn := expr.ChildByFieldName("function")
			if fn != nil && fn.Type() == "identifier" && u.NodeText(fn) == componentDecorator {
				return dec
			}
		}
	}

	return nil
}

func buildModel(u *source.Unit, top, class, component *sitter.Node, diags *diagnostic.Diagnostics) *ComponentModel {
	model := &ComponentModel{
		Computed: make(map[string]*ComputedPair),
		Start:    top.StartByte(),
		End:      top.EndByte(),
	}

	if name := class.ChildByFieldName("name"); name != nil {
		model.Name = u.NodeText(name)
	}

	// The class doc comment joins the replaced span so it can be
	// re-emitted above the new export.
	if doc := precedingComment(top); doc != nil {
		model.Doc = commentLines(u.NodeText(doc))
		model.Start = doc.StartByte()
	}

	model.Passthrough = passthroughEntries(u, component)

	if body := class.ChildByFieldName("body"); body != nil {
		extractMembers(u, body, model, diags)
	}

	return model
}

// passthroughEntries collects the @Component({...}) object entries in
// source order, values verbatim. A bare @Component has none.
func passthroughEntries(u *source.Unit, decorator *sitter.Node) []OptionEntry {
	expr := decorator.NamedChild(0)
	if expr == nil || expr.Type() != "call_expression" {
		return nil
	}

	args := expr.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}

	object := args.NamedChild(0)
	if object.Type() != "object" {
		return nil
	}

	var entries []OptionEntry

	for i := 0; i < int(object.NamedChildCount()); i++ {
		entry := object.NamedChild(i)

		switch entry.Type() {
		case "pair":
			key := entry.ChildByFieldName("key")
			value := entry.ChildByFieldName("value")

			if key != nil && value != nil {
				entries = append(entries, OptionEntry{
					Key:   u.NodeText(key),
					Value: u.NodeText(value),
				})
			}
		case "shorthand_property_identifier":
			text := u.NodeText(entry)
			entries = append(entries, OptionEntry{Key: text, Value: text})
		}
	}

	return entries
}

func extractMembers(u *source.Unit, body *sitter.Node, model *ComponentModel, diags *diagnostic.Diagnostics) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)

		switch member.Type() {
		case "comment":
			// Attached to the following member via precedingComment.
		case "public_field_definition":
			extractField(u, member, model, diags)
		case "method_definition":
			extractMethod(u, member, model, diags)
		default:
			diags.AddWarning(diagnostic.CodeUnsupportedMember,
				"class member is not translated: "+member.Type(),
				model.Name, firstLine(u.NodeText(member)))
		}
	}
}

func extractField(u *source.Unit, field *sitter.Node, model *ComponentModel, diags *diagnostic.Diagnostics) {
	name := u.NodeText(field.ChildByFieldName("name"))
	doc := memberDoc(u, field)
	typeText := annotationText(u, field.ChildByFieldName("type"))
	initText := ""

	if value := field.ChildByFieldName("value"); value != nil {
		initText = u.NodeText(value)
	}

	if hasChildOfType(field, "static") {
		diags.AddWarning(diagnostic.CodeUnsupportedMember,
			"static field is not translated", model.Name, name)

		return
	}

	if prop := propDecorator(u, field); prop != nil {
		p := PropModel{
			Name:    name,
			Doc:     doc,
			Type:    typeText,
			Default: initText,
		}

		for _, opt := range decoratorOptions(u, prop) {
			switch opt.Key {
			case "default":
				p.Default = opt.Value
			case "required":
				p.Required = opt.Value
			}
		}

		model.Props = append(model.Props, p)

		return
	}

	if initText == "" {
		diags.AddWarning(diagnostic.CodeDataFieldWithoutInit,
			"field has no initializer and is not carried into data()",
			model.Name, name)

		return
	}

	model.Data = append(model.Data, DataFieldModel{
		Name:        name,
		Doc:         doc,
		Type:        typeText,
		Initializer: initText,
	})
}

func extractMethod(u *source.Unit, method *sitter.Node, model *ComponentModel, diags *diagnostic.Diagnostics) {
	name := u.NodeText(method.ChildByFieldName("name"))

	isGetter := hasChildOfType(method, "get")
	isSetter := hasChildOfType(method, "set")

	if hasChildOfType(method, "static") || (!isGetter && !isSetter) {
		diags.AddWarning(diagnostic.CodeUnsupportedMember,
			"method is not translated", model.Name, name)

		return
	}

	accessor := &AccessorModel{
		Doc:        memberDoc(u, method),
		Statements: bodyStatements(u, method.ChildByFieldName("body")),
	}

	pair, ok := model.Computed[name]
	if !ok {
		pair = &ComputedPair{}
		model.Computed[name] = pair
		model.ComputedOrder = append(model.ComputedOrder, name)
	}

	if isGetter {
		accessor.ReturnType = annotationText(u, method.ChildByFieldName("return_type"))
		pair.Getter = accessor

		return
	}

	params := method.ChildByFieldName("parameters")
	if params != nil && params.NamedChildCount() > 0 {
		param := params.NamedChild(0)
		accessor.ParamName = u.NodeText(param.ChildByFieldName("pattern"))
		accessor.ParamType = annotationText(u, param.ChildByFieldName("type"))
	}

	pair.Setter = accessor
}

// propDecorator returns the @Prop decorator of a field, or nil.
func propDecorator(u *source.Unit, field *sitter.Node) *sitter.Node {
	for _, dec := range childrenOfType(field, "decorator") {
		expr := dec.NamedChild(0)
		if expr == nil {
			continue
		}

		name := ""

		switch expr.Type() {
		case "identifier":
			name = u.NodeText(expr)
		case "call_expression":
			if fn := expr.ChildByFieldName("function"); fn != nil {
				name = u.NodeText(fn)
			}
		}

		if name == "Prop" {
			return dec
		}
	}

	return nil
}

// decoratorOptions returns the entries of a decorator's first object
// argument, e.g. default/required of @Prop({default: 1}).
func decoratorOptions(u *source.Unit, decorator *sitter.Node) []OptionEntry {
	return passthroughEntries(u, decorator)
}

// bodyStatements captures each top-level statement (and interleaved
// comment) of a statement block as dedented verbatim text.
func bodyStatements(u *source.Unit, block *sitter.Node) []string {
	if block == nil {
		return nil
	}

	var statements []string

	for i := 0; i < int(block.NamedChildCount()); i++ {
		stmt := block.NamedChild(i)
		text := u.NodeText(stmt)

		// Continuation lines keep their original indentation; restore
		// the first line's column before dedenting so relative
		// indentation inside the statement survives.
		pad := strings.Repeat(" ", int(stmt.StartPoint().Column))
		statements = append(statements, common.Dedent(pad+text))
	}

	return statements
}

// memberDoc returns the doc comment lines attached to a class member.
func memberDoc(u *source.Unit, member *sitter.Node) []string {
	doc := precedingComment(member)
	if doc == nil {
		return nil
	}

	return commentLines(u.NodeText(doc))
}

// precedingComment returns the comment node immediately before node.
// The comment must end on the line directly above (or the same line as)
// the node, so a trailing comment of the previous member is not picked
// up as documentation.
func precedingComment(node *sitter.Node) *sitter.Node {
	prev := node.PrevNamedSibling()
	if prev == nil || prev.Type() != "comment" {
		return nil
	}

	if node.StartPoint().Row-prev.EndPoint().Row > 1 {
		return nil
	}

	return prev
}

// commentLines splits a comment into lines with surrounding whitespace
// trimmed, preserving one entry per source line.
func commentLines(comment string) []string {
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return lines
}

func childrenOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	var nodes []*sitter.Node

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			nodes = append(nodes, child)
		}
	}

	return nodes
}

func hasChildOfType(node *sitter.Node, nodeType string) bool {
	return len(childrenOfType(node, nodeType)) > 0
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}

	return text
}

// annotationText returns a type annotation's type text without the
// leading colon.
func annotationText(u *source.Unit, annotation *sitter.Node) string {
	if annotation == nil {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(u.NodeText(annotation), ":"))
}
