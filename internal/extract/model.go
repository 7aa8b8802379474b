package extract

// ComponentModel is the structured view of one class component.
type ComponentModel struct {
	// Name is the class identifier. Empty if the class is anonymous;
	// the engine treats that as a precondition violation.
	Name string
	// Doc holds the class doc comment lines, outermost comment only,
	// one entry per source line. Empty if the class has no doc comment.
	Doc []string
	// Start and End delimit the byte span the rewrite replaces: from the
	// doc comment (if any) or first decorator through the class body.
	Start uint32
	End   uint32
	// Passthrough lists the @Component option object entries in source
	// order. Duplicates are kept as written.
	Passthrough []OptionEntry
	// Props lists @Prop fields in declaration order.
	Props []PropModel
	// Data lists initialized plain fields in declaration order.
	Data []DataFieldModel
	// Computed maps property name to its accessor pair. ComputedOrder
	// preserves declaration order for deterministic emission.
	Computed      map[string]*ComputedPair
	ComputedOrder []string
}

// OptionEntry is one key/value entry of the @Component option object,
// value text carried verbatim.
type OptionEntry struct {
	Key   string
	Value string
}

// PropModel describes one @Prop field.
type PropModel struct {
	Name string
	// Doc holds the field's doc comment lines, if any.
	Doc []string
	// Type is the explicit type annotation text without the leading
	// colon, e.g. "string" or "Array<Item>". Empty if absent.
	Type string
	// Default is the default value expression text: the decorator's
	// default option if present, else the field initializer. Empty if
	// neither exists.
	Default string
	// Required is the decorator's required option expression text.
	// Empty if absent.
	Required string
}

// DataFieldModel describes one reactive data field. The initializer is
// mandatory; fields without one are dropped at extraction with a
// diagnostic.
type DataFieldModel struct {
	Name        string
	Doc         []string
	Type        string
	Initializer string
}

// ComputedPair holds the accessors of one computed property. A getter
// may stand alone; a setter without a getter is invalid and rejected by
// the engine.
type ComputedPair struct {
	Getter *AccessorModel
	Setter *AccessorModel
}

// AccessorModel describes one get or set accessor.
type AccessorModel struct {
	Doc []string
	// ReturnType is the getter's explicit return type text, empty if
	// absent. Unused for setters.
	ReturnType string
	// ParamName and ParamType describe the setter's first parameter.
	// Unused for getters. ParamName empty means the setter declared no
	// parameter, which the engine rejects.
	ParamName string
	ParamType string
	// Statements holds the body's top-level statements and interleaved
	// comments, dedented, one entry per statement, text verbatim.
	Statements []string
}
