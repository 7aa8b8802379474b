package migrate

import "strings"

//go:generate go tool stringer -type=RuntimeType -trimprefix=Runtime -output=runtimetype_string.go

// RuntimeType is the runtime type marker a prop declaration maps to.
// Vue accepts only these constructors in a prop's type field; richer
// static types degrade to Function/Array/Object and keep the original
// type via a PropType cast.
type RuntimeType int

const (
	RuntimeString RuntimeType = iota
	RuntimeNumber
	RuntimeBoolean
	RuntimeFunction
	RuntimeArray
	RuntimeObject
)

// IsPrimitive returns true for markers that stand on their own without a
// PropType cast.
func (t RuntimeType) IsPrimitive() bool {
	return t == RuntimeString || t == RuntimeNumber || t == RuntimeBoolean
}

// ClassifyRuntimeType maps a type annotation's text to its runtime
// marker. Non-primitive types are classified by an ordered chain of
// structural predicates: a call signature wins, then array notation,
// then the conservative Object fallback.
func ClassifyRuntimeType(typeText string) RuntimeType {
	t := strings.TrimSpace(typeText)

	switch t {
	case "string":
		return RuntimeString
	case "number":
		return RuntimeNumber
	case "boolean":
		return RuntimeBoolean
	}

	switch {
	case hasCallSignature(t):
		return RuntimeFunction
	case isArrayNotation(t):
		return RuntimeArray
	default:
		return RuntimeObject
	}
}

// hasCallSignature reports whether the type text is itself invokable,
// i.e. an arrow function type like (x: number) => string.
func hasCallSignature(t string) bool {
	return strings.Contains(t, "=>")
}

// isArrayNotation reports whether the type text is written as Array<T>
// or T[].
func isArrayNotation(t string) bool {
	return strings.HasPrefix(t, "Array<") || strings.HasSuffix(t, "[]")
}
