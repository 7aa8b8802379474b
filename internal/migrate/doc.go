// Package migrate rewrites a Vue class component into an equivalent
// options-API declaration.
//
// The engine consumes the structured model produced by extract, runs one
// translator per option category (name, passthrough, props, data,
// computed), and assembles the results into a single defineComponent call
// that replaces the original class. Method bodies and option values are
// carried over as verbatim text; only type information is mapped, using
// cheap structural heuristics where no primitive type is declared.
//
// Heuristic degradations (a computed getter whose return type cannot be
// determined) are reported to a caller-supplied diagnostics sink and the
// translation proceeds with a permissive placeholder. Structural
// violations (unnamed class, write-only computed property, setter without
// a parameter) abort the unit before any edit is applied.
package migrate
