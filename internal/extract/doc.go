// Package extract builds the structured component model the migration
// engine consumes.
//
// It scans a parsed source unit for a class declaration carrying a
// @Component decorator and captures, with byte-exact source text:
//   - the decorator's option object entries (passed through verbatim)
//   - @Prop fields with their types, defaults and required flags
//   - initialized plain fields (reactive data)
//   - get/set accessor pairs (computed properties)
//   - doc comments on the class and on each member
//
// The model is read-only input for the engine; extraction never edits
// the unit.
package extract
