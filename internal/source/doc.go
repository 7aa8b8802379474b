// Package source wraps one TypeScript source file for rewriting.
//
// A Unit pairs the original text with its tree-sitter syntax tree and an
// ordered queue of byte-span edits. Edits are staged while the tree is
// inspected and applied in a single splice pass, so node offsets stay valid
// for the whole inspection phase. After Apply the unit is re-parsed.
package source
