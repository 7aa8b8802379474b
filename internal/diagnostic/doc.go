// Package diagnostic provides structured warnings and notes raised while
// translating a class component to the options API.
//
// Key capabilities:
//   - Missing computed return-type warnings
//   - Dropped/unsupported class member warnings
//   - Notes on silently resolved option conflicts (default vs required)
//
// Diagnostics are accumulated in a caller-supplied sink so callers (and
// tests) can inspect exactly what was raised for a unit instead of
// scraping log output.
package diagnostic
