package diagnostic

import (
	"fmt"
	"strings"

	"vue-class-migrator/internal/common"
)

// Well-known diagnostic codes raised by the migration engine.
const (
	CodeComputedNeedsReturnType  = "computed-needs-return-type"
	CodeDefaultOverridesRequired = "default-overrides-required"
	CodeUnsupportedMember        = "unsupported-member"
	CodeDataFieldWithoutInit     = "data-field-without-initializer"
)

// Diagnostics holds all diagnostic information from one translation run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Component is the class component this relates to (if any).
	Component string
	// Member is the class member this relates to (if any).
	Member string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, component, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		Component: component,
		Member:    member,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, component, member string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Code:      code,
		Message:   message,
		Component: component,
		Member:    member,
	})
}

// IsEmpty returns true if nothing was raised.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// HasCode returns true if any diagnostic carries the given code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, w := range d.Warnings {
		if w.Code == code {
			return true
		}
	}

	for _, i := range d.Infos {
		if i.Code == code {
			return true
		}
	}

	return false
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Component != "" {
		prefix = append(prefix, "["+d.Component+"]")
	}

	if d.Member != "" {
		prefix = append(prefix, d.Member)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
