package validation

import (
	"sort"
	"strings"
)

// FieldErrors collects per-field validation failures. It is returned
// by domain Validate functions and rendered as a 400 with field-level
// detail at the HTTP boundary.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		parts = append(parts, name+": "+f[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Require records an error for name when value is blank.
func (f FieldErrors) Require(name, value string) {
	if strings.TrimSpace(value) == "" {
		f[name] = name + " is required"
	}
}

// OrNil returns f as an error, or nil when no fields failed.
// The typed nil must not leak into an error interface.
func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}
