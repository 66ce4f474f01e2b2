package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps a field name to a human-readable problem with its value.
// A nil or empty map means the record is valid.
type ValidationErrors map[string]string

// Error renders the field problems in a stable order.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "valid"
	}
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, "; ")
}

// HasErrors reports whether any field failed validation.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}
