package config

import (
	"fmt"
	"strings"
)

// Error collects everything wrong with one configuration source so a
// single `config test` run can report it all.
type Error struct {
	Path    string   // file the config came from; empty for built-in defaults
	Missing []string // unresolved ${VAR} references
	Errors  []string // validation failures, "field: reason"
}

// Source names where the config came from.
func (e *Error) Source() string {
	if e.Path == "" {
		return "built-in defaults"
	}
	return e.Path
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "invalid config (%s)", e.Source())
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\n  unset variables: %s", strings.Join(e.Missing, ", "))
	}
	for _, msg := range e.Errors {
		fmt.Fprintf(&b, "\n  %s", msg)
	}
	return b.String()
}

// HasErrors reports whether anything was collected.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
