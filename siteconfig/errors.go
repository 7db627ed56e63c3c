package siteconfig

import (
	"strconv"
	"strings"
)

// FieldError describes one problem with one configuration key.
type FieldError struct {
	Field   string // YAML key path, e.g. "labels.readMore"; empty for document-level problems
	Message string
}

func (f FieldError) String() string {
	if f.Field == "" {
		return f.Message
	}
	return f.Field + ": " + f.Message
}

// ConfigError is returned by Load and Validate for every kind of invalid
// configuration. All problems found in a pass are reported together.
// Use errors.As to inspect it.
type ConfigError struct {
	Path     string // source file, empty for the built-in default
	Problems []FieldError
	Err      error // underlying read or syntax error, if any
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("invalid site config")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Path))
	}
	if len(e.Problems) == 0 {
		if e.Err != nil {
			b.WriteString(": ")
			b.WriteString(e.Err.Error())
		}
		return b.String()
	}
	b.WriteString(": ")
	for i, p := range e.Problems {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// HasField reports whether any problem was recorded for field.
func (e *ConfigError) HasField(field string) bool {
	for _, p := range e.Problems {
		if p.Field == field {
			return true
		}
	}
	return false
}

// checker accumulates problems during a single pass.
type checker struct {
	problems []FieldError
}

func (c *checker) add(field, msg string) {
	c.problems = append(c.problems, FieldError{Field: field, Message: msg})
}

func (c *checker) nonEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, "must not be empty")
	}
}

func (c *checker) atLeast(field string, value, floor int) {
	if value < floor {
		c.add(field, "must be >= "+strconv.Itoa(floor)+", got "+strconv.Itoa(value))
	}
}

func (c *checker) err(path string) error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ConfigError{Path: path, Problems: c.problems}
}
