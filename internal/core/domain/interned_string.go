package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Coordinates such as group ids and project names repeat across every
// resolved artifact, so they are interned once and compared by handle.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// The empty string maps to the zero value so that absent fields compare equal.
func NewInternedString(s string) InternedString {
	if s == "" {
		return InternedString{}
	}
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the string was never set or is empty.
func (is InternedString) IsZero() bool {
	return is.String() == ""
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*is = InternedString{}
		return nil
	}
	is.h = unique.Make(string(text))
	return nil
}
