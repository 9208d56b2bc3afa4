package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// GAV is the group/artifact/version identity of a published or in-workspace component.
//
// Version is informational: lookups always go through Key, which drops it.
type GAV struct {
	Group    InternedString
	Artifact InternedString
	Version  InternedString
}

// NewGAV creates a GAV from plain strings. An empty version stays absent.
func NewGAV(group, artifact, version string) GAV {
	return GAV{
		Group:    NewInternedString(group),
		Artifact: NewInternedString(artifact),
		Version:  NewInternedString(version),
	}
}

// ParseGAV parses "group:artifact[:version]".
func ParseGAV(s string) (GAV, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return GAV{}, zerr.With(ErrInvalidCoordinates, "coordinates", s)
	}
	gav := GAV{
		Group:    NewInternedString(parts[0]),
		Artifact: NewInternedString(parts[1]),
	}
	if len(parts) == 3 {
		gav.Version = NewInternedString(parts[2])
	}
	if err := gav.Validate(); err != nil {
		return GAV{}, zerr.With(err, "coordinates", s)
	}
	return gav, nil
}

// Key returns the lookup key of the GAV: the same group and artifact with the version dropped.
func (g GAV) Key() GAV {
	return GAV{Group: g.Group, Artifact: g.Artifact}
}

// Validate checks that group and artifact are set.
func (g GAV) Validate() error {
	if g.Group.IsZero() || g.Artifact.IsZero() {
		return zerr.With(ErrInvalidCoordinates, "coordinates", g.String())
	}
	return nil
}

// WithVersion returns a copy of the GAV carrying the given version.
func (g GAV) WithVersion(version string) GAV {
	g.Version = NewInternedString(version)
	return g
}

// String renders the GAV in "group:artifact[:version]" notation.
func (g GAV) String() string {
	s := g.Group.String() + ":" + g.Artifact.String()
	if !g.Version.IsZero() {
		s += ":" + g.Version.String()
	}
	return s
}
