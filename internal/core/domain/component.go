package domain

import "path/filepath"

// ComponentKind tells whether a component is built in this workspace or published elsewhere.
type ComponentKind int

const (
	// ComponentProject is a project of the enclosing workspace.
	ComponentProject ComponentKind = iota
	// ComponentModule is an externally published module.
	ComponentModule
)

// ComponentID identifies a node of a resolved dependency graph.
type ComponentID struct {
	Kind ComponentKind

	// ProjectPath and ProjectName are set for ComponentProject.
	ProjectPath InternedString
	ProjectName InternedString

	// Module is set for ComponentModule. For projects it carries the
	// project's own declared coordinates, which may lack a group.
	Module GAV
}

// ProjectComponent builds the identifier of a workspace project.
func ProjectComponent(path, name string, declared GAV) ComponentID {
	return ComponentID{
		Kind:        ComponentProject,
		ProjectPath: NewInternedString(path),
		ProjectName: NewInternedString(name),
		Module:      declared,
	}
}

// ModuleComponent builds the identifier of an external module.
func ModuleComponent(gav GAV) ComponentID {
	return ComponentID{Kind: ComponentModule, Module: gav}
}

// IsProject reports whether the component is a project of the workspace.
func (c ComponentID) IsProject() bool {
	return c.Kind == ComponentProject
}

// String returns a human-readable name.
func (c ComponentID) String() string {
	if c.IsProject() {
		return "project " + c.ProjectPath.String()
	}
	return c.Module.String()
}

// Attribute names and values used for variant selection.
const (
	AttributeCategory         = "org.gradle.category"
	AttributeUsage            = "org.gradle.usage"
	AttributeVerificationType = "org.gradle.verificationtype"

	CategoryLibrary      = "library"
	CategoryVerification = "verification"

	UsageJavaAPI     = "java-api"
	UsageJavaRuntime = "java-runtime"

	VerificationTypeMainSources = "main-sources"
)

// Attributes describe a variant or a selection request.
type Attributes map[string]string

// Matches reports how many requested attributes the variant satisfies and
// whether it is compatible at all. An attribute the variant does not carry
// is compatible; a differing value is not.
func (a Attributes) Matches(requested Attributes) (int, bool) {
	matched := 0
	for k, want := range requested {
		got, ok := a[k]
		if !ok {
			continue
		}
		if got != want {
			return 0, false
		}
		matched++
	}
	return matched, true
}

// Artifact is one file exposed by a variant.
type Artifact struct {
	// Name discriminates artifacts of one variant. Defaults to the base name of File.
	Name      string
	File      string
	Extension string
}

// Variant is one consumable facet of a component.
type Variant struct {
	Name       string
	Attributes Attributes
	Artifacts  []Artifact
}

// ResolvedArtifact is an artifact produced by querying a resolved graph.
type ResolvedArtifact struct {
	Component ComponentID
	Variant   string
	Artifact  Artifact
}

// Name returns the discriminant used when two artifacts compete for the same key.
func (a ResolvedArtifact) Name() string {
	if a.Artifact.Name != "" {
		return a.Artifact.Name
	}
	return filepath.Base(a.Artifact.File)
}

// File returns the location of the artifact.
func (a ResolvedArtifact) File() string {
	return a.Artifact.File
}
