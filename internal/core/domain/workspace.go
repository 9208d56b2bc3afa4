package domain

import (
	"go.trai.ch/zerr"
)

// Workspace is a multi-project build sharing one group and version.
type Workspace struct {
	// Root is the absolute directory containing the workfile.
	Root    string
	Group   string
	Version string

	// Projects in declaration order.
	Projects []*Project

	// Repositories are local Maven-layout directories searched for external modules.
	Repositories []string

	// Modules lists the dependencies of external modules, keyed by full coordinates.
	Modules map[GAV][]Dependency
}

// Project returns the project with the given path.
func (w *Workspace) Project(path string) (*Project, error) {
	for _, p := range w.Projects {
		if p.Path == path {
			return p, nil
		}
	}
	return nil, zerr.With(ErrProjectNotFound, "project", path)
}

// PluginProjects returns the projects that declare a plugin block.
func (w *Workspace) PluginProjects() []*Project {
	var out []*Project
	for _, p := range w.Projects {
		if p.Plugin != nil {
			out = append(out, p)
		}
	}
	return out
}

// Project is one module of the workspace.
type Project struct {
	// Path is the Gradle-style project path, e.g. ":libs:core".
	Path string
	// Name is the last segment of the path unless declared.
	Name string

	// Group and Version are the project's own declarations and may be empty.
	Group   string
	Version string

	Description string

	// Dir is the absolute project directory.
	Dir string

	// SourceDirs are the absolute main source directories.
	SourceDirs []string

	Variants     []Variant
	Dependencies []Dependency

	Plugin *PluginSettings
}

// DeclaredCoordinates returns the project's own coordinates.
func (p *Project) DeclaredCoordinates() GAV {
	return NewGAV(p.Group, p.Name, p.Version)
}

// PluginSettings configures descriptor generation for a project.
type PluginSettings struct {
	GroupID     string
	ArtifactID  string
	Version     string
	Name        string
	Description string
	GoalPrefix  string

	// HelpMojoPackage enables help mojo generation into this Java package.
	HelpMojoPackage string

	// Dependencies names the classpath listed as runtime dependencies.
	Dependencies Classpath
}

// DependencyBucket is the declaration bucket of a dependency.
type DependencyBucket string

const (
	BucketAPI            DependencyBucket = "api"
	BucketImplementation DependencyBucket = "implementation"
	BucketCompileOnly    DependencyBucket = "compileOnly"
	BucketRuntimeOnly    DependencyBucket = "runtimeOnly"
)

// Direct reports whether a dependency declared in the bucket is on the
// declaring project's classpath.
func (b DependencyBucket) Direct(cp Classpath) bool {
	switch cp {
	case CompileClasspath:
		return b == BucketAPI || b == BucketImplementation || b == BucketCompileOnly
	case RuntimeClasspath:
		return b == BucketAPI || b == BucketImplementation || b == BucketRuntimeOnly
	default:
		return false
	}
}

// Transitive reports whether a dependency declared in the bucket leaks onto
// the classpath of projects consuming the declaring project.
func (b DependencyBucket) Transitive(cp Classpath) bool {
	switch cp {
	case CompileClasspath:
		return b == BucketAPI
	case RuntimeClasspath:
		return b != BucketCompileOnly
	default:
		return false
	}
}

// Dependency is one declared dependency.
type Dependency struct {
	Bucket DependencyBucket

	// ProjectPath is set for project dependencies.
	ProjectPath string

	// Module and Extension are set for external module dependencies.
	Module    GAV
	Extension string
}

// IsProject reports whether the dependency points at a workspace project.
func (d Dependency) IsProject() bool {
	return d.ProjectPath != ""
}
