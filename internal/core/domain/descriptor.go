package domain

// UpstreamProjectDescriptor describes one in-workspace project whose compiled
// classes (and, when available, sources) contribute to the plugin.
type UpstreamProjectDescriptor struct {
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`

	// ClassesDir is the compiled output of the project. Always set.
	ClassesDir string `json:"classesDir" yaml:"classesDir"`

	// SourcesDir is the main sources output. Empty when the project exposes no sources variant.
	SourcesDir string `json:"sourcesDir,omitempty" yaml:"sourcesDir,omitempty"`
}

// HasSources reports whether a sources location was resolved.
func (d UpstreamProjectDescriptor) HasSources() bool {
	return d.SourcesDir != ""
}

// DependencyDescriptor describes one externally published runtime dependency of the plugin.
type DependencyDescriptor struct {
	Group     string `json:"group" yaml:"group"`
	Artifact  string `json:"artifact" yaml:"artifact"`
	Version   string `json:"version" yaml:"version"`
	Extension string `json:"extension" yaml:"extension"`
}

// Plugin holds the identity of the generated plugin.
type Plugin struct {
	GAV         GAV
	Name        string
	Description string
	// GoalPrefix is empty when neither declared nor derivable.
	GoalPrefix string
}

// Mojo describes one goal discovered in plugin sources.
type Mojo struct {
	Goal                         string
	Implementation               string
	Description                  string
	DefaultPhase                 string
	RequiresDependencyResolution string
	RequiresProject              bool
	ThreadSafe                   bool
	Aggregator                   bool
	Parameters                   []MojoParameter
}

// MojoParameter describes one configurable field of a Mojo.
type MojoParameter struct {
	Name         string
	Alias        string
	Type         string
	Property     string
	DefaultValue string
	Description  string
	Required     bool
	ReadOnly     bool
}

// PluginDescriptor is the complete document written as plugin.xml.
type PluginDescriptor struct {
	Plugin       Plugin
	Mojos        []Mojo
	Dependencies []DependencyDescriptor
	// HelpPackage is set when a help mojo is generated into that package.
	HelpPackage string
}

// DescriptorInputs groups everything that determines the generated descriptor.
// It is hashed to decide whether a previous generation is still up to date.
type DescriptorInputs struct {
	Plugin       Plugin
	HelpPackage  string
	Dependencies []DependencyDescriptor
	Upstream     []UpstreamProjectDescriptor
	SourceDirs   []string
}
