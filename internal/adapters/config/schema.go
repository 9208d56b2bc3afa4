package config

// Workfile represents the structure of the plugindev.yaml configuration file.
type Workfile struct {
	Group   string `yaml:"group"`
	Version string `yaml:"version"`
	Root    string `yaml:"root"`

	// Repositories are Maven-layout directories, relative to the root unless absolute.
	Repositories []string `yaml:"repositories"`

	// Modules lists the runtime dependencies of external modules, keyed by
	// "group:artifact:version".
	Modules map[string][]string `yaml:"modules"`

	Projects []*ProjectDTO `yaml:"projects"`
}

// ProjectDTO represents a project definition in the configuration.
type ProjectDTO struct {
	Path        string `yaml:"path"`
	Name        string `yaml:"name"`
	Dir         string `yaml:"dir"`
	Group       string `yaml:"group"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`

	// Classes and Jar default to the conventional build outputs.
	Classes string `yaml:"classes"`
	Jar     string `yaml:"jar"`

	// Sources defaults to src/main/java when that directory exists.
	// An explicit empty list declares no sources.
	Sources *[]string `yaml:"sources"`

	Dependencies DependenciesDTO `yaml:"dependencies"`

	Plugin *PluginDTO `yaml:"plugin"`
}

// DependenciesDTO holds the dependency notations of each bucket.
type DependenciesDTO struct {
	API            []string `yaml:"api"`
	Implementation []string `yaml:"implementation"`
	CompileOnly    []string `yaml:"compileOnly"`
	RuntimeOnly    []string `yaml:"runtimeOnly"`
}

// PluginDTO represents the plugin block of a project.
type PluginDTO struct {
	GroupID         string `yaml:"groupId"`
	ArtifactID      string `yaml:"artifactId"`
	Version         string `yaml:"version"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	GoalPrefix      string `yaml:"goalPrefix"`
	HelpMojoPackage string `yaml:"helpMojoPackage"`
	Dependencies    string `yaml:"dependencies"`
}
