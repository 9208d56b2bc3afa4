package domain

import "path/filepath"

const (
	// WorkFileName is the name of the workspace configuration file.
	WorkFileName = "plugindev.yaml"

	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".plugindev"

	// StoreFileName is the name of the build info store inside StateDirName.
	StoreFileName = "state.json"

	// PluginOutputDir is the project-relative root of everything generated.
	PluginOutputDir = "build/mavenPlugin"

	// DescriptorDirName holds META-INF/maven/plugin.xml.
	DescriptorDirName = "descriptor"

	// HelpMojoDirName holds the generated help mojo sources.
	HelpMojoDirName = "helpMojo"

	// HelpPropertiesFileName is the properties file written next to the help mojo.
	HelpPropertiesFileName = "maven-plugin-help.properties"

	// DefaultClassesDir is the project-relative compiled classes directory.
	DefaultClassesDir = "build/classes/java/main"

	// DefaultSourcesDir is the project-relative main Java sources directory.
	DefaultSourcesDir = "src/main/java"

	// DefaultExtension is the extension of published artifacts.
	DefaultExtension = "jar"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the build info store path for a workspace root.
func DefaultStorePath(root string) string {
	return filepath.Join(root, StateDirName, StoreFileName)
}

// DescriptorDir returns the descriptor output directory of a project.
func DescriptorDir(projectDir string) string {
	return filepath.Join(projectDir, PluginOutputDir, DescriptorDirName)
}

// HelpMojoDir returns the help mojo output directory of a project.
func HelpMojoDir(projectDir string) string {
	return filepath.Join(projectDir, PluginOutputDir, HelpMojoDirName)
}

// HelpPropertiesFile returns the help properties file of a project.
func HelpPropertiesFile(projectDir string) string {
	return filepath.Join(projectDir, PluginOutputDir, HelpPropertiesFileName)
}

// PluginXMLPath returns the location of plugin.xml inside a descriptor directory.
func PluginXMLPath(descriptorDir string) string {
	return filepath.Join(descriptorDir, "META-INF", "maven", "plugin.xml")
}
