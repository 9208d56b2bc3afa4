package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidCoordinates is returned when a GAV lacks a group or an artifact.
	ErrInvalidCoordinates = zerr.New("invalid coordinates, expected group:artifact[:version]")

	// ErrProjectNotFound is returned when a project path is not part of the workspace.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrNoPluginProject is returned when no project declares a plugin block.
	ErrNoPluginProject = zerr.New("no project declares a plugin block")

	// ErrAmbiguousPluginProject is returned when several projects declare a plugin block
	// and none was selected.
	ErrAmbiguousPluginProject = zerr.New("several projects declare a plugin block, select one")

	// ErrDuplicateProjectPath is returned when two projects share a path.
	ErrDuplicateProjectPath = zerr.New("duplicate project path")

	// ErrInvalidProjectPath is returned when a project path is malformed.
	ErrInvalidProjectPath = zerr.New("invalid project path, expected :segment[:segment...]")

	// ErrMissingWorkspaceGroup is returned when the workfile declares no group.
	ErrMissingWorkspaceGroup = zerr.New("workspace group is required")

	// ErrInvalidDependency is returned when a dependency notation cannot be parsed.
	ErrInvalidDependency = zerr.New("invalid dependency notation")

	// ErrInvalidClasspath is returned when a classpath name is unknown.
	ErrInvalidClasspath = zerr.New("invalid classpath, expected compileClasspath or runtimeClasspath")

	// ErrConfigNotFound is returned when no workfile is found.
	ErrConfigNotFound = zerr.New("could not find " + WorkFileName)

	// ErrConfigReadFailed is returned when the workfile cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the workfile cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrResolutionFailed wraps every fatal dependency resolution error.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrModuleNotFound is returned when an external module is in none of the repositories.
	ErrModuleNotFound = zerr.New("module not found in any repository")

	// ErrNoMatchingVariant is returned when a component offers no variant compatible with the request.
	ErrNoMatchingVariant = zerr.New("no variant matches the requested attributes")

	// ErrDuplicateUpstreamProject is returned when two workspace components map to the same upstream key.
	ErrDuplicateUpstreamProject = zerr.New("duplicate upstream project key")

	// ErrScanFailed is returned when plugin sources cannot be scanned.
	ErrScanFailed = zerr.New("failed to scan mojo sources")

	// ErrDescriptorWriteFailed is returned when the plugin descriptor cannot be written.
	ErrDescriptorWriteFailed = zerr.New("failed to write plugin descriptor")

	// ErrHelpMojoWriteFailed is returned when the help mojo sources cannot be written.
	ErrHelpMojoWriteFailed = zerr.New("failed to write help mojo")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrInputHashComputationFailed is returned when input hash computation fails.
	ErrInputHashComputationFailed = zerr.New("failed to compute input hash")
)
