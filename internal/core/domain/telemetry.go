package domain

// VertexStatus is the outcome of one generation step.
type VertexStatus string

const (
	// VertexStatusCompleted indicates the step ran and produced its outputs.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the step failed.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the outputs were up to date and nothing was written.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusSkipped indicates the step does not apply (e.g. no help mojo package).
	VertexStatusSkipped VertexStatus = "skipped"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// DidWork reports whether the step wrote outputs.
func (s VertexStatus) DidWork() bool {
	return s == VertexStatusCompleted
}
