package domain

import "time"

// BuildInfo records the last successful descriptor generation of a project.
type BuildInfo struct {
	Project   string    `json:"project,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Output    string    `json:"output,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
