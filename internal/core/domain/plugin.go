package domain

import (
	"cmp"
	"strings"
)

// NewPlugin derives the identity of the plugin built by a project. Values
// declared in the plugin block win over the project's, which win over the
// workspace's.
func NewPlugin(ws *Workspace, p *Project) Plugin {
	var s PluginSettings
	if p.Plugin != nil {
		s = *p.Plugin
	}

	artifact := cmp.Or(s.ArtifactID, p.Name)
	return Plugin{
		GAV: NewGAV(
			cmp.Or(s.GroupID, p.Group, ws.Group),
			artifact,
			cmp.Or(s.Version, p.Version, ws.Version),
		),
		Name:        cmp.Or(s.Name, p.Name),
		Description: cmp.Or(s.Description, p.Description),
		GoalPrefix:  cmp.Or(s.GoalPrefix, DefaultGoalPrefix(artifact)),
	}
}

// DefaultGoalPrefix derives a goal prefix from an artifact id the way Maven does:
// "maven-X-plugin" and "X-maven-plugin" give "X", "X-plugin" gives "X".
func DefaultGoalPrefix(artifactID string) string {
	switch {
	case strings.HasPrefix(artifactID, "maven-") && strings.HasSuffix(artifactID, "-plugin"):
		return trimOr(strings.TrimSuffix(strings.TrimPrefix(artifactID, "maven-"), "-plugin"), artifactID)
	case strings.HasSuffix(artifactID, "-maven-plugin"):
		return trimOr(strings.TrimSuffix(artifactID, "-maven-plugin"), artifactID)
	case strings.HasSuffix(artifactID, "-plugin"):
		return trimOr(strings.TrimSuffix(artifactID, "-plugin"), artifactID)
	default:
		return artifactID
	}
}

func trimOr(trimmed, original string) string {
	if trimmed == "" {
		return original
	}
	return trimmed
}
