package upstream

import (
	"go.trai.ch/plugindev/internal/core/domain"
)

// RuntimeDependencies lists the externally published artifacts of a runtime
// classpath. Workspace projects are excluded.
func RuntimeDependencies(graph *domain.ResolvedGraph) []domain.DependencyDescriptor {
	artifacts := graph.Artifacts(domain.ArtifactView{ComponentFilter: domain.ModulesOnly})

	out := make([]domain.DependencyDescriptor, 0, len(artifacts))
	for _, a := range artifacts {
		ext := a.Artifact.Extension
		if ext == "" {
			ext = domain.DefaultExtension
		}
		gav := a.Component.Module
		out = append(out, domain.DependencyDescriptor{
			Group:     gav.Group.String(),
			Artifact:  gav.Artifact.String(),
			Version:   gav.Version.String(),
			Extension: ext,
		})
	}
	return out
}
