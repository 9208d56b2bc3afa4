package upstream

import (
	"go.trai.ch/plugindev/internal/core/domain"
)

// CanonicalSourcesName is the name of the primary source directory.
// It wins whenever several sources artifacts map to one key.
const CanonicalSourcesName = "java"

// SourcesView is the artifact view selecting the main sources of workspace
// projects, allowing a different variant than the one on the classpath.
func SourcesView() domain.ArtifactView {
	return domain.ArtifactView{
		ComponentFilter: domain.ProjectsOnly,
		Attributes: domain.Attributes{
			domain.AttributeCategory:         domain.CategoryVerification,
			domain.AttributeVerificationType: domain.VerificationTypeMainSources,
		},
		Reselect: true,
	}
}

// ResolveSourcesVariants maps every in-workspace component of graph that has
// a main sources variant to its sources location. Components without one are
// absent from the result.
func ResolveSourcesVariants(graph *domain.ResolvedGraph, workspaceGroup string) (*domain.LocationMap, error) {
	candidates := make(map[domain.GAV]domain.ResolvedArtifact)
	sources := domain.NewLocationMap()

	for _, a := range graph.Artifacts(SourcesView()) {
		key := Key(workspaceGroup, a.Component)

		if current, seen := candidates[key]; seen {
			a = preferCanonical(current, a)
		}

		candidates[key] = a
		sources.Put(key, a.File())
	}

	return sources, nil
}

// preferCanonical picks between two candidates for the same key: the one
// named CanonicalSourcesName if any, otherwise the one seen first.
func preferCanonical(left, right domain.ResolvedArtifact) domain.ResolvedArtifact {
	if left.Name() != CanonicalSourcesName && right.Name() == CanonicalSourcesName {
		return right
	}
	return left
}
