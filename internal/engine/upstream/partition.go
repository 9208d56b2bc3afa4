// Package upstream resolves the in-workspace projects contributing classes
// and sources to a plugin.
package upstream

import (
	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/zerr"
)

// Key derives the join key of an in-workspace component. Projects do not
// reliably report their own group, so the workspace group is used for all.
func Key(workspaceGroup string, id domain.ComponentID) domain.GAV {
	return domain.NewGAV(workspaceGroup, id.ProjectName.String(), "")
}

// PartitionInWorkspace maps every in-workspace component of graph to its
// compiled classes location. A component exposing several artifacts keeps
// its first one.
func PartitionInWorkspace(graph *domain.ResolvedGraph, workspaceGroup string) (*domain.LocationMap, error) {
	classes := domain.NewLocationMap()
	owners := make(map[domain.GAV]domain.ComponentID)

	for _, a := range graph.Artifacts(domain.ArtifactView{ComponentFilter: domain.ProjectsOnly}) {
		key := Key(workspaceGroup, a.Component)

		if owner, seen := owners[key]; seen {
			if owner != a.Component {
				err := zerr.With(domain.ErrDuplicateUpstreamProject, "key", key.String())
				err = zerr.With(err, "first", owner.ProjectPath.String())
				return nil, zerr.With(err, "second", a.Component.ProjectPath.String())
			}
			continue
		}

		owners[key] = a.Component
		classes.Put(key, a.File())
	}

	return classes, nil
}
