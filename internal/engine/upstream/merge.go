package upstream

import (
	"go.trai.ch/plugindev/internal/core/domain"
)

// Merge joins classes and sources by key. The classes map decides which
// upstream projects exist; keys present only in sources are dropped.
func Merge(classes, sources *domain.LocationMap) []domain.UpstreamProjectDescriptor {
	out := make([]domain.UpstreamProjectDescriptor, 0, classes.Len())
	for key, classesDir := range classes.All() {
		sourcesDir, _ := sources.Get(key)
		out = append(out, domain.UpstreamProjectDescriptor{
			Group:      key.Group.String(),
			Artifact:   key.Artifact.String(),
			Version:    key.Version.String(),
			ClassesDir: classesDir,
			SourcesDir: sourcesDir,
		})
	}
	return out
}
