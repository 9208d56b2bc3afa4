package upstream

import (
	"context"
	"fmt"

	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Resolver computes upstream project descriptors from a resolved compile classpath.
type Resolver struct {
	telemetry ports.Telemetry
}

// NewResolver creates a new Resolver reporting to the given telemetry.
func NewResolver(telemetry ports.Telemetry) *Resolver {
	return &Resolver{telemetry: telemetry}
}

// Resolve runs the classpath partition and the sources resolution
// concurrently over the same graph snapshot and merges their results.
func (r *Resolver) Resolve(
	ctx context.Context,
	graph *domain.ResolvedGraph,
	workspaceGroup string,
) ([]domain.UpstreamProjectDescriptor, error) {
	var classes, sources *domain.LocationMap

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, vertex := r.telemetry.Record(ctx, "upstream: partition classes")
		m, err := PartitionInWorkspace(graph, workspaceGroup)
		if err == nil {
			vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d upstream projects", m.Len()))
		}
		vertex.Complete(err)
		classes = m
		return err
	})

	g.Go(func() error {
		_, vertex := r.telemetry.Record(ctx, "upstream: resolve sources")
		m, err := ResolveSourcesVariants(graph, workspaceGroup)
		if err == nil {
			vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d sources variants", m.Len()))
		}
		vertex.Complete(err)
		sources = m
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(classes, sources), nil
}
