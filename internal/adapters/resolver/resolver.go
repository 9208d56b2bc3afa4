// Package resolver resolves project classpaths of a workspace into dependency graphs.
package resolver

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.DependencyResolver over the workspace model and
// local Maven-layout repositories.
type Resolver struct {
	logger ports.Logger
}

// New creates a new Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve walks the dependencies of the project breadth-first in declaration
// order and selects one variant per component. Conflicting versions of an
// external module are settled by re-walking with the highest version until
// the selection is stable.
func (r *Resolver) Resolve(
	ctx context.Context,
	ws *domain.Workspace,
	projectPath string,
	classpath domain.Classpath,
) (*domain.ResolvedGraph, error) {
	if classpath != domain.CompileClasspath && classpath != domain.RuntimeClasspath {
		return nil, failed(zerr.With(domain.ErrInvalidClasspath, "classpath", string(classpath)))
	}

	root, err := ws.Project(projectPath)
	if err != nil {
		return nil, failed(err)
	}

	selected := make(map[domain.GAV]string)
	seen := make(map[string]bool)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w := &walk{ws: ws, classpath: classpath, selected: selected, requested: make(map[domain.GAV]string)}
		if err := w.run(root); err != nil {
			return nil, failed(zerr.With(err, "classpath", string(classpath)))
		}

		// A selection seen before cannot change any further.
		fingerprint := selectionKey(w.requested)
		if !maps.Equal(w.requested, selected) && !seen[fingerprint] {
			seen[fingerprint] = true
			selected = w.requested
			continue
		}

		if r.logger != nil {
			for _, c := range w.conflicts {
				r.logger.Info(c)
			}
		}

		components, err := w.components(ws)
		if err != nil {
			return nil, failed(zerr.With(err, "classpath", string(classpath)))
		}

		rootID := domain.ProjectComponent(root.Path, root.Name, root.DeclaredCoordinates())
		return domain.NewResolvedGraph(rootID, classpath, components), nil
	}
}

func selectionKey(selection map[domain.GAV]string) string {
	keys := make([]string, 0, len(selection))
	for k, v := range selection {
		keys = append(keys, k.String()+"="+v)
	}
	slices.Sort(keys)
	return strings.Join(keys, ",")
}

func failed(err error) error {
	return zerr.Wrap(err, domain.ErrResolutionFailed.Error())
}

type request struct {
	dep        domain.Dependency
	requiredBy string
}

// node is one resolved component in resolution order.
type node struct {
	project   *domain.Project
	module    domain.GAV
	extension string
}

// walk is one breadth-first traversal under a fixed version selection.
// Modules are expanded at their selected version, or at the first requested
// one when unselected. Only requests made during the walk count towards the
// next selection.
type walk struct {
	ws        *domain.Workspace
	classpath domain.Classpath
	selected  map[domain.GAV]string

	nodes     []node
	requested map[domain.GAV]string
	conflicts []string
}

func (w *walk) run(root *domain.Project) error {
	queue := w.enqueue(nil, root.Path, root.Dependencies, domain.DependencyBucket.Direct)

	projects := map[string]bool{root.Path: true}
	modules := make(map[domain.GAV]bool)

	for len(queue) > 0 {
		req := queue[0]
		queue = queue[1:]

		if req.dep.IsProject() {
			if projects[req.dep.ProjectPath] {
				continue
			}
			p, err := w.ws.Project(req.dep.ProjectPath)
			if err != nil {
				return zerr.With(err, "required_by", req.requiredBy)
			}
			projects[p.Path] = true
			w.nodes = append(w.nodes, node{project: p})
			queue = w.enqueue(queue, p.Path, p.Dependencies, domain.DependencyBucket.Transitive)
			continue
		}

		key := req.dep.Module.Key()
		w.request(key, req.dep.Module.Version.String(), req.requiredBy)
		if modules[key] {
			continue
		}
		modules[key] = true

		version, ok := w.selected[key]
		if !ok {
			version = req.dep.Module.Version.String()
		}
		gav := key.WithVersion(version)
		w.nodes = append(w.nodes, node{module: gav, extension: req.dep.Extension})
		queue = w.enqueue(queue, gav.String(), w.ws.Modules[gav], domain.DependencyBucket.Transitive)
	}

	return nil
}

// request records a version request of a module, keeping the highest one.
func (w *walk) request(key domain.GAV, version, requiredBy string) {
	current, ok := w.requested[key]
	if ok && !newer(version, current) {
		return
	}
	if ok {
		w.conflicts = append(w.conflicts, fmt.Sprintf("version conflict on %s: %s requested by %s wins over %s",
			key, version, requiredBy, current))
	}
	w.requested[key] = version
}

func (w *walk) enqueue(
	queue []request,
	from string,
	deps []domain.Dependency,
	keep func(domain.DependencyBucket, domain.Classpath) bool,
) []request {
	for _, d := range deps {
		if keep(d.Bucket, w.classpath) {
			queue = append(queue, request{dep: d, requiredBy: from})
		}
	}
	return queue
}

func (w *walk) components(ws *domain.Workspace) ([]domain.ResolvedComponent, error) {
	requested := w.classpath.RequestedAttributes()
	out := make([]domain.ResolvedComponent, 0, len(w.nodes))

	for _, n := range w.nodes {
		var c domain.ResolvedComponent
		if n.project != nil {
			p := n.project
			c = domain.ResolvedComponent{
				ID:       domain.ProjectComponent(p.Path, p.Name, p.DeclaredCoordinates()),
				Variants: p.Variants,
			}
		} else {
			file, err := locate(ws.Repositories, n.module, n.extension)
			if err != nil {
				return nil, err
			}
			c = domain.ResolvedComponent{
				ID:       domain.ModuleComponent(n.module),
				Variants: moduleVariants(file, n.extension),
			}
		}

		idx, ok := domain.SelectVariant(c.Variants, requested)
		if !ok {
			return nil, zerr.With(domain.ErrNoMatchingVariant, "component", c.ID.String())
		}
		c.Selected = idx
		out = append(out, c)
	}

	return out, nil
}

// moduleVariants describes a published jar the way a POM-derived module exposes it.
func moduleVariants(file, extension string) []domain.Variant {
	artifacts := []domain.Artifact{{File: file, Extension: extension}}
	return []domain.Variant{
		{
			Name: "apiElements",
			Attributes: domain.Attributes{
				domain.AttributeCategory: domain.CategoryLibrary,
				domain.AttributeUsage:    domain.UsageJavaAPI,
			},
			Artifacts: artifacts,
		},
		{
			Name: "runtimeElements",
			Attributes: domain.Attributes{
				domain.AttributeCategory: domain.CategoryLibrary,
				domain.AttributeUsage:    domain.UsageJavaRuntime,
			},
			Artifacts: artifacts,
		},
	}
}
