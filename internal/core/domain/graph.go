package domain

import (
	"iter"
	"slices"
)

// Classpath names a resolvable dependency set of a project.
type Classpath string

const (
	// CompileClasspath is what a project compiles against.
	CompileClasspath Classpath = "compileClasspath"
	// RuntimeClasspath is what a project needs at runtime.
	RuntimeClasspath Classpath = "runtimeClasspath"
)

// RequestedAttributes returns the attributes a classpath asks of its dependencies.
func (c Classpath) RequestedAttributes() Attributes {
	switch c {
	case RuntimeClasspath:
		return Attributes{AttributeCategory: CategoryLibrary, AttributeUsage: UsageJavaRuntime}
	default:
		return Attributes{AttributeCategory: CategoryLibrary, AttributeUsage: UsageJavaAPI}
	}
}

// ResolvedComponent is one node of a resolved graph together with every
// variant it offers, so that views can reselect among them.
type ResolvedComponent struct {
	ID       ComponentID
	Selected int
	Variants []Variant
}

// SelectedVariant returns the variant chosen during graph resolution.
func (c ResolvedComponent) SelectedVariant() Variant {
	return c.Variants[c.Selected]
}

// ResolvedGraph is an immutable snapshot of a resolved classpath.
// Queries against it are pure and safe for concurrent use.
type ResolvedGraph struct {
	root       ComponentID
	classpath  Classpath
	components []ResolvedComponent
}

// NewResolvedGraph creates a snapshot from components in resolution order.
func NewResolvedGraph(root ComponentID, classpath Classpath, components []ResolvedComponent) *ResolvedGraph {
	return &ResolvedGraph{
		root:       root,
		classpath:  classpath,
		components: slices.Clone(components),
	}
}

// Root returns the component whose classpath was resolved.
func (g *ResolvedGraph) Root() ComponentID {
	return g.root
}

// Classpath returns the name of the resolved classpath.
func (g *ResolvedGraph) Classpath() Classpath {
	return g.classpath
}

// Len returns the number of resolved components, excluding the root.
func (g *ResolvedGraph) Len() int {
	return len(g.components)
}

// Components yields the resolved components in resolution order.
func (g *ResolvedGraph) Components() iter.Seq[ResolvedComponent] {
	return func(yield func(ResolvedComponent) bool) {
		for _, c := range g.components {
			if !yield(c) {
				return
			}
		}
	}
}

// ArtifactView is a query for artifacts of a resolved graph.
type ArtifactView struct {
	// ComponentFilter keeps only matching components. Nil keeps all.
	ComponentFilter func(ComponentID) bool

	// Attributes requests an alternate selection. Empty means the selected variant.
	Attributes Attributes

	// Reselect allows picking another variant of a component when the
	// selected one does not satisfy Attributes.
	Reselect bool
}

// ProjectsOnly is a component filter keeping workspace projects.
func ProjectsOnly(id ComponentID) bool {
	return id.IsProject()
}

// ModulesOnly is a component filter keeping external modules.
func ModulesOnly(id ComponentID) bool {
	return !id.IsProject()
}

// Artifacts returns the artifacts matched by the view, in resolution order.
// Components with no variant satisfying the view contribute nothing.
func (g *ResolvedGraph) Artifacts(view ArtifactView) []ResolvedArtifact {
	var out []ResolvedArtifact
	for _, c := range g.components {
		if view.ComponentFilter != nil && !view.ComponentFilter(c.ID) {
			continue
		}

		variant, ok := view.variantOf(c)
		if !ok {
			continue
		}

		for _, a := range variant.Artifacts {
			out = append(out, ResolvedArtifact{
				Component: c.ID,
				Variant:   variant.Name,
				Artifact:  a,
			})
		}
	}
	return out
}

func (v ArtifactView) variantOf(c ResolvedComponent) (Variant, bool) {
	selected := c.SelectedVariant()
	if len(v.Attributes) == 0 {
		return selected, true
	}
	if _, ok := selected.Attributes.Matches(v.Attributes); ok {
		return selected, true
	}
	if !v.Reselect {
		return Variant{}, false
	}
	idx, ok := SelectVariant(c.Variants, v.Attributes)
	if !ok {
		return Variant{}, false
	}
	return c.Variants[idx], true
}

// SelectVariant picks the variant compatible with the requested attributes
// that matches the most of them. Declaration order breaks ties.
func SelectVariant(variants []Variant, requested Attributes) (int, bool) {
	best, bestScore := -1, -1
	for i, v := range variants {
		score, ok := v.Attributes.Matches(requested)
		if !ok {
			continue
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}
