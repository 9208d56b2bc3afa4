package upstream_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugindev/internal/adapters/telemetry"
	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/engine/upstream"
)

const workspaceGroup = "com.example"

var (
	apiAttributes = domain.Attributes{
		domain.AttributeCategory: domain.CategoryLibrary,
		domain.AttributeUsage:    domain.UsageJavaAPI,
	}
	sourcesAttributes = domain.Attributes{
		domain.AttributeCategory:         domain.CategoryVerification,
		domain.AttributeVerificationType: domain.VerificationTypeMainSources,
	}
)

type component struct {
	path    string
	group   string
	classes string
	sources []string
}

func project(path, classes string, sources ...string) component {
	return component{path: path, classes: classes, sources: sources}
}

func (c component) resolved() domain.ResolvedComponent {
	name := c.path[strings.LastIndex(c.path, ":")+1:]
	variants := []domain.Variant{{
		Name:       "apiElements",
		Attributes: apiAttributes,
		Artifacts:  []domain.Artifact{{File: c.classes}},
	}}
	if len(c.sources) > 0 {
		v := domain.Variant{Name: "mainSourceElements", Attributes: sourcesAttributes}
		for _, s := range c.sources {
			v.Artifacts = append(v.Artifacts, domain.Artifact{File: s})
		}
		variants = append(variants, v)
	}
	return domain.ResolvedComponent{
		ID:       domain.ProjectComponent(c.path, name, domain.NewGAV(c.group, name, "")),
		Variants: variants,
	}
}

func external(gav string, file string) domain.ResolvedComponent {
	parsed, err := domain.ParseGAV(gav)
	if err != nil {
		panic(err)
	}
	return domain.ResolvedComponent{
		ID: domain.ModuleComponent(parsed),
		Variants: []domain.Variant{{
			Name:      "runtime",
			Artifacts: []domain.Artifact{{File: file, Extension: "jar"}},
		}},
	}
}

func graphOf(components ...domain.ResolvedComponent) *domain.ResolvedGraph {
	return domain.NewResolvedGraph(
		domain.ProjectComponent(":plugin", "plugin", domain.GAV{}),
		domain.CompileClasspath,
		components,
	)
}

func key(name string) domain.GAV {
	return domain.NewGAV(workspaceGroup, name, "")
}

func TestPartitionInWorkspace_KeysByWorkspaceGroup(t *testing.T) {
	own := project(":core", "/build/core/classes")
	own.group = "org.other"

	g := graphOf(
		own.resolved(),
		project(":libs:util", "/build/util/classes").resolved(),
		external("org.apache.commons:commons-lang3:3.12", "/repo/commons-lang3-3.12.jar"),
	)

	classes, err := upstream.PartitionInWorkspace(g, workspaceGroup)
	require.NoError(t, err)
	require.Equal(t, 2, classes.Len())

	got, ok := classes.Get(key("core"))
	require.True(t, ok, "declared group must not leak into the key")
	assert.Equal(t, "/build/core/classes", got)

	got, ok = classes.Get(key("util"))
	require.True(t, ok)
	assert.Equal(t, "/build/util/classes", got)

	_, ok = classes.Get(domain.NewGAV("org.apache.commons", "commons-lang3", ""))
	assert.False(t, ok, "external modules are not upstream projects")
}

func TestPartitionInWorkspace_FirstArtifactWins(t *testing.T) {
	c := project(":core", "/build/core/classes").resolved()
	c.Variants[0].Artifacts = append(c.Variants[0].Artifacts, domain.Artifact{File: "/build/core/resources"})

	classes, err := upstream.PartitionInWorkspace(graphOf(c), workspaceGroup)
	require.NoError(t, err)
	require.Equal(t, 1, classes.Len())

	got, _ := classes.Get(key("core"))
	assert.Equal(t, "/build/core/classes", got)
}

func TestPartitionInWorkspace_DuplicateProjectNames(t *testing.T) {
	g := graphOf(
		project(":a:core", "/a/core/classes").resolved(),
		project(":b:core", "/b/core/classes").resolved(),
	)

	_, err := upstream.PartitionInWorkspace(g, workspaceGroup)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDuplicateUpstreamProject.Error())
}

func TestResolveSourcesVariants_SubsetOfClasses(t *testing.T) {
	g := graphOf(
		project(":core", "/build/core/classes", "/core/src/main/java").resolved(),
		project(":api", "/build/api/classes").resolved(),
		external("org.apache.commons:commons-lang3:3.12", "/repo/commons-lang3-3.12.jar"),
	)

	classes, err := upstream.PartitionInWorkspace(g, workspaceGroup)
	require.NoError(t, err)
	sources, err := upstream.ResolveSourcesVariants(g, workspaceGroup)
	require.NoError(t, err)

	assert.Equal(t, 1, sources.Len())
	for k := range sources.Keys() {
		_, ok := classes.Get(k)
		assert.True(t, ok, "sources key %s missing from classes", k)
	}

	_, ok := sources.Get(key("api"))
	assert.False(t, ok, "projects without sources are absent, not empty")
}

func TestResolveSourcesVariants_PrefersJava(t *testing.T) {
	orders := map[string][]string{
		"java first": {"/core/src/main/java", "/core/src/main/kotlin"},
		"java last":  {"/core/src/main/kotlin", "/core/src/main/java"},
		"java mid":   {"/core/src/main/groovy", "/core/src/main/java", "/core/src/main/kotlin"},
	}

	for name, dirs := range orders {
		t.Run(name, func(t *testing.T) {
			g := graphOf(project(":core", "/build/core/classes", dirs...).resolved())

			sources, err := upstream.ResolveSourcesVariants(g, workspaceGroup)
			require.NoError(t, err)

			got, ok := sources.Get(key("core"))
			require.True(t, ok)
			assert.Equal(t, "/core/src/main/java", got)
		})
	}
}

func TestResolveSourcesVariants_FirstSeenWithoutJava(t *testing.T) {
	g := graphOf(project(":core", "/build/core/classes", "/core/src/main/kotlin", "/core/src/main/groovy").resolved())

	sources, err := upstream.ResolveSourcesVariants(g, workspaceGroup)
	require.NoError(t, err)

	got, _ := sources.Get(key("core"))
	assert.Equal(t, "/core/src/main/kotlin", got)
}

func TestResolvers_Idempotent(t *testing.T) {
	g := graphOf(
		project(":core", "/build/core/classes", "/core/src/main/java").resolved(),
		project(":api", "/build/api/classes").resolved(),
	)

	collect := func(m *domain.LocationMap) map[domain.GAV]string {
		out := make(map[domain.GAV]string)
		for k, v := range m.All() {
			out[k] = v
		}
		return out
	}

	c1, err := upstream.PartitionInWorkspace(g, workspaceGroup)
	require.NoError(t, err)
	c2, err := upstream.PartitionInWorkspace(g, workspaceGroup)
	require.NoError(t, err)
	assert.Equal(t, collect(c1), collect(c2))

	s1, err := upstream.ResolveSourcesVariants(g, workspaceGroup)
	require.NoError(t, err)
	s2, err := upstream.ResolveSourcesVariants(g, workspaceGroup)
	require.NoError(t, err)
	assert.Equal(t, collect(s1), collect(s2))
}

func TestMerge(t *testing.T) {
	classes := domain.NewLocationMap()
	classes.Put(key("core"), "/build/core/classes")
	classes.Put(key("api"), "/build/api/classes")

	sources := domain.NewLocationMap()
	sources.Put(key("core"), "/core/src/main/java")
	sources.Put(key("orphan"), "/orphan/src/main/java")

	merged := upstream.Merge(classes, sources)

	require.Len(t, merged, classes.Len())
	assert.Equal(t, []domain.UpstreamProjectDescriptor{
		{Group: workspaceGroup, Artifact: "core", ClassesDir: "/build/core/classes", SourcesDir: "/core/src/main/java"},
		{Group: workspaceGroup, Artifact: "api", ClassesDir: "/build/api/classes"},
	}, merged)
	assert.False(t, merged[1].HasSources())
}

func TestMerge_Empty(t *testing.T) {
	merged := upstream.Merge(domain.NewLocationMap(), domain.NewLocationMap())
	assert.Empty(t, merged)
}

func TestResolver_Resolve(t *testing.T) {
	r := upstream.NewResolver(telemetry.NewNoOp())

	t.Run("classes and sources", func(t *testing.T) {
		g := graphOf(project(":core", "/build/core/classes", "/build/core/src").resolved())

		got, err := r.Resolve(context.Background(), g, workspaceGroup)
		require.NoError(t, err)
		assert.Equal(t, []domain.UpstreamProjectDescriptor{{
			Group:      "com.example",
			Artifact:   "core",
			ClassesDir: "/build/core/classes",
			SourcesDir: "/build/core/src",
		}}, got)
	})

	t.Run("sources variant unavailable", func(t *testing.T) {
		g := graphOf(project(":core", "/build/core/classes").resolved())

		got, err := r.Resolve(context.Background(), g, workspaceGroup)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "com.example", got[0].Group)
		assert.Equal(t, "core", got[0].Artifact)
		assert.Equal(t, "/build/core/classes", got[0].ClassesDir)
		assert.Empty(t, got[0].SourcesDir)
	})

	t.Run("partition failure aborts", func(t *testing.T) {
		g := graphOf(
			project(":a:core", "/a/core/classes").resolved(),
			project(":b:core", "/b/core/classes").resolved(),
		)

		got, err := r.Resolve(context.Background(), g, workspaceGroup)
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestRuntimeDependencies(t *testing.T) {
	g := domain.NewResolvedGraph(
		domain.ProjectComponent(":plugin", "plugin", domain.GAV{}),
		domain.RuntimeClasspath,
		[]domain.ResolvedComponent{
			project(":core", "/build/libs/core.jar").resolved(),
			external("org.apache.commons:commons-lang3:3.12", "/repo/commons-lang3-3.12.jar"),
		},
	)

	deps := upstream.RuntimeDependencies(g)
	assert.Equal(t, []domain.DependencyDescriptor{{
		Group:     "org.apache.commons",
		Artifact:  "commons-lang3",
		Version:   "3.12",
		Extension: "jar",
	}}, deps)

	classes, err := upstream.PartitionInWorkspace(g, workspaceGroup)
	require.NoError(t, err)
	_, ok := classes.Get(domain.NewGAV("org.apache.commons", "commons-lang3", ""))
	assert.False(t, ok)
}

func TestRuntimeDependencies_DefaultsExtension(t *testing.T) {
	c := external("com.google.guava:guava:33.0.0-jre", "/repo/guava.jar")
	c.Variants[0].Artifacts[0].Extension = ""

	deps := upstream.RuntimeDependencies(graphOf(c))
	require.Len(t, deps, 1)
	assert.Equal(t, "jar", deps[0].Extension)
}
