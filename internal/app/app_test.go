package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugindev/internal/adapters/telemetry"
	"go.trai.ch/plugindev/internal/app"
	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports/mocks"
	"go.trai.ch/plugindev/internal/engine/upstream"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type testEnv struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockDependencyResolver
	scanner  *mocks.MockMojoScanner
	writer   *mocks.MockDescriptorWriter
	hasher   *mocks.MockHasher
	store    *mocks.MockBuildInfoStore
	verifier *mocks.MockOutputVerifier
	logger   *mocks.MockLogger
	app      *app.App
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockDependencyResolver(ctrl),
		scanner:  mocks.NewMockMojoScanner(ctrl),
		writer:   mocks.NewMockDescriptorWriter(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		verifier: mocks.NewMockOutputVerifier(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	noop := telemetry.NewNoOp()
	env.app = app.New(
		env.loader,
		env.resolver,
		upstream.NewResolver(noop),
		env.scanner,
		env.writer,
		env.hasher,
		env.store,
		env.verifier,
		env.logger,
		noop,
	).WithClock(func() time.Time { return fixedNow })

	env.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return env
}

// testWorkspace has a plugin project ":plugin" depending on ":core".
func testWorkspace(root, helpPackage string) *domain.Workspace {
	return &domain.Workspace{
		Root:    root,
		Group:   "com.example",
		Version: "1.0.0",
		Projects: []*domain.Project{
			{
				Path:       ":core",
				Name:       "core",
				Dir:        filepath.Join(root, "core"),
				SourceDirs: []string{filepath.Join(root, "core", "src", "main", "java")},
			},
			{
				Path:        ":plugin",
				Name:        "greet-maven-plugin",
				Description: "Greets builds",
				Dir:         filepath.Join(root, "plugin"),
				SourceDirs:  []string{filepath.Join(root, "plugin", "src", "main", "java")},
				Dependencies: []domain.Dependency{
					{Bucket: domain.BucketImplementation, ProjectPath: ":core"},
				},
				Plugin: &domain.PluginSettings{
					HelpMojoPackage: helpPackage,
					Dependencies:    domain.RuntimeClasspath,
				},
			},
		},
	}
}

func projectComponent(path, name, classes, sources string) domain.ResolvedComponent {
	variants := []domain.Variant{{
		Name: "apiElements",
		Attributes: domain.Attributes{
			domain.AttributeCategory: domain.CategoryLibrary,
			domain.AttributeUsage:    domain.UsageJavaAPI,
		},
		Artifacts: []domain.Artifact{{File: classes}},
	}}
	if sources != "" {
		variants = append(variants, domain.Variant{
			Name: "mainSourceElements",
			Attributes: domain.Attributes{
				domain.AttributeCategory:         domain.CategoryVerification,
				domain.AttributeVerificationType: domain.VerificationTypeMainSources,
			},
			Artifacts: []domain.Artifact{{File: sources}},
		})
	}
	return domain.ResolvedComponent{
		ID:       domain.ProjectComponent(path, name, domain.NewGAV("", name, "")),
		Variants: variants,
	}
}

func moduleComponent(gav, file string) domain.ResolvedComponent {
	parsed, err := domain.ParseGAV(gav)
	if err != nil {
		panic(err)
	}
	return domain.ResolvedComponent{
		ID: domain.ModuleComponent(parsed),
		Variants: []domain.Variant{{
			Name:      "runtimeElements",
			Artifacts: []domain.Artifact{{File: file, Extension: "jar"}},
		}},
	}
}

// expectResolve sets up compile and runtime classpaths of ":plugin".
func (env *testEnv) expectResolve(ws *domain.Workspace, coreSources string) {
	root := domain.ProjectComponent(":plugin", "greet-maven-plugin", domain.GAV{})
	core := projectComponent(":core", "core", filepath.Join(ws.Root, "core", "build", "classes"), coreSources)
	lang := moduleComponent("org.apache.commons:commons-lang3:3.12", "commons-lang3-3.12.jar")

	env.loader.EXPECT().Load(ws.Root).Return(ws, nil)
	env.resolver.EXPECT().Resolve(gomock.Any(), ws, ":plugin", domain.CompileClasspath).
		Return(domain.NewResolvedGraph(root, domain.CompileClasspath, []domain.ResolvedComponent{core, lang}), nil)
	env.resolver.EXPECT().Resolve(gomock.Any(), ws, ":plugin", domain.RuntimeClasspath).
		Return(domain.NewResolvedGraph(root, domain.RuntimeClasspath, []domain.ResolvedComponent{core, lang}), nil)
}

func TestApp_Generate(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	ws := testWorkspace(root, "com.example.greet.help")
	coreSources := filepath.Join(root, "core", "src", "main", "java")
	pluginDir := filepath.Join(root, "plugin")
	descriptorDir := domain.DescriptorDir(pluginDir)
	output := domain.PluginXMLPath(descriptorDir)

	env.expectResolve(ws, coreSources)

	wantDirs := []string{
		filepath.Join(pluginDir, "src", "main", "java"),
		domain.HelpMojoDir(pluginDir),
		coreSources,
	}
	mojos := []domain.Mojo{{Goal: "greet", Implementation: "com.example.greet.GreetMojo"}}

	env.writer.EXPECT().WriteHelpMojo(
		domain.HelpMojoDir(pluginDir),
		domain.HelpPropertiesFile(pluginDir),
		gomock.Any(),
		"com.example.greet.help",
	).Return(nil)
	env.hasher.EXPECT().ComputeInputHash(gomock.Any()).DoAndReturn(func(in *domain.DescriptorInputs) (string, error) {
		assert.Equal(t, wantDirs, in.SourceDirs)
		assert.Equal(t, "com.example.greet.help", in.HelpPackage)
		require.Len(t, in.Upstream, 1)
		assert.Equal(t, "core", in.Upstream[0].Artifact)
		return "hash", nil
	})
	env.store.EXPECT().Get(root, ":plugin").Return(nil, nil)
	env.scanner.EXPECT().Scan(gomock.Any(), wantDirs).Return(mojos, nil)
	env.writer.EXPECT().WriteDescriptor(descriptorDir, gomock.Any()).
		DoAndReturn(func(_ string, d *domain.PluginDescriptor) (string, error) {
			assert.Equal(t, "com.example:greet-maven-plugin:1.0.0", d.Plugin.GAV.String())
			assert.Equal(t, "greet", d.Plugin.GoalPrefix)
			assert.Equal(t, "Greets builds", d.Plugin.Description)
			assert.Equal(t, mojos, d.Mojos)
			assert.Equal(t, "com.example.greet.help", d.HelpPackage)
			assert.Equal(t, []domain.DependencyDescriptor{{
				Group: "org.apache.commons", Artifact: "commons-lang3", Version: "3.12", Extension: "jar",
			}}, d.Dependencies)
			return output, nil
		})
	env.store.EXPECT().Put(root, domain.BuildInfo{
		Project:   ":plugin",
		InputHash: "hash",
		Output:    output,
		Timestamp: fixedNow,
	}).Return(nil)

	result, err := env.app.Generate(context.Background(), app.GenerateOptions{
		ProjectOptions: app.ProjectOptions{Dir: root},
	})
	require.NoError(t, err)
	assert.Equal(t, ":plugin", result.Project)
	assert.Equal(t, output, result.Descriptor)
	assert.Equal(t, domain.VertexStatusCompleted, result.Status)
}

func TestApp_Generate_UpToDate(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	ws := testWorkspace(root, "")
	output := domain.PluginXMLPath(domain.DescriptorDir(filepath.Join(root, "plugin")))

	env.expectResolve(ws, filepath.Join(root, "core", "src", "main", "java"))
	env.hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("hash", nil)
	env.store.EXPECT().Get(root, ":plugin").Return(&domain.BuildInfo{Project: ":plugin", InputHash: "hash"}, nil)
	env.verifier.EXPECT().VerifyOutputs(root, []string{output}).Return(true, nil)

	result, err := env.app.Generate(context.Background(), app.GenerateOptions{
		ProjectOptions: app.ProjectOptions{Dir: root, Project: ":plugin"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCached, result.Status)
	assert.Equal(t, output, result.Descriptor)
}

func TestApp_Generate_Regenerates(t *testing.T) {
	tests := []struct {
		name   string
		force  bool
		stored *domain.BuildInfo
		exists bool
	}{
		{name: "hash changed", stored: &domain.BuildInfo{InputHash: "old"}},
		{name: "descriptor missing", stored: &domain.BuildInfo{InputHash: "hash"}, exists: false},
		{name: "forced", force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			root := t.TempDir()
			ws := testWorkspace(root, "")
			output := domain.PluginXMLPath(domain.DescriptorDir(filepath.Join(root, "plugin")))

			env.expectResolve(ws, filepath.Join(root, "core", "src", "main", "java"))
			env.hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("hash", nil)
			if !tt.force {
				env.store.EXPECT().Get(root, ":plugin").Return(tt.stored, nil)
				if tt.stored.InputHash == "hash" {
					env.verifier.EXPECT().VerifyOutputs(root, []string{output}).Return(tt.exists, nil)
				}
			}
			env.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil, nil)
			env.writer.EXPECT().WriteDescriptor(gomock.Any(), gomock.Any()).Return(output, nil)
			env.store.EXPECT().Put(root, gomock.Any()).Return(nil)

			result, err := env.app.Generate(context.Background(), app.GenerateOptions{
				ProjectOptions: app.ProjectOptions{Dir: root},
				Force:          tt.force,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.VertexStatusCompleted, result.Status)
		})
	}
}

func TestApp_Generate_UpstreamWithoutSources(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	ws := testWorkspace(root, "")
	output := domain.PluginXMLPath(domain.DescriptorDir(filepath.Join(root, "plugin")))

	env.expectResolve(ws, "")
	env.logger.EXPECT().Warn("upstream project com.example:core has no sources, its mojos are not described").Times(1)
	env.hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("hash", nil)
	env.store.EXPECT().Get(root, ":plugin").Return(nil, nil)
	env.scanner.EXPECT().Scan(gomock.Any(), []string{filepath.Join(root, "plugin", "src", "main", "java")}).Return(nil, nil)
	env.writer.EXPECT().WriteDescriptor(gomock.Any(), gomock.Any()).Return(output, nil)
	env.store.EXPECT().Put(root, gomock.Any()).Return(nil)

	_, err := env.app.Generate(context.Background(), app.GenerateOptions{
		ProjectOptions: app.ProjectOptions{Dir: root},
	})
	require.NoError(t, err)
}

func TestApp_Generate_Failures(t *testing.T) {
	t.Run("resolution", func(t *testing.T) {
		env := newTestEnv(t)
		root := t.TempDir()
		ws := testWorkspace(root, "")

		env.loader.EXPECT().Load(root).Return(ws, nil)
		env.resolver.EXPECT().Resolve(gomock.Any(), ws, ":plugin", domain.CompileClasspath).
			Return(nil, zerr.Wrap(domain.ErrModuleNotFound, domain.ErrResolutionFailed.Error()))

		_, err := env.app.Generate(context.Background(), app.GenerateOptions{
			ProjectOptions: app.ProjectOptions{Dir: root},
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrResolutionFailed.Error())
	})

	t.Run("scan", func(t *testing.T) {
		env := newTestEnv(t)
		root := t.TempDir()
		ws := testWorkspace(root, "")

		env.expectResolve(ws, filepath.Join(root, "core", "src", "main", "java"))
		env.hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("hash", nil)
		env.store.EXPECT().Get(root, ":plugin").Return(nil, nil)
		env.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil, domain.ErrScanFailed)

		_, err := env.app.Generate(context.Background(), app.GenerateOptions{
			ProjectOptions: app.ProjectOptions{Dir: root},
		})
		require.ErrorIs(t, err, domain.ErrScanFailed)
	})

	t.Run("store read", func(t *testing.T) {
		env := newTestEnv(t)
		root := t.TempDir()
		ws := testWorkspace(root, "")
		output := domain.PluginXMLPath(domain.DescriptorDir(filepath.Join(root, "plugin")))

		env.expectResolve(ws, filepath.Join(root, "core", "src", "main", "java"))
		env.hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("hash", nil)
		env.store.EXPECT().Get(root, ":plugin").Return(nil, domain.ErrStoreReadFailed)
		env.logger.EXPECT().Warn(gomock.Any()).Times(1)
		env.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil, nil)
		env.writer.EXPECT().WriteDescriptor(gomock.Any(), gomock.Any()).Return(output, nil)
		env.store.EXPECT().Put(root, gomock.Any()).Return(domain.ErrStoreWriteFailed)

		_, err := env.app.Generate(context.Background(), app.GenerateOptions{
			ProjectOptions: app.ProjectOptions{Dir: root},
		})
		require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	})

	t.Run("config", func(t *testing.T) {
		env := newTestEnv(t)
		root := t.TempDir()

		env.loader.EXPECT().Load(root).Return(nil, domain.ErrConfigNotFound)

		_, err := env.app.Generate(context.Background(), app.GenerateOptions{
			ProjectOptions: app.ProjectOptions{Dir: root},
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to load configuration")
	})
}

func TestApp_SelectProject(t *testing.T) {
	root := "/ws"
	plugin := func(path string) *domain.Project {
		return &domain.Project{Path: path, Name: path[1:], Plugin: &domain.PluginSettings{}}
	}

	tests := []struct {
		name     string
		projects []*domain.Project
		project  string
		wantErr  error
	}{
		{name: "no plugin project", projects: []*domain.Project{{Path: ":core", Name: "core"}}, wantErr: domain.ErrNoPluginProject},
		{name: "ambiguous", projects: []*domain.Project{plugin(":a"), plugin(":b")}, wantErr: domain.ErrAmbiguousPluginProject},
		{name: "unknown project", projects: []*domain.Project{plugin(":a")}, project: ":missing", wantErr: domain.ErrProjectNotFound},
		{
			name:     "explicit project without plugin block",
			projects: []*domain.Project{plugin(":a"), {Path: ":core", Name: "core"}},
			project:  ":core",
			wantErr:  domain.ErrNoPluginProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.loader.EXPECT().Load(root).Return(&domain.Workspace{Root: root, Group: "g", Projects: tt.projects}, nil)

			_, err := env.app.Upstream(context.Background(), app.ProjectOptions{Dir: root, Project: tt.project})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestApp_SelectProject_AmbiguousMetadata(t *testing.T) {
	env := newTestEnv(t)
	ws := &domain.Workspace{Root: "/ws", Group: "g", Projects: []*domain.Project{
		{Path: ":a", Name: "a", Plugin: &domain.PluginSettings{}},
		{Path: ":b", Name: "b", Plugin: &domain.PluginSettings{}},
	}}
	env.loader.EXPECT().Load("/ws").Return(ws, nil)

	_, err := env.app.Upstream(context.Background(), app.ProjectOptions{Dir: "/ws"})

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, []string{":a", ":b"}, zErr.Metadata()["projects"])
}

func TestApp_GenerateHelpMojo(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	ws := testWorkspace(root, "com.example.greet.help")
	pluginDir := filepath.Join(root, "plugin")

	env.loader.EXPECT().Load(root).Return(ws, nil)
	env.writer.EXPECT().WriteHelpMojo(
		domain.HelpMojoDir(pluginDir),
		domain.HelpPropertiesFile(pluginDir),
		gomock.Any(),
		"com.example.greet.help",
	).DoAndReturn(func(_, _ string, p domain.Plugin, _ string) error {
		assert.Equal(t, "greet", p.GoalPrefix)
		return nil
	})

	written, err := env.app.GenerateHelpMojo(context.Background(), app.ProjectOptions{Dir: root})
	require.NoError(t, err)
	assert.True(t, written)
}

func TestApp_GenerateHelpMojo_NotConfigured(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()

	env.loader.EXPECT().Load(root).Return(testWorkspace(root, ""), nil)

	written, err := env.app.GenerateHelpMojo(context.Background(), app.ProjectOptions{Dir: root})
	require.NoError(t, err)
	assert.False(t, written)
}

func TestApp_GenerateHelpMojo_Failure(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()

	env.loader.EXPECT().Load(root).Return(testWorkspace(root, "x.help"), nil)
	env.writer.EXPECT().WriteHelpMojo(gomock.Any(), gomock.Any(), gomock.Any(), "x.help").
		Return(domain.ErrHelpMojoWriteFailed)

	written, err := env.app.GenerateHelpMojo(context.Background(), app.ProjectOptions{Dir: root})
	require.ErrorIs(t, err, domain.ErrHelpMojoWriteFailed)
	assert.False(t, written)
}

func TestApp_Upstream(t *testing.T) {
	env := newTestEnv(t)
	root := t.TempDir()
	ws := testWorkspace(root, "")
	coreSources := filepath.Join(root, "core", "src", "main", "java")

	env.expectResolve(ws, coreSources)

	report, err := env.app.Upstream(context.Background(), app.ProjectOptions{Dir: root})
	require.NoError(t, err)

	assert.Equal(t, ":plugin", report.Project)
	assert.Equal(t, []domain.UpstreamProjectDescriptor{{
		Group:      "com.example",
		Artifact:   "core",
		ClassesDir: filepath.Join(root, "core", "build", "classes"),
		SourcesDir: coreSources,
	}}, report.Upstream)
	assert.Equal(t, []domain.DependencyDescriptor{{
		Group: "org.apache.commons", Artifact: "commons-lang3", Version: "3.12", Extension: "jar",
	}}, report.Dependencies)
}
