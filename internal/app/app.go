// Package app implements the application layer for plugindev.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/plugindev/internal/engine/upstream"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.DependencyResolver
	upstream     *upstream.Resolver
	scanner      ports.MojoScanner
	writer       ports.DescriptorWriter
	hasher       ports.Hasher
	store        ports.BuildInfoStore
	verifier     ports.OutputVerifier
	logger       ports.Logger
	telemetry    ports.Telemetry
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.DependencyResolver,
	upstreamResolver *upstream.Resolver,
	scanner ports.MojoScanner,
	writer ports.DescriptorWriter,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	verifier ports.OutputVerifier,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		upstream:     upstreamResolver,
		scanner:      scanner,
		writer:       writer,
		hasher:       hasher,
		store:        store,
		verifier:     verifier,
		logger:       log,
		telemetry:    telemetry,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp build info.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ProjectOptions selects the project an operation applies to.
type ProjectOptions struct {
	// Dir is where the workfile lookup starts. Defaults to the working directory.
	Dir string
	// Project is the path of the plugin project. Empty selects the only
	// project declaring a plugin block.
	Project string
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	ProjectOptions
	// Force regenerates even when the previous outputs are up to date.
	Force bool
}

// GenerateResult describes the outcome of a descriptor generation.
type GenerateResult struct {
	Project    string
	Descriptor string
	Status     domain.VertexStatus
}

// UpstreamReport lists what a plugin project consumes from the workspace and beyond.
type UpstreamReport struct {
	Project      string                             `json:"project" yaml:"project"`
	Upstream     []domain.UpstreamProjectDescriptor `json:"upstream" yaml:"upstream"`
	Dependencies []domain.DependencyDescriptor      `json:"dependencies" yaml:"dependencies"`
}

// pluginProject is a loaded workspace with its selected plugin project.
type pluginProject struct {
	ws      *domain.Workspace
	project *domain.Project
	plugin  domain.Plugin
}

// Generate writes the plugin descriptor of a project, and its help mojo when
// configured. Nothing is written when the previous generation is up to date.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	pp, err := a.load(opts.ProjectOptions)
	if err != nil {
		return nil, err
	}

	ctx, vertex := a.telemetry.Record(ctx, "generate "+pp.project.Path)
	result, err := a.generate(ctx, pp, opts.Force)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}
	if result.Status == domain.VertexStatusCached {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return result, nil
}

//nolint:cyclop,funlen // orchestration function
func (a *App) generate(ctx context.Context, pp *pluginProject, force bool) (*GenerateResult, error) {
	report, err := a.resolve(ctx, pp)
	if err != nil {
		return nil, err
	}

	if err := a.writeHelpMojo(ctx, pp); err != nil {
		return nil, err
	}

	helpPackage := pp.project.Plugin.HelpMojoPackage
	sourceDirs := slices.Clone(pp.project.SourceDirs)
	if helpPackage != "" {
		sourceDirs = append(sourceDirs, domain.HelpMojoDir(pp.project.Dir))
	}
	for _, u := range report.Upstream {
		if !u.HasSources() {
			a.logger.Warn(fmt.Sprintf(
				"upstream project %s:%s has no sources, its mojos are not described", u.Group, u.Artifact))
			continue
		}
		sourceDirs = append(sourceDirs, u.SourcesDir)
	}

	descriptorDir := domain.DescriptorDir(pp.project.Dir)
	output := domain.PluginXMLPath(descriptorDir)
	result := &GenerateResult{Project: pp.project.Path, Descriptor: output}

	inputHash, err := a.hasher.ComputeInputHash(&domain.DescriptorInputs{
		Plugin:       pp.plugin,
		HelpPackage:  helpPackage,
		Dependencies: report.Dependencies,
		Upstream:     report.Upstream,
		SourceDirs:   sourceDirs,
	})
	if err != nil {
		return nil, err
	}

	if !force && a.upToDate(pp, inputHash, output) {
		a.logger.Info(fmt.Sprintf("%s is up to date", output))
		result.Status = domain.VertexStatusCached
		return result, nil
	}

	mojos, err := a.scan(ctx, sourceDirs)
	if err != nil {
		return nil, err
	}

	_, vertex := a.telemetry.Record(ctx, "write plugin descriptor")
	written, err := a.writer.WriteDescriptor(descriptorDir, &domain.PluginDescriptor{
		Plugin:       pp.plugin,
		Mojos:        mojos,
		Dependencies: report.Dependencies,
		HelpPackage:  helpPackage,
	})
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	if err := a.store.Put(pp.ws.Root, domain.BuildInfo{
		Project:   pp.project.Path,
		InputHash: inputHash,
		Output:    written,
		Timestamp: a.now(),
	}); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("wrote %s with %d goals", written, len(mojos)))
	result.Descriptor = written
	result.Status = domain.VertexStatusCompleted
	return result, nil
}

// upToDate reports whether the stored build info matches the inputs and the descriptor still exists.
func (a *App) upToDate(pp *pluginProject, inputHash, output string) bool {
	info, err := a.store.Get(pp.ws.Root, pp.project.Path)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring build info: %v", err))
		return false
	}
	if info == nil || info.InputHash != inputHash {
		return false
	}
	exists, err := a.verifier.VerifyOutputs(pp.ws.Root, []string{output})
	return err == nil && exists
}

func (a *App) scan(ctx context.Context, dirs []string) ([]domain.Mojo, error) {
	ctx, vertex := a.telemetry.Record(ctx, "scan mojo sources")
	mojos, err := a.scanner.Scan(ctx, dirs)
	if err == nil {
		vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d goals in %d directories", len(mojos), len(dirs)))
	}
	vertex.Complete(err)
	return mojos, err
}

// GenerateHelpMojo writes the help mojo sources of a project.
// It returns false when the project configures no help mojo package.
func (a *App) GenerateHelpMojo(ctx context.Context, opts ProjectOptions) (bool, error) {
	pp, err := a.load(opts)
	if err != nil {
		return false, err
	}
	if pp.project.Plugin.HelpMojoPackage == "" {
		a.logger.Info(fmt.Sprintf("project %s configures no help mojo package", pp.project.Path))
		return false, nil
	}
	if err := a.writeHelpMojo(ctx, pp); err != nil {
		return false, err
	}
	return true, nil
}

func (a *App) writeHelpMojo(ctx context.Context, pp *pluginProject) error {
	helpPackage := pp.project.Plugin.HelpMojoPackage
	if helpPackage == "" {
		return nil
	}

	_, vertex := a.telemetry.Record(ctx, "generate help mojo")
	err := a.writer.WriteHelpMojo(
		domain.HelpMojoDir(pp.project.Dir),
		domain.HelpPropertiesFile(pp.project.Dir),
		pp.plugin,
		helpPackage,
	)
	vertex.Complete(err)
	return err
}

// Upstream resolves the upstream projects and runtime dependencies of a plugin project.
func (a *App) Upstream(ctx context.Context, opts ProjectOptions) (*UpstreamReport, error) {
	pp, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	return a.resolve(ctx, pp)
}

func (a *App) resolve(ctx context.Context, pp *pluginProject) (*UpstreamReport, error) {
	ctx, vertex := a.telemetry.Record(ctx, "resolve dependencies", ports.WithInternal())

	compile, err := a.resolver.Resolve(ctx, pp.ws, pp.project.Path, domain.CompileClasspath)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	runtimeClasspath := pp.project.Plugin.Dependencies
	if runtimeClasspath == "" {
		runtimeClasspath = domain.RuntimeClasspath
	}
	runtime, err := a.resolver.Resolve(ctx, pp.ws, pp.project.Path, runtimeClasspath)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	projects, err := a.upstream.Resolve(ctx, compile, pp.ws.Group)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	return &UpstreamReport{
		Project:      pp.project.Path,
		Upstream:     projects,
		Dependencies: upstream.RuntimeDependencies(runtime),
	}, nil
}

func (a *App) load(opts ProjectOptions) (*pluginProject, error) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	ws, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	project, err := selectProject(ws, opts.Project)
	if err != nil {
		return nil, err
	}

	return &pluginProject{
		ws:      ws,
		project: project,
		plugin:  domain.NewPlugin(ws, project),
	}, nil
}

func selectProject(ws *domain.Workspace, path string) (*domain.Project, error) {
	if path != "" {
		project, err := ws.Project(path)
		if err != nil {
			return nil, err
		}
		if project.Plugin == nil {
			return nil, zerr.With(domain.ErrNoPluginProject, "project", path)
		}
		return project, nil
	}

	candidates := ws.PluginProjects()
	switch len(candidates) {
	case 0:
		return nil, domain.ErrNoPluginProject
	case 1:
		return candidates[0], nil
	default:
		paths := make([]string, 0, len(candidates))
		for _, p := range candidates {
			paths = append(paths, p.Path)
		}
		return nil, zerr.With(domain.ErrAmbiguousPluginProject, "projects", paths)
	}
}
