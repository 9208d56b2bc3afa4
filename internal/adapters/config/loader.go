// Package config provides the configuration loader for plugindev.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validProjectPathRegex = regexp.MustCompile(`^(:[a-zA-Z0-9_.-]+)+$`)

// Load finds the workfile starting at cwd and returns the workspace it describes.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := findWorkfile(cwd)
	if err != nil {
		return nil, err
	}

	var workfile Workfile
	if err := readAndUnmarshalYAML(configPath, &workfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.buildWorkspace(&workfile, resolveRoot(configPath, workfile.Root))
}

func findWorkfile(cwd string) (string, error) {
	currentDir := cwd
	for {
		workfilePath := filepath.Join(currentDir, domain.WorkFileName)
		if _, err := os.Stat(workfilePath); err == nil {
			return workfilePath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildWorkspace(workfile *Workfile, root string) (*domain.Workspace, error) {
	if workfile.Group == "" {
		return nil, domain.ErrMissingWorkspaceGroup
	}

	ws := &domain.Workspace{
		Root:    root,
		Group:   workfile.Group,
		Version: workfile.Version,
	}

	for _, repo := range workfile.Repositories {
		ws.Repositories = append(ws.Repositories, resolvePath(root, expandHome(repo)))
	}

	modules, err := buildModules(workfile.Modules)
	if err != nil {
		return nil, err
	}
	ws.Modules = modules

	seen := make(map[string]int, len(workfile.Projects))
	for i, dto := range workfile.Projects {
		if dto == nil {
			continue
		}
		if !validProjectPathRegex.MatchString(dto.Path) {
			err := zerr.With(domain.ErrInvalidProjectPath, "project_path", dto.Path)
			return nil, zerr.With(err, "index", i)
		}
		if first, exists := seen[dto.Path]; exists {
			err := zerr.With(domain.ErrDuplicateProjectPath, "project_path", dto.Path)
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate_at", i)
		}
		seen[dto.Path] = i

		project, err := l.buildProject(ws, dto)
		if err != nil {
			return nil, zerr.With(err, "project", dto.Path)
		}
		ws.Projects = append(ws.Projects, project)
	}

	return ws, nil
}

func (l *Loader) buildProject(ws *domain.Workspace, dto *ProjectDTO) (*domain.Project, error) {
	segments := strings.Split(strings.TrimPrefix(dto.Path, ":"), ":")

	p := &domain.Project{
		Path:        dto.Path,
		Name:        dto.Name,
		Group:       dto.Group,
		Version:     dto.Version,
		Description: dto.Description,
	}
	if p.Name == "" {
		p.Name = segments[len(segments)-1]
	}

	if dto.Dir != "" {
		p.Dir = resolvePath(ws.Root, dto.Dir)
	} else {
		p.Dir = filepath.Join(append([]string{ws.Root}, segments...)...)
	}

	p.SourceDirs = l.sourceDirs(p, dto.Sources)
	p.Variants = conventionalVariants(p, dto)

	deps, err := buildDependencies(dto.Dependencies)
	if err != nil {
		return nil, err
	}
	p.Dependencies = deps

	if dto.Plugin != nil {
		settings, err := buildPluginSettings(dto.Plugin)
		if err != nil {
			return nil, err
		}
		p.Plugin = settings
	}

	return p, nil
}

func (l *Loader) sourceDirs(p *domain.Project, declared *[]string) []string {
	if declared == nil {
		dir := filepath.Join(p.Dir, domain.DefaultSourcesDir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return []string{dir}
		}
		return nil
	}

	dirs := make([]string, 0, len(*declared))
	for _, s := range *declared {
		dir := resolvePath(p.Dir, s)
		if _, err := os.Stat(dir); err != nil {
			l.Logger.Warn(fmt.Sprintf("source directory %s of project %s does not exist", dir, p.Path))
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// conventionalVariants builds the variants a Java library project exposes.
func conventionalVariants(p *domain.Project, dto *ProjectDTO) []domain.Variant {
	classes := domain.DefaultClassesDir
	if dto.Classes != "" {
		classes = dto.Classes
	}

	jar := dto.Jar
	if jar == "" {
		jar = filepath.Join("build", "libs", p.Name+"."+domain.DefaultExtension)
	}

	variants := []domain.Variant{
		{
			Name: "apiElements",
			Attributes: domain.Attributes{
				domain.AttributeCategory: domain.CategoryLibrary,
				domain.AttributeUsage:    domain.UsageJavaAPI,
			},
			Artifacts: []domain.Artifact{{File: resolvePath(p.Dir, classes)}},
		},
		{
			Name: "runtimeElements",
			Attributes: domain.Attributes{
				domain.AttributeCategory: domain.CategoryLibrary,
				domain.AttributeUsage:    domain.UsageJavaRuntime,
			},
			Artifacts: []domain.Artifact{{
				File:      resolvePath(p.Dir, jar),
				Extension: domain.DefaultExtension,
			}},
		},
	}

	if len(p.SourceDirs) > 0 {
		sources := domain.Variant{
			Name: "mainSourceElements",
			Attributes: domain.Attributes{
				domain.AttributeCategory:         domain.CategoryVerification,
				domain.AttributeVerificationType: domain.VerificationTypeMainSources,
			},
		}
		for _, dir := range p.SourceDirs {
			sources.Artifacts = append(sources.Artifacts, domain.Artifact{File: dir})
		}
		variants = append(variants, sources)
	}

	return variants
}

func buildDependencies(dto DependenciesDTO) ([]domain.Dependency, error) {
	buckets := []struct {
		bucket    domain.DependencyBucket
		notations []string
	}{
		{domain.BucketAPI, dto.API},
		{domain.BucketImplementation, dto.Implementation},
		{domain.BucketCompileOnly, dto.CompileOnly},
		{domain.BucketRuntimeOnly, dto.RuntimeOnly},
	}

	var deps []domain.Dependency
	for _, b := range buckets {
		for _, notation := range b.notations {
			dep, err := ParseDependency(notation, b.bucket)
			if err != nil {
				return nil, err
			}
			deps = append(deps, dep)
		}
	}
	return deps, nil
}

func buildModules(modules map[string][]string) (map[domain.GAV][]domain.Dependency, error) {
	if len(modules) == 0 {
		return nil, nil
	}

	out := make(map[domain.GAV][]domain.Dependency, len(modules))
	for coordinates, notations := range modules {
		gav, err := domain.ParseGAV(coordinates)
		if err != nil {
			return nil, zerr.With(err, "module", coordinates)
		}
		// Modules are keyed by full coordinates.
		if gav.Version.IsZero() {
			return nil, zerr.With(domain.ErrInvalidDependency, "module", coordinates)
		}

		deps := make([]domain.Dependency, 0, len(notations))
		for _, notation := range notations {
			dep, err := ParseDependency(notation, domain.BucketRuntimeOnly)
			if err != nil {
				return nil, zerr.With(err, "module", coordinates)
			}
			if dep.IsProject() {
				err := zerr.With(domain.ErrInvalidDependency, "dependency", notation)
				return nil, zerr.With(err, "module", coordinates)
			}
			deps = append(deps, dep)
		}
		out[gav] = deps
	}
	return out, nil
}

// ParseDependency parses ":project:path" or "group:artifact:version[@extension]".
func ParseDependency(notation string, bucket domain.DependencyBucket) (domain.Dependency, error) {
	if strings.HasPrefix(notation, ":") {
		if !validProjectPathRegex.MatchString(notation) {
			return domain.Dependency{}, zerr.With(domain.ErrInvalidDependency, "dependency", notation)
		}
		return domain.Dependency{Bucket: bucket, ProjectPath: notation}, nil
	}

	coordinates, ext, _ := strings.Cut(notation, "@")
	gav, err := domain.ParseGAV(coordinates)
	if err != nil || gav.Version.IsZero() {
		return domain.Dependency{}, zerr.With(domain.ErrInvalidDependency, "dependency", notation)
	}
	if ext == "" {
		ext = domain.DefaultExtension
	}

	return domain.Dependency{Bucket: bucket, Module: gav, Extension: ext}, nil
}

func buildPluginSettings(dto *PluginDTO) (*domain.PluginSettings, error) {
	cp := domain.RuntimeClasspath
	if dto.Dependencies != "" {
		cp = domain.Classpath(dto.Dependencies)
		if cp != domain.CompileClasspath && cp != domain.RuntimeClasspath {
			return nil, zerr.With(domain.ErrInvalidClasspath, "classpath", dto.Dependencies)
		}
	}

	return &domain.PluginSettings{
		GroupID:         dto.GroupID,
		ArtifactID:      dto.ArtifactID,
		Version:         dto.Version,
		Name:            dto.Name,
		Description:     dto.Description,
		GoalPrefix:      dto.GoalPrefix,
		HelpMojoPackage: dto.HelpMojoPackage,
		Dependencies:    cp,
	}, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolvePath(filepath.Dir(configPath), configuredRoot)
}

// resolvePath returns p made absolute against base.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
