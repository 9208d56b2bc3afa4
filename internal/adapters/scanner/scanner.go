// Package scanner discovers Maven plugin goals in Java sources.
package scanner

import (
	"context"
	"os"
	"runtime"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"go.trai.ch/plugindev/internal/adapters/fs"
	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.MojoScanner = (*Scanner)(nil)

const classQuery = `(class_declaration) @class`

// Scanner implements ports.MojoScanner by parsing Java sources with tree-sitter.
type Scanner struct {
	walker *fs.Walker
}

// New creates a new Scanner.
func New(walker *fs.Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan parses every .java file below dirs and returns the classes annotated
// with @Mojo, sorted by goal. A file scanned twice through overlapping
// directories yields its mojos once.
func (s *Scanner) Scan(ctx context.Context, dirs []string) ([]domain.Mojo, error) {
	files := s.javaFiles(dirs)
	perFile := make([][]domain.Mojo, len(files))

	// The compiled query is shared read-only by every file's cursor.
	query, err := sitter.NewQuery([]byte(classQuery), java.GetLanguage())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrScanFailed.Error())
	}
	defer query.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mojos, err := scanFile(ctx, query, file)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "file", file)
			}
			perFile[i] = mojos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return collect(perFile)
}

func (s *Scanner) javaFiles(dirs []string) []string {
	seen := make(map[string]bool)
	var files []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		for path := range s.walker.WalkExt(dir, ".java") {
			if seen[path] {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
	}
	return files
}

func collect(perFile [][]domain.Mojo) ([]domain.Mojo, error) {
	byGoal := make(map[string]domain.Mojo)
	var out []domain.Mojo
	for _, mojos := range perFile {
		for _, m := range mojos {
			if existing, ok := byGoal[m.Goal]; ok {
				if existing.Implementation == m.Implementation {
					continue
				}
				err := zerr.With(domain.ErrScanFailed, "goal", m.Goal)
				err = zerr.With(err, "first", existing.Implementation)
				return nil, zerr.With(err, "second", m.Implementation)
			}
			byGoal[m.Goal] = m
			out = append(out, m)
		}
	}

	slices.SortFunc(out, func(a, b domain.Mojo) int {
		return strings.Compare(a.Goal, b.Goal)
	})
	return out, nil
}

func scanFile(ctx context.Context, query *sitter.Query, path string) ([]domain.Mojo, error) {
	src, err := os.ReadFile(path) //nolint:gosec // Path comes from walking a source directory
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read source file")
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse source file")
	}
	defer tree.Close()

	root := tree.RootNode()
	cu := newCompilationUnit(root, src)

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, root)

	var mojos []domain.Mojo
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			if mojo, ok := cu.mojo(c.Node); ok {
				mojos = append(mojos, mojo)
			}
		}
	}
	return mojos, nil
}

// mojo extracts the goal declared by a class, if it is annotated with @Mojo.
func (cu *compilationUnit) mojo(decl *sitter.Node) (domain.Mojo, bool) {
	args, ok := cu.annotation(decl, "Mojo")
	if !ok || args["name"] == "" {
		return domain.Mojo{}, false
	}

	m := domain.Mojo{
		Goal:                         args["name"],
		Implementation:               cu.className(decl),
		Description:                  cu.javadoc(decl),
		DefaultPhase:                 lifecyclePhase(args["defaultPhase"]),
		RequiresDependencyResolution: resolutionScope(args["requiresDependencyResolution"]),
		RequiresProject:              args["requiresProject"] != "false",
		ThreadSafe:                   args["threadSafe"] == "true",
		Aggregator:                   args["aggregator"] == "true",
	}

	if body := decl.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			field := body.NamedChild(i)
			if field.Type() != "field_declaration" {
				continue
			}
			m.Parameters = append(m.Parameters, cu.parameters(field)...)
		}
	}

	return m, true
}

func (cu *compilationUnit) parameters(field *sitter.Node) []domain.MojoParameter {
	args, ok := cu.annotation(field, "Parameter")
	if !ok {
		return nil
	}

	typeName := cu.qualify(field.ChildByFieldName("type").Content(cu.src))
	description := cu.javadoc(field)

	var params []domain.MojoParameter
	for i := 0; i < int(field.NamedChildCount()); i++ {
		declarator := field.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		params = append(params, domain.MojoParameter{
			Name:         declarator.ChildByFieldName("name").Content(cu.src),
			Alias:        args["alias"],
			Type:         typeName,
			Property:     args["property"],
			DefaultValue: args["defaultValue"],
			Description:  description,
			Required:     args["required"] == "true",
			ReadOnly:     args["readonly"] == "true",
		})
	}
	return params
}

// lifecyclePhase converts a LifecyclePhase constant to its phase id.
func lifecyclePhase(constant string) string {
	if constant == "" || constant == "NONE" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(constant), "_", "-")
}

// resolutionScope converts a ResolutionScope constant to its descriptor value.
func resolutionScope(constant string) string {
	if constant == "" || constant == "NONE" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(constant), "_plus_", "+")
}
