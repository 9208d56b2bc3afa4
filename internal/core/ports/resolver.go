// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/plugindev/internal/core/domain"
)

// DependencyResolver resolves the dependency graph of a project classpath.
//
// Implementations are responsible for:
//   - Walking project and external module dependencies in declaration order
//   - Selecting one variant per component from the classpath's requested attributes
//   - Locating external module artifacts
//
// Any failure is fatal for the caller and is returned wrapped in domain.ErrResolutionFailed.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve returns an immutable snapshot of the classpath of the given project.
	Resolve(
		ctx context.Context,
		ws *domain.Workspace,
		projectPath string,
		classpath domain.Classpath,
	) (*domain.ResolvedGraph, error)
}
