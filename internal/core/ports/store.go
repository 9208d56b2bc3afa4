package ports

import "go.trai.ch/plugindev/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build information.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info of a project of the workspace rooted at root.
	// Returns nil, nil if not found.
	Get(root, project string) (*domain.BuildInfo, error)

	// Put stores the build info in the workspace rooted at root.
	Put(root string, info domain.BuildInfo) error
}
