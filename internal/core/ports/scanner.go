package ports

import (
	"context"

	"go.trai.ch/plugindev/internal/core/domain"
)

// MojoScanner discovers plugin goals in source directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type MojoScanner interface {
	// Scan returns the mojos declared under dirs, sorted by goal.
	// Directories that do not exist are ignored.
	Scan(ctx context.Context, dirs []string) ([]domain.Mojo, error)
}
