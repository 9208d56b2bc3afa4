package ports

import "go.trai.ch/plugindev/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash computes a single hash over everything that determines a plugin descriptor.
	ComputeInputHash(inputs *domain.DescriptorInputs) (string, error)
}
