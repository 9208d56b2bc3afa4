// Package cas implements build info storage.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildInfoStore using one JSON file per workspace,
// holding the build info of every project keyed by project path.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the build info for a given project path.
func (s *Store) Get(root, project string) (*domain.BuildInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos, err := s.load(root)
	if err != nil {
		return nil, err
	}

	info, ok := infos[project]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info, replacing any previous record of the project.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos, err := s.load(root)
	if err != nil {
		return err
	}
	infos[info.Project] = info

	return s.save(root, infos)
}

func (s *Store) load(root string) (map[string]domain.BuildInfo, error) {
	infos := make(map[string]domain.BuildInfo)
	path := domain.DefaultStorePath(root)

	//nolint:gosec // Path is derived from the workspace root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return infos, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return infos, nil
	}

	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	return infos, nil
}

func (s *Store) save(root string, infos map[string]domain.BuildInfo) error {
	path := domain.DefaultStorePath(root)

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the workspace root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}
