package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes the input hash of a plugin descriptor.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash computes a single hash over the plugin identity, its
// runtime dependencies, its upstream projects and every file of the source
// directories. Source directories that do not exist contribute nothing.
func (h *Hasher) ComputeInputHash(inputs *domain.DescriptorInputs) (string, error) {
	hasher := xxhash.New()

	h.hashPlugin(inputs, hasher)
	h.hashDependencies(inputs.Dependencies, hasher)
	h.hashUpstream(inputs.Upstream, hasher)

	for _, dir := range inputs.SourceDirs {
		if err := h.hashDir(dir, hasher); err != nil {
			return "", zerr.Wrap(err, domain.ErrInputHashComputationFailed.Error())
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func writeFields(hasher *xxhash.Digest, fields ...string) {
	for _, f := range fields {
		_, _ = hasher.WriteString(f)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}

func (h *Hasher) hashPlugin(inputs *domain.DescriptorInputs, hasher *xxhash.Digest) {
	p := inputs.Plugin
	writeFields(hasher,
		p.GAV.Group.String(), p.GAV.Artifact.String(), p.GAV.Version.String(),
		p.Name, p.Description, p.GoalPrefix, inputs.HelpPackage,
	)
}

func (h *Hasher) hashDependencies(deps []domain.DependencyDescriptor, hasher *xxhash.Digest) {
	for _, d := range deps {
		writeFields(hasher, d.Group, d.Artifact, d.Version, d.Extension)
	}
	_, _ = hasher.Write([]byte{0})
}

func (h *Hasher) hashUpstream(upstream []domain.UpstreamProjectDescriptor, hasher *xxhash.Digest) {
	for _, u := range upstream {
		writeFields(hasher, u.Group, u.Artifact, u.Version, u.ClassesDir, u.SourcesDir)
	}
	_, _ = hasher.Write([]byte{0})
}

func (h *Hasher) hashDir(dir string, mainHasher *xxhash.Digest) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", dir)
	}
	if !info.IsDir() {
		return h.hashFile(dir, mainHasher)
	}

	for filePath := range h.walker.WalkFiles(dir, nil) {
		if err := h.hashFile(filePath, mainHasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(path))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
