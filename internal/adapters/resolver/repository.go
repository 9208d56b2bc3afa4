package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/zerr"
)

// ArtifactPath returns the Maven repository layout path of a module artifact.
func ArtifactPath(gav domain.GAV, extension string) string {
	if extension == "" {
		extension = domain.DefaultExtension
	}
	artifact, version := gav.Artifact.String(), gav.Version.String()
	return filepath.Join(
		filepath.Join(strings.Split(gav.Group.String(), ".")...),
		artifact,
		version,
		artifact+"-"+version+"."+extension,
	)
}

// locate finds a module artifact in the first repository containing it.
// Without repositories the layout path itself is returned.
func locate(repositories []string, gav domain.GAV, extension string) (string, error) {
	rel := ArtifactPath(gav, extension)
	if len(repositories) == 0 {
		return rel, nil
	}

	for _, repo := range repositories {
		candidate := filepath.Join(repo, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	err := zerr.With(domain.ErrModuleNotFound, "module", gav.String())
	return "", zerr.With(err, "repositories", strings.Join(repositories, string(os.PathListSeparator)))
}

// newer reports whether version a is higher than b. Versions that are not
// semantic versions are compared lexically.
func newer(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return a > b
	}
	return va.GreaterThan(vb)
}
