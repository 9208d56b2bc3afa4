// Package descriptor writes Maven plugin descriptors and help mojo sources.
package descriptor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/plugindev/internal/core/domain"
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorWriter = (*Writer)(nil)

// Writer implements ports.DescriptorWriter on the local filesystem.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// HelpDescriptorPath returns the location of plugin-help.xml inside a descriptor directory.
func HelpDescriptorPath(dir string, plugin domain.Plugin) string {
	return filepath.Join(dir, "META-INF", "maven", plugin.GAV.Group.String(), plugin.GAV.Artifact.String(), "plugin-help.xml")
}

// WriteDescriptor replaces the META-INF/maven tree below dir with a freshly
// generated plugin.xml, plus plugin-help.xml when a help package is set.
func (w *Writer) WriteDescriptor(dir string, descriptor *domain.PluginDescriptor) (string, error) {
	metaDir := filepath.Join(dir, "META-INF", "maven")
	if err := os.RemoveAll(metaDir); err != nil {
		return "", writeErr(err, domain.ErrDescriptorWriteFailed, metaDir)
	}

	path := domain.PluginXMLPath(dir)
	data, err := marshalDocument(newPluginXML(descriptor, true))
	if err != nil {
		return "", writeErr(err, domain.ErrDescriptorWriteFailed, path)
	}
	if err := writeFile(path, data); err != nil {
		return "", writeErr(err, domain.ErrDescriptorWriteFailed, path)
	}

	if descriptor.HelpPackage != "" {
		helpPath := HelpDescriptorPath(dir, descriptor.Plugin)
		data, err := marshalDocument(newPluginXML(descriptor, false))
		if err != nil {
			return "", writeErr(err, domain.ErrDescriptorWriteFailed, helpPath)
		}
		if err := writeFile(helpPath, data); err != nil {
			return "", writeErr(err, domain.ErrDescriptorWriteFailed, helpPath)
		}
	}

	return path, nil
}

// WriteHelpMojo writes HelpMojo.java into the package directory below dir and
// the properties file describing it.
func (w *Writer) WriteHelpMojo(dir, propertiesFile string, plugin domain.Plugin, helpPackage string) error {
	source, err := renderHelpMojo(plugin, helpPackage)
	if err != nil {
		return writeErr(err, domain.ErrHelpMojoWriteFailed, dir)
	}

	path := HelpMojoPath(dir, helpPackage)
	if err := writeFile(path, source); err != nil {
		return writeErr(err, domain.ErrHelpMojoWriteFailed, path)
	}

	var props bytes.Buffer
	props.WriteString("helpPackageName = " + helpPackage + "\n")
	props.WriteString("destinationDirectory = " + filepath.ToSlash(dir) + "\n")
	if err := writeFile(propertiesFile, props.Bytes()); err != nil {
		return writeErr(err, domain.ErrHelpMojoWriteFailed, propertiesFile)
	}

	return nil
}

// HelpMojoPath returns the location of HelpMojo.java for a package below dir.
func HelpMojoPath(dir, helpPackage string) string {
	return filepath.Join(dir, filepath.Join(strings.Split(helpPackage, ".")...), "HelpMojo.java")
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	//nolint:gosec // Path is derived from the project directory
	return os.WriteFile(path, data, domain.FilePerm)
}

func writeErr(err, sentinel error, path string) error {
	return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
}
