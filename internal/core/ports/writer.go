package ports

import "go.trai.ch/plugindev/internal/core/domain"

// DescriptorWriter serializes generated plugin metadata to disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type DescriptorWriter interface {
	// WriteDescriptor writes META-INF/maven/plugin.xml (and the help descriptor
	// when a help package is set) below dir and returns the plugin.xml path.
	WriteDescriptor(dir string, descriptor *domain.PluginDescriptor) (string, error)

	// WriteHelpMojo writes the help mojo source below dir and its properties file.
	WriteHelpMojo(dir, propertiesFile string, plugin domain.Plugin, helpPackage string) error
}
