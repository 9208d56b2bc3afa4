package descriptor

import (
	"encoding/xml"

	"go.trai.ch/plugindev/internal/core/domain"
)

// pluginXML is the Maven plugin descriptor document.
type pluginXML struct {
	XMLName            xml.Name        `xml:"plugin"`
	Name               string          `xml:"name"`
	Description        string          `xml:"description"`
	GroupID            string          `xml:"groupId"`
	ArtifactID         string          `xml:"artifactId"`
	Version            string          `xml:"version"`
	GoalPrefix         string          `xml:"goalPrefix,omitempty"`
	IsolatedRealm      bool            `xml:"isolatedRealm"`
	InheritedByDefault bool            `xml:"inheritedByDefault"`
	Mojos              []mojoXML       `xml:"mojos>mojo"`
	Dependencies       []dependencyXML `xml:"dependencies>dependency,omitempty"`
}

type mojoXML struct {
	Goal                         string         `xml:"goal"`
	Description                  string         `xml:"description,omitempty"`
	RequiresDependencyResolution string         `xml:"requiresDependencyResolution,omitempty"`
	RequiresDirectInvocation     bool           `xml:"requiresDirectInvocation"`
	RequiresProject              bool           `xml:"requiresProject"`
	RequiresReports              bool           `xml:"requiresReports"`
	Aggregator                   bool           `xml:"aggregator"`
	RequiresOnline               bool           `xml:"requiresOnline"`
	InheritedByDefault           bool           `xml:"inheritedByDefault"`
	Phase                        string         `xml:"phase,omitempty"`
	Implementation               string         `xml:"implementation"`
	Language                     string         `xml:"language"`
	InstantiationStrategy        string         `xml:"instantiationStrategy"`
	ExecutionStrategy            string         `xml:"executionStrategy"`
	ThreadSafe                   bool           `xml:"threadSafe"`
	Parameters                   []parameterXML `xml:"parameters>parameter,omitempty"`
	Configuration                *configuration `xml:"configuration,omitempty"`
}

type parameterXML struct {
	Name        string `xml:"name"`
	Alias       string `xml:"alias,omitempty"`
	Type        string `xml:"type"`
	Required    bool   `xml:"required"`
	Editable    bool   `xml:"editable"`
	Description string `xml:"description,omitempty"`
}

// configuration holds one element per parameter, named after the parameter.
type configuration struct {
	Entries []configEntry
}

type configEntry struct {
	XMLName        xml.Name
	Implementation string `xml:"implementation,attr,omitempty"`
	DefaultValue   string `xml:"default-value,attr,omitempty"`
	Expression     string `xml:",chardata"`
}

type dependencyXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Type       string `xml:"type"`
	Version    string `xml:"version"`
}

func newPluginXML(d *domain.PluginDescriptor, withDependencies bool) *pluginXML {
	p := &pluginXML{
		Name:               d.Plugin.Name,
		Description:        d.Plugin.Description,
		GroupID:            d.Plugin.GAV.Group.String(),
		ArtifactID:         d.Plugin.GAV.Artifact.String(),
		Version:            d.Plugin.GAV.Version.String(),
		GoalPrefix:         d.Plugin.GoalPrefix,
		InheritedByDefault: true,
	}

	for _, m := range d.Mojos {
		p.Mojos = append(p.Mojos, newMojoXML(m))
	}

	if withDependencies {
		for _, dep := range d.Dependencies {
			p.Dependencies = append(p.Dependencies, dependencyXML{
				GroupID:    dep.Group,
				ArtifactID: dep.Artifact,
				Type:       dep.Extension,
				Version:    dep.Version,
			})
		}
	}

	return p
}

func newMojoXML(m domain.Mojo) mojoXML {
	x := mojoXML{
		Goal:                         m.Goal,
		Description:                  m.Description,
		RequiresDependencyResolution: m.RequiresDependencyResolution,
		RequiresProject:              m.RequiresProject,
		Aggregator:                   m.Aggregator,
		InheritedByDefault:           true,
		Phase:                        m.DefaultPhase,
		Implementation:               m.Implementation,
		Language:                     "java",
		InstantiationStrategy:        "per-lookup",
		ExecutionStrategy:            "once-per-session",
		ThreadSafe:                   m.ThreadSafe,
	}

	var entries []configEntry
	for _, param := range m.Parameters {
		x.Parameters = append(x.Parameters, parameterXML{
			Name:        param.Name,
			Alias:       param.Alias,
			Type:        param.Type,
			Required:    param.Required,
			Editable:    !param.ReadOnly,
			Description: param.Description,
		})

		if param.Property == "" && param.DefaultValue == "" {
			continue
		}
		entry := configEntry{
			XMLName:        xml.Name{Local: param.Name},
			Implementation: param.Type,
			DefaultValue:   param.DefaultValue,
		}
		if param.Property != "" {
			entry.Expression = "${" + param.Property + "}"
		}
		entries = append(entries, entry)
	}
	if len(entries) > 0 {
		x.Configuration = &configuration{Entries: entries}
	}

	return x
}

// MarshalXML writes each entry as a child element named after its parameter.
func (c *configuration) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, entry := range c.Entries {
		if err := e.Encode(entry); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func marshalDocument(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	return append(out, '\n'), nil
}

