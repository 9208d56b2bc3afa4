package descriptor

import (
	"bytes"
	"path"
	"text/template"

	"go.trai.ch/plugindev/internal/core/domain"
)

type helpMojoData struct {
	Package        string
	GoalPrefix     string
	HelpDescriptor string
}

func renderHelpMojo(plugin domain.Plugin, helpPackage string) ([]byte, error) {
	prefix := plugin.GoalPrefix
	if prefix == "" {
		prefix = plugin.GAV.Artifact.String()
	}

	var buf bytes.Buffer
	err := helpMojoTemplate.Execute(&buf, helpMojoData{
		Package:        helpPackage,
		GoalPrefix:     prefix,
		HelpDescriptor: path.Join("META-INF", "maven", plugin.GAV.Group.String(), plugin.GAV.Artifact.String(), "plugin-help.xml"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var helpMojoTemplate = template.Must(template.New("HelpMojo.java").Parse(`package {{.Package}};

import java.io.IOException;
import java.io.InputStream;
import java.util.ArrayList;
import java.util.List;

import javax.xml.parsers.DocumentBuilderFactory;

import org.apache.maven.plugin.AbstractMojo;
import org.apache.maven.plugin.MojoExecutionException;
import org.apache.maven.plugins.annotations.Mojo;
import org.apache.maven.plugins.annotations.Parameter;
import org.w3c.dom.Document;
import org.w3c.dom.Element;
import org.w3c.dom.Node;
import org.w3c.dom.NodeList;

/**
 * Display help information on the plugin. Call mvn {{.GoalPrefix}}:help -Ddetail=true -Dgoal=&lt;goal-name&gt; to display parameter details.
 */
@Mojo(name = "help", requiresProject = false, threadSafe = true)
public class HelpMojo extends AbstractMojo {

    /**
     * If true, display all settable properties for each goal.
     */
    @Parameter(property = "detail", defaultValue = "false")
    private boolean detail;

    /**
     * The name of the goal for which to show help. If unspecified, all goals will be displayed.
     */
    @Parameter(property = "goal")
    private java.lang.String goal;

    private static final String PLUGIN_HELP_PATH = "/{{.HelpDescriptor}}";

    public void execute() throws MojoExecutionException {
        Document doc = build();
        Element plugin = doc.getDocumentElement();

        StringBuilder sb = new StringBuilder();
        sb.append(text(plugin, "name")).append(' ').append(text(plugin, "version")).append("\n");
        sb.append("  ").append(text(plugin, "description")).append("\n\n");

        List<Element> mojos = children(child(plugin, "mojos"), "mojo");
        if (goal == null || goal.isEmpty()) {
            sb.append("This plugin has ").append(mojos.size()).append(" goals:\n\n");
        }
        for (Element mojo : mojos) {
            String name = text(mojo, "goal");
            if (goal != null && !goal.isEmpty() && !goal.equals(name)) {
                continue;
            }
            sb.append("{{.GoalPrefix}}:").append(name).append("\n");
            sb.append("  ").append(text(mojo, "description")).append("\n");
            if (detail) {
                for (Element parameter : children(child(mojo, "parameters"), "parameter")) {
                    if (!"true".equals(text(parameter, "editable"))) {
                        continue;
                    }
                    sb.append("  ").append(text(parameter, "name")).append("\n");
                    sb.append("    ").append(text(parameter, "description")).append("\n");
                }
            }
            sb.append("\n");
        }

        if (getLog().isInfoEnabled()) {
            getLog().info(sb.toString());
        }
    }

    private Document build() throws MojoExecutionException {
        getLog().debug("load plugin-help.xml: " + PLUGIN_HELP_PATH);
        try (InputStream is = getClass().getResourceAsStream(PLUGIN_HELP_PATH)) {
            if (is == null) {
                throw new MojoExecutionException("Could not find plugin descriptor at " + PLUGIN_HELP_PATH);
            }
            return DocumentBuilderFactory.newInstance().newDocumentBuilder().parse(is);
        } catch (IOException e) {
            throw new MojoExecutionException(e.getMessage(), e);
        } catch (Exception e) {
            throw new MojoExecutionException(e.getMessage(), e);
        }
    }

    private static Element child(Element parent, String name) {
        if (parent == null) {
            return null;
        }
        NodeList nodes = parent.getChildNodes();
        for (int i = 0; i < nodes.getLength(); i++) {
            Node node = nodes.item(i);
            if (node instanceof Element && name.equals(node.getNodeName())) {
                return (Element) node;
            }
        }
        return null;
    }

    private static List<Element> children(Element parent, String name) {
        List<Element> result = new ArrayList<>();
        if (parent == null) {
            return result;
        }
        NodeList nodes = parent.getChildNodes();
        for (int i = 0; i < nodes.getLength(); i++) {
            Node node = nodes.item(i);
            if (node instanceof Element && name.equals(node.getNodeName())) {
                result.add((Element) node);
            }
        }
        return result;
    }

    private static String text(Element parent, String name) {
        Element element = child(parent, name);
        return element == null ? "" : element.getTextContent().trim();
    }
}
`))
