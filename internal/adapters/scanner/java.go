package scanner

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// javaLang lists the java.lang types that are referenced without imports.
var javaLang = map[string]bool{
	"String": true, "Object": true, "Boolean": true, "Byte": true, "Character": true,
	"Short": true, "Integer": true, "Long": true, "Float": true, "Double": true,
	"Number": true, "StringBuilder": true, "Class": true, "Enum": true,
}

var primitives = map[string]bool{
	"boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true,
}

// compilationUnit holds the file-level context needed to qualify names.
type compilationUnit struct {
	src     []byte
	pkg     string
	imports map[string]string
}

func newCompilationUnit(root *sitter.Node, src []byte) *compilationUnit {
	cu := &compilationUnit{src: src, imports: make(map[string]string)}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			if name := firstNamedOf(child, "scoped_identifier", "identifier"); name != nil {
				cu.pkg = name.Content(src)
			}
		case "import_declaration":
			text := strings.TrimSpace(child.Content(src))
			text = strings.TrimSuffix(strings.TrimPrefix(text, "import"), ";")
			text = strings.TrimSpace(text)
			if strings.HasPrefix(text, "static ") || strings.HasSuffix(text, "*") {
				continue
			}
			cu.imports[text[strings.LastIndex(text, ".")+1:]] = text
		}
	}

	return cu
}

// qualify returns the fully qualified name of a type as written in source.
func (cu *compilationUnit) qualify(typeName string) string {
	base, _, _ := strings.Cut(typeName, "<")
	base = strings.TrimSpace(base)

	array := ""
	if i := strings.Index(base, "["); i >= 0 {
		base, array = strings.TrimSpace(base[:i]), base[i:]
	}

	switch {
	case primitives[base], strings.Contains(base, "."):
		return base + array
	case cu.imports[base] != "":
		return cu.imports[base] + array
	case javaLang[base]:
		return "java.lang." + base + array
	case cu.pkg != "":
		return cu.pkg + "." + base + array
	default:
		return base + array
	}
}

// className returns the binary name of a class declaration, using '$' for nesting.
func (cu *compilationUnit) className(decl *sitter.Node) string {
	name := decl.ChildByFieldName("name").Content(cu.src)
	for p := decl.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "class_declaration" {
			name = p.ChildByFieldName("name").Content(cu.src) + "$" + name
		}
	}
	if cu.pkg == "" {
		return name
	}
	return cu.pkg + "." + name
}

func firstNamedOf(n *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

// annotation finds the annotation with the given simple name among the modifiers of a declaration.
// The returned map holds its arguments; a single unnamed argument is stored under "value".
func (cu *compilationUnit) annotation(decl *sitter.Node, simpleName string) (map[string]string, bool) {
	modifiers := firstNamedOf(decl, "modifiers")
	if modifiers == nil {
		return nil, false
	}

	for i := 0; i < int(modifiers.NamedChildCount()); i++ {
		a := modifiers.NamedChild(i)
		if a.Type() != "annotation" && a.Type() != "marker_annotation" {
			continue
		}
		name := a.ChildByFieldName("name").Content(cu.src)
		if name[strings.LastIndex(name, ".")+1:] != simpleName {
			continue
		}
		return cu.annotationArguments(a), true
	}
	return nil, false
}

func (cu *compilationUnit) annotationArguments(a *sitter.Node) map[string]string {
	args := make(map[string]string)
	list := a.ChildByFieldName("arguments")
	if list == nil {
		return args
	}

	for i := 0; i < int(list.NamedChildCount()); i++ {
		arg := list.NamedChild(i)
		if arg.Type() == "element_value_pair" {
			key := arg.ChildByFieldName("key").Content(cu.src)
			args[key] = cu.literal(arg.ChildByFieldName("value"))
			continue
		}
		if strings.Contains(arg.Type(), "comment") {
			continue
		}
		args["value"] = cu.literal(arg)
	}
	return args
}

// literal evaluates the constant expressions found in annotation arguments.
func (cu *compilationUnit) literal(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	text := n.Content(cu.src)

	switch n.Type() {
	case "string_literal":
		if s, err := strconv.Unquote(text); err == nil {
			return s
		}
		return strings.Trim(text, `"`)
	case "field_access":
		if field := n.ChildByFieldName("field"); field != nil {
			return field.Content(cu.src)
		}
	case "binary_expression":
		return cu.literal(n.ChildByFieldName("left")) + cu.literal(n.ChildByFieldName("right"))
	case "parenthesized_expression":
		if inner := n.NamedChild(0); inner != nil {
			return cu.literal(inner)
		}
	}
	return text
}

// javadoc returns the text of the javadoc comment directly preceding n, without tags.
func (cu *compilationUnit) javadoc(n *sitter.Node) string {
	prev := n.PrevNamedSibling()
	if prev == nil || !strings.Contains(prev.Type(), "comment") {
		return ""
	}
	text := prev.Content(cu.src)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}

	text = strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if strings.HasPrefix(line, "@") {
			break
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
