package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/vk/simplemodel/internal/dag"
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/loader"
	"github.com/vk/simplemodel/internal/model"
)

// Docs writes the input reference as markdown: one section per object
// kind, with the fields or variants it accepts.
func Docs(w io.Writer) error {
	g, err := loader.KindGraph()
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString("# Input reference\n")
	for _, t := range model.Types() {
		writeType(&sb, t, g)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// DocsHTML renders the markdown reference to HTML.
func DocsHTML(w io.Writer) error {
	var md bytes.Buffer
	if err := Docs(&md); err != nil {
		return err
	}
	gm := goldmark.New(goldmark.WithParser(goldmark.DefaultParser()))
	if err := gm.Convert(md.Bytes(), w); err != nil {
		return fmt.Errorf("failed to render reference: %w", err)
	}
	return nil
}

func writeType(sb *strings.Builder, t *field.Type, g *dag.Graph) {
	fmt.Fprintf(sb, "\n## %s\n\n%s\n", t.Name, t.Doc)
	// Embedded kinds are not in the graph.
	if deps, err := g.Dependencies(t.Name); err == nil {
		writeKinds(sb, "Refers to", deps)
		users, _ := g.Dependents(t.Name)
		writeKinds(sb, "Referred to by", users)
	}
	if !t.IsEnum() {
		fmt.Fprintf(sb, "\n```simple\n%s {\n", t.Name)
		for _, d := range t.Fields {
			fmt.Fprintf(sb, "    %s: ...,\n", d.Name)
		}
		sb.WriteString("}\n```\n")
		writeFields(sb, t.Fields)
		return
	}

	for _, v := range t.Variants {
		fmt.Fprintf(sb, "\n### %s::%s\n", t.Name, v.Name)
		if v.Doc != "" {
			fmt.Fprintf(sb, "\n%s\n", v.Doc)
		}
		if len(v.Args) > 0 {
			names := make([]string, len(v.Args))
			for i, a := range v.Args {
				names[i] = a.Name
			}
			fmt.Fprintf(sb, "\n```simple\n%s::%s(%s)\n```\n", t.Name, v.Name, strings.Join(names, ", "))
			writeFields(sb, v.Args)
		}
		if len(v.Fields) > 0 {
			writeFields(sb, v.Fields)
		}
	}
}

func writeKinds(sb *strings.Builder, label string, kinds []string) {
	if len(kinds) == 0 {
		return
	}
	quoted := make([]string, len(kinds))
	for i, k := range kinds {
		quoted[i] = "`" + k + "`"
	}
	fmt.Fprintf(sb, "\n%s: %s.\n", label, strings.Join(quoted, ", "))
}

func writeFields(sb *strings.Builder, fields []field.Descriptor) {
	sb.WriteString("\n| Field | Type | Required | Description |\n|---|---|---|---|\n")
	for _, d := range fields {
		required := "yes"
		switch {
		case d.Optional:
			required = "no"
		case d.Kind == field.List && d.NonEmpty:
			required = "yes, not empty"
		case d.Kind == field.List:
			required = "no"
		}
		fmt.Fprintf(sb, "| `%s` | %s | %s | %s |\n", d.Name, typeName(d), required, d.Doc)
	}
}

func typeName(d field.Descriptor) string {
	switch d.Kind {
	case field.Ref, field.Object:
		return d.Target
	case field.List:
		inner := field.Descriptor{Kind: d.Elem, Target: d.Target}
		return "list of " + typeName(inner)
	}
	return d.Kind.String()
}
