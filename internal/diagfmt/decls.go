package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sdml/internal/ast"
	"sdml/internal/token"
)

// FormatDeclsPretty выводит объявления схемы в человекочитаемом виде,
// по одному блоку на объявление.
func FormatDeclsPretty(w io.Writer, decls []ast.Declaration) error {
	for i, decl := range decls {
		if i > 0 {
			fmt.Fprintln(w)
		}
		switch d := decl.(type) {
		case *ast.ConfigDecl:
			fmt.Fprintf(w, "config %s\n", d.Name.Text)
			for _, entry := range d.Entries {
				fmt.Fprintf(w, "  %s = %s\n", entry.Key.Text, literalText(entry.Value))
			}
		case *ast.EnumDecl:
			fmt.Fprintf(w, "enum %s\n", d.Name.Text)
			for _, v := range d.Values {
				fmt.Fprintf(w, "  %s\n", v.Text)
			}
		case *ast.ModelDecl:
			fmt.Fprintf(w, "model %s\n", d.Name.Text)
			for _, f := range d.Fields {
				fmt.Fprintf(w, "  %s: %s%s", f.Name.Text, f.Type.Type, aritySuffix(f.Type.Arity))
				for _, attr := range f.Attrs {
					fmt.Fprintf(w, " %s", attrText(attr))
				}
				fmt.Fprintln(w)
			}
		}
	}
	return nil
}

func aritySuffix(a ast.Arity) string {
	switch a {
	case ast.Optional:
		return "?"
	case ast.Array:
		return "[]"
	default:
		return ""
	}
}

func literalText(tok token.Token) string {
	if tok.Kind == token.StringLit {
		return fmt.Sprintf("%q", tok.Text)
	}
	return tok.Text
}

func attrText(attr *ast.Attribute) string {
	if attr.Arg == nil {
		return "@" + attr.Name.Text
	}
	switch attr.Arg.Kind {
	case ast.ArgFunc:
		return fmt.Sprintf("@%s(%s())", attr.Name.Text, attr.Arg.Func.Text)
	case ast.ArgIdent:
		return fmt.Sprintf("@%s(%s)", attr.Name.Text, attr.Arg.Ident.Text)
	default:
		pairs := make([]string, 0, len(attr.Arg.Named))
		for _, na := range attr.Arg.Named {
			pairs = append(pairs, fmt.Sprintf("%s: %s", na.Name.Text, literalText(na.Value)))
		}
		return fmt.Sprintf("@%s(%s)", attr.Name.Text, strings.Join(pairs, ", "))
	}
}

// DeclOutput is one top-level declaration in JSON form.
type DeclOutput struct {
	Kind    string            `json:"kind"` // config | enum | model
	Name    string            `json:"name"`
	Entries map[string]string `json:"entries,omitempty"` // config
	Values  []string          `json:"values,omitempty"`  // enum
	Fields  []FieldOutput     `json:"fields,omitempty"`  // model
}

type FieldOutput struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Arity string   `json:"arity"`
	Attrs []string `json:"attrs,omitempty"`
}

// FormatDeclsJSON выводит объявления схемы в JSON формате
func FormatDeclsJSON(w io.Writer, decls []ast.Declaration) error {
	output := make([]DeclOutput, 0, len(decls))

	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.ConfigDecl:
			out := DeclOutput{Kind: "config", Name: d.Name.Text}
			if len(d.Entries) > 0 {
				out.Entries = make(map[string]string, len(d.Entries))
				for _, entry := range d.Entries {
					out.Entries[entry.Key.Text] = entry.Value.Text
				}
			}
			output = append(output, out)
		case *ast.EnumDecl:
			out := DeclOutput{Kind: "enum", Name: d.Name.Text}
			for _, v := range d.Values {
				out.Values = append(out.Values, v.Text)
			}
			output = append(output, out)
		case *ast.ModelDecl:
			out := DeclOutput{Kind: "model", Name: d.Name.Text}
			for _, f := range d.Fields {
				field := FieldOutput{
					Name:  f.Name.Text,
					Type:  f.Type.Type.String(),
					Arity: f.Type.Arity.String(),
				}
				for _, attr := range f.Attrs {
					field.Attrs = append(field.Attrs, attrText(attr))
				}
				out.Fields = append(out.Fields, field)
			}
			output = append(output, out)
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
