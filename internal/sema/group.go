package sema

import (
	"fmt"
	"sort"

	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/source"
)

// Declarations holds the grouped top-level declarations keyed by name.
// Later declarations win over earlier ones with the same name, so dependent
// passes always see a single definition per name; every redefinition is
// still reported.
type Declarations struct {
	Configs map[string]*ast.ConfigDecl
	Enums   map[string]*ast.EnumDecl
	Models  map[string]*ast.ModelDecl
}

// Group partitions the flat declaration list into the three named
// collections, reporting SemaTypeDuplicateDefinition for every name
// redefinition across all three namespaces combined (a name declared k
// times yields exactly k-1 errors; the first occurrence never errors).
func Group(decls []ast.Declaration, reporter diag.Reporter) *Declarations {
	out := &Declarations{
		Configs: make(map[string]*ast.ConfigDecl),
		Enums:   make(map[string]*ast.EnumDecl),
		Models:  make(map[string]*ast.ModelDecl),
	}

	// имена разделяют одно пространство: config/enum/model не могут совпадать
	seen := make(map[string]source.Span)

	for _, decl := range decls {
		name := decl.DeclName()
		if prev, dup := seen[name.Text]; dup {
			diag.ReportError(reporter, diag.SemaTypeDuplicateDefinition, name.Span,
				fmt.Sprintf("type %q is defined more than once", name.Text)).
				WithNote(prev, "previously defined here").
				Emit()
		}
		seen[name.Text] = name.Span

		switch d := decl.(type) {
		case *ast.ConfigDecl:
			out.Configs[name.Text] = d
		case *ast.EnumDecl:
			out.Enums[name.Text] = d
		case *ast.ModelDecl:
			out.Models[name.Text] = d
		default:
			panic(fmt.Sprintf("unknown declaration kind %T", decl))
		}
	}
	return out
}

// ConfigNames returns the config block names in sorted order.
func (d *Declarations) ConfigNames() []string {
	return sortedKeys(d.Configs)
}

// EnumNames returns the enum names in sorted order.
func (d *Declarations) EnumNames() []string {
	return sortedKeys(d.Enums)
}

// ModelNames returns the model names in sorted order.
func (d *Declarations) ModelNames() []string {
	return sortedKeys(d.Models)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
