package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/diagfmt"
	"sdml/internal/parser"
	"sdml/internal/source"
)

func parseDecls(t *testing.T, input string) []ast.Declaration {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sdml", []byte(input)))
	bag := diag.NewBag(16)
	decls := parser.ParseFile(file, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("fixture must parse cleanly: %v", bag.Items())
	}
	return decls
}

func TestFormatDeclsPretty(t *testing.T) {
	decls := parseDecls(t, `
config db {
	provider = "postgres"
}

enum Role {
	ADMIN
	USER
}

model User {
	id: ShortStr @id @default(auto())
	age: Int?
	tags: LongStr[]
	role: Role @default(ADMIN)
	author: Author @relation(name: "UserAuthor", field: authorId, references: id)
}
`)

	var buf bytes.Buffer
	if err := diagfmt.FormatDeclsPretty(&buf, decls); err != nil {
		t.Fatalf("FormatDeclsPretty failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"config db\n",
		`  provider = "postgres"`,
		"enum Role\n",
		"  ADMIN\n",
		"  id: ShortStr @id @default(auto())",
		"  age: Int?",
		"  tags: LongStr[]",
		"  role: ?Role @default(ADMIN)",
		`  author: ?Author @relation(name: "UserAuthor", field: authorId, references: id)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// блоки разделены пустой строкой
	if !strings.Contains(out, "\n\nenum Role") {
		t.Errorf("declarations must be separated by a blank line:\n%s", out)
	}
}

func TestFormatDeclsJSON(t *testing.T) {
	decls := parseDecls(t, `
enum Role {
	ADMIN
}

model User {
	id: ShortStr @id
	age: Int?
}
`)

	var buf bytes.Buffer
	if err := diagfmt.FormatDeclsJSON(&buf, decls); err != nil {
		t.Fatalf("FormatDeclsJSON failed: %v", err)
	}

	var out []diagfmt.DeclOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(out))
	}
	if out[0].Kind != "enum" || out[0].Values[0] != "ADMIN" {
		t.Fatalf("unexpected enum output: %+v", out[0])
	}
	model := out[1]
	if model.Kind != "model" || model.Name != "User" || len(model.Fields) != 2 {
		t.Fatalf("unexpected model output: %+v", model)
	}
	if model.Fields[0].Attrs[0] != "@id" {
		t.Fatalf("unexpected attrs: %+v", model.Fields[0])
	}
	if model.Fields[1].Arity != "optional" {
		t.Fatalf("unexpected arity: %+v", model.Fields[1])
	}
}
