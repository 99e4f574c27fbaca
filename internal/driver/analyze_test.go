package driver

import (
	"os"
	"path/filepath"
	"testing"

	"sdml/internal/diag"
	"sdml/internal/token"
)

const validSchema = `
model User {
	id: ShortStr @id @default(auto())
	email: ShortStr @unique
}
`

const brokenSchema = `
model User {
	id: ShortStr @id
	ghost: Phantom
}
`

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeSchema(t, "app.sdml", validSchema)

	res, err := Tokenize(path, 100)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if len(res.Tokens) == 0 {
		t.Fatalf("expected tokens")
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("token stream must end with EOF, got %v", last.Kind)
	}
}

func TestParse(t *testing.T) {
	path := writeSchema(t, "app.sdml", validSchema)

	res, err := Parse(path, 100)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if len(res.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(res.Decls))
	}
}

func TestAnalyzeValidSchema(t *testing.T) {
	path := writeSchema(t, "app.sdml", validSchema)

	res, err := Analyze(path, 100)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if res.Model == nil {
		t.Fatalf("expected a data model for a valid schema")
	}
}

func TestAnalyzeBrokenSchema(t *testing.T) {
	res := AnalyzeBytes("app.sdml", []byte(brokenSchema), 100)
	if res.Model != nil {
		t.Fatalf("expected nil model on semantic errors")
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected diagnostics")
	}
}

func TestAnalyzeSkipsSemaOnParseErrors(t *testing.T) {
	res := AnalyzeBytes("app.sdml", []byte("model {"), 100)
	if res.Model != nil {
		t.Fatalf("expected nil model on parse errors")
	}
	for _, d := range res.Bag.Items() {
		if d.Code >= diag.SemaInfo && d.Code < diag.IOLoadFileError {
			t.Fatalf("semantic pass must not run on a broken parse, got %v", d.Code)
		}
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := Analyze(filepath.Join(t.TempDir(), "missing.sdml"), 100)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestAnalyzeSortsDiagnostics(t *testing.T) {
	res := AnalyzeBytes("app.sdml", []byte(`
model User {
	ghost: Phantom
	wraith: Phantom
}
`), 100)
	items := res.Bag.Items()
	if len(items) < 2 {
		t.Fatalf("fixture is expected to produce at least 2 diagnostics, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Primary.Start > items[i].Primary.Start {
			t.Fatalf("diagnostics are not sorted by position: %v", items)
		}
	}
}
