package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sdml/internal/diag"
	"sdml/internal/diagfmt"
	"sdml/internal/lexer"
	"sdml/internal/source"
	"sdml/internal/token"
)

func lexTokens(input string) ([]token.Token, *source.FileSet) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sdml", []byte(input)))
	return lexer.Tokenize(file, diag.NopReporter{}), fs
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := lexTokens("model User {")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty failed: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // model, User, {, eof
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "'model'") || !strings.Contains(lines[0], `"model"`) {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "at 1:7-1:11") {
		t.Errorf("unexpected position on %q", lines[1])
	}
	if !strings.Contains(lines[3], "eof") {
		t.Errorf("expected trailing eof line, got %q", lines[3])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, _ := lexTokens("id: Int")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatalf("FormatTokensJSON failed: %v", err)
	}

	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 4 { // id, :, Int, eof
		t.Fatalf("expected 4 tokens, got %d", len(out))
	}
	if out[0].Kind != "identifier" || out[0].Text != "id" {
		t.Fatalf("unexpected first token: %+v", out[0])
	}
	if out[2].Span.Start != 4 || out[2].Span.End != 7 {
		t.Fatalf("unexpected span for Int: %+v", out[2].Span)
	}
}
