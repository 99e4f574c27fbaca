package lexer

import (
	"testing"

	"sdml/internal/source"
)

func testCursor(input string) Cursor {
	fs := source.NewFileSet()
	return NewCursor(fs.Get(fs.AddVirtual("test.sdml", []byte(input))))
}

func TestCursorPeekBump(t *testing.T) {
	c := testCursor("ab")
	if c.Peek() != 'a' {
		t.Fatalf("expected 'a', got %q", c.Peek())
	}
	if b := c.Bump(); b != 'a' {
		t.Fatalf("Bump must return the consumed byte, got %q", b)
	}
	if c.Peek() != 'b' {
		t.Fatalf("expected 'b', got %q", c.Peek())
	}
	c.Bump()
	if !c.EOF() {
		t.Fatalf("expected EOF")
	}
	// за концом файла Peek и Bump возвращают 0
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Fatalf("expected zero bytes past EOF")
	}
}

func TestCursorPeek2(t *testing.T) {
	c := testCursor("xy")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Fatalf("unexpected Peek2: %q %q %v", b0, b1, ok)
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2 must fail with a single byte left")
	}
}

func TestCursorSpanFrom(t *testing.T) {
	c := testCursor("hello")
	c.Bump()
	m := c.Mark()
	c.Bump()
	c.Bump()
	span := c.SpanFrom(m)
	if span.Start != 1 || span.End != 3 {
		t.Fatalf("unexpected span: %+v", span)
	}
	if span.File != c.File.ID {
		t.Fatalf("span must carry the cursor's file")
	}
}
