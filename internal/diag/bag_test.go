package diag

import (
	"testing"

	"sdml/internal/source"
)

func errAt(code Code, file source.FileID, start, end uint32) Diagnostic {
	return NewError(code, source.Span{File: file, Start: start, End: end}, "boom")
}

func TestBagRespectsCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(errAt(SemaTypeUndefined, 0, 0, 1)) {
		t.Fatal("first Add must succeed")
	}
	if !bag.Add(errAt(SemaTypeUndefined, 0, 1, 2)) {
		t.Fatal("second Add must succeed")
	}
	// лимит достигнут — дальше молча отбрасываем
	if bag.Add(errAt(SemaTypeUndefined, 0, 2, 3)) {
		t.Fatal("Add past the cap must return false")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag must report nothing")
	}

	bag.Add(New(SevWarning, SemaInfo, source.Span{}, "just a warning"))
	if bag.HasErrors() {
		t.Fatal("warnings are not errors")
	}
	if !bag.HasWarnings() {
		t.Fatal("expected HasWarnings")
	}

	bag.Add(errAt(SemaModelIdFieldMissing, 0, 0, 1))
	if !bag.HasErrors() || bag.ErrorCount() != 1 {
		t.Fatalf("expected exactly 1 error, got %d", bag.ErrorCount())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(errAt(SemaTypeUndefined, 0, 0, 1))

	b := NewBag(2)
	b.Add(errAt(SemaModelIdFieldMissing, 1, 0, 1))
	b.Add(errAt(SemaModelEmpty, 1, 2, 3))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 diagnostics after merge, got %d", a.Len())
	}
	// после merge лимит вмещает всё, что уже лежит внутри
	if int(a.Cap()) < a.Len() {
		t.Fatalf("cap %d must cover %d items", a.Cap(), a.Len())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(8)
	bag.Add(errAt(SemaModelIdFieldMissing, 1, 0, 1))
	bag.Add(errAt(SemaTypeUndefined, 0, 10, 12))
	bag.Add(errAt(SemaModelEmpty, 0, 2, 4))
	// одинаковый span: предупреждение должно идти после ошибки
	bag.Add(New(SevWarning, SemaInfo, source.Span{File: 0, Start: 2, End: 4}, "w"))

	bag.Sort()
	items := bag.Items()

	wantCodes := []Code{SemaModelEmpty, SemaInfo, SemaTypeUndefined, SemaModelIdFieldMissing}
	for i, want := range wantCodes {
		if items[i].Code != want {
			t.Fatalf("position %d: expected %v, got %v", i, want, items[i].Code)
		}
	}
	if items[0].Severity != SevError || items[1].Severity != SevWarning {
		t.Fatal("error must sort before warning at the same span")
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaAttributeInvalid, "SEM3202"},
		{IOLoadFileError, "IO4000"},
		{UnknownCode, "E0000"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.id {
			t.Errorf("Code(%d).ID() = %q, want %q", c.code, got, c.id)
		}
	}
	// неизвестный код получает заглушечное описание
	if got := Code(3999).Title(); got != "Unknown error" {
		t.Errorf("unexpected title for unmapped code: %q", got)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportError(BagReporter{Bag: bag}, SemaTypeUndefined, source.Span{Start: 1, End: 2}, "ghost").
		WithNote(source.Span{Start: 0, End: 1}, "declared here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected a single diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Fatalf("note lost on the way: %+v", d)
	}
}
