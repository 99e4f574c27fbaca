package sema

import (
	"testing"

	"sdml/internal/diag"
)

func TestModelIdFieldMissing(t *testing.T) {
	_, bag := analyzeSource(t, `
model User {
	email: ShortStr @unique
	name: ShortStr
}
`)
	if got := countCode(bag, diag.SemaModelIdFieldMissing); got != 1 {
		t.Fatalf("expected 1 missing-id error, got %d: %v", got, bag.Items())
	}
}

func TestModelIdFieldDuplicate(t *testing.T) {
	// три @id: ошибка на каждый сверх первого
	_, bag := analyzeSource(t, `
model User {
	id: ShortStr @id
	key: ShortStr @id
	alt: ShortStr @id
}
`)
	if got := countCode(bag, diag.SemaModelIdFieldDuplicate); got != 2 {
		t.Fatalf("expected 2 duplicate-id errors, got %d: %v", got, bag.Items())
	}
}

func TestModelEmpty(t *testing.T) {
	_, bag := analyzeSource(t, `
model Ghost {
	id: ShortStr @id @default(auto())
}
`)
	if got := countCode(bag, diag.SemaModelEmpty); got != 1 {
		t.Fatalf("expected 1 empty-model error, got %d: %v", got, bag.Items())
	}
}

func TestManualIdIsContent(t *testing.T) {
	// идентификатор без auto() назначается пользователем: модель не пуста
	dm, bag := analyzeSource(t, `
model Ghost {
	id: ShortStr @id
}
`)
	if bag.HasErrors() {
		t.Fatalf("expected clean analysis, got %v", codesOf(bag))
	}
	if dm == nil {
		t.Fatalf("expected a data model")
	}
}

func TestModelWithContentIsNotEmpty(t *testing.T) {
	dm, bag := analyzeSource(t, `
model User {
	id: ShortStr @id @default(auto())
	email: ShortStr @unique
}
`)
	if bag.HasErrors() {
		t.Fatalf("expected clean analysis, got %v", codesOf(bag))
	}
	if dm == nil {
		t.Fatalf("expected a data model")
	}
}
