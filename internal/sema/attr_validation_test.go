package sema

import (
	"testing"

	"sdml/internal/diag"
)

func TestAttributeUnknown(t *testing.T) {
	_, bag := analyzeSource(t, `
model User {
	id: ShortStr @id
	email: ShortStr @bogus
}
`)
	if got := countCode(bag, diag.SemaAttributeUnknown); got != 1 {
		t.Fatalf("expected 1 unknown-attribute error, got %d: %v", got, bag.Items())
	}
}

func TestAttributeIncompatible(t *testing.T) {
	// @id и @unique не сочетаются: идентификатор уникален по определению
	_, bag := analyzeSource(t, `
model User {
	id: ShortStr @id @unique
	email: ShortStr
}
`)
	if got := countCode(bag, diag.SemaAttributeIncompatible); got != 1 {
		t.Fatalf("expected 1 incompatibility error, got %d: %v", got, bag.Items())
	}
}

func TestAttributeShapeChecks(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "id requires ShortStr",
			src: `
model User {
	id: Int @id
	email: ShortStr
}
`,
		},
		{
			name: "id rejects optional fields",
			src: `
model User {
	id: ShortStr? @id
	email: ShortStr
}
`,
		},
		{
			name: "unique rejects optional fields",
			src: `
model User {
	id: ShortStr @id
	email: ShortStr? @unique
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := analyzeSource(t, tt.src)
			if got := countCode(bag, diag.SemaAttributeInvalid); got != 1 {
				t.Fatalf("expected 1 shape error, got %d: %v", got, bag.Items())
			}
		})
	}
}

func TestDefaultEnumValueMustExist(t *testing.T) {
	_, bag := analyzeSource(t, `
enum Role {
	ADMIN
	USER
}

model User {
	id: ShortStr @id
	role: Role @default(BOGUS)
}
`)
	if got := countCode(bag, diag.SemaEnumValueUndefined); got != 1 {
		t.Fatalf("expected 1 undefined-enum-value error, got %d: %v", got, bag.Items())
	}
}

func TestDefaultBooleanArgument(t *testing.T) {
	dm, bag := analyzeSource(t, `
model User {
	id: ShortStr @id
	active: Boolean @default(true)
}
`)
	if bag.HasErrors() {
		t.Fatalf("true is a valid Boolean default, got %v", codesOf(bag))
	}
	if dm == nil {
		t.Fatalf("expected a data model")
	}

	_, bag = analyzeSource(t, `
model User {
	id: ShortStr @id
	active: Boolean @default(yes)
}
`)
	if got := countCode(bag, diag.SemaAttributeArgInvalid); got != 1 {
		t.Fatalf("expected 1 invalid-argument error, got %d: %v", got, bag.Items())
	}
}

func TestAttributeArgumentAllowLists(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unknown generator function",
			src: `
model User {
	id: ShortStr @id @default(nope())
	email: ShortStr
}
`,
		},
		{
			name: "unique takes no function argument",
			src: `
model User {
	id: ShortStr @id
	email: ShortStr @unique(auto())
}
`,
		},
		{
			name: "default takes no named arguments",
			src: `
model User {
	id: ShortStr @id
	email: ShortStr @default(value: "x")
}
`,
		},
		{
			name: "identifier default on a plain string field",
			src: `
model User {
	id: ShortStr @id
	email: ShortStr @default(something)
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := analyzeSource(t, tt.src)
			if got := countCode(bag, diag.SemaAttributeArgInvalid); got != 1 {
				t.Fatalf("expected 1 invalid-argument error, got %d: %v", got, bag.Items())
			}
		})
	}
}
