package sema

import (
	"testing"

	"sdml/internal/diag"
)

func TestGroupPartitionsByKind(t *testing.T) {
	decls := parseSource(t, `
config db {
	provider = "postgres"
}

enum Role {
	ADMIN
}

model User {
	id: ShortStr @id
}
`)
	bag := diag.NewBag(8)
	groups := Group(decls, diag.BagReporter{Bag: bag})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(groups.Configs) != 1 || len(groups.Enums) != 1 || len(groups.Models) != 1 {
		t.Fatalf("unexpected grouping: %d configs, %d enums, %d models",
			len(groups.Configs), len(groups.Enums), len(groups.Models))
	}
}

func TestGroupReportsEveryRedefinition(t *testing.T) {
	// имя Role объявлено трижды в разных пространствах имён:
	// ровно k-1 = 2 ошибки, первое объявление не считается
	decls := parseSource(t, `
enum Role {
	ADMIN
}

model Role {
	id: ShortStr @id
}

config Role {
	provider = "postgres"
}
`)
	bag := diag.NewBag(8)
	Group(decls, diag.BagReporter{Bag: bag})

	if got := countCode(bag, diag.SemaTypeDuplicateDefinition); got != 2 {
		t.Fatalf("expected exactly 2 duplicate errors, got %d: %v", got, bag.Items())
	}
}

func TestGroupLastDefinitionWins(t *testing.T) {
	decls := parseSource(t, `
model User {
	id: ShortStr @id
}

model User {
	id: ShortStr @id
	email: ShortStr @unique
}
`)
	bag := diag.NewBag(8)
	groups := Group(decls, diag.BagReporter{Bag: bag})

	if got := countCode(bag, diag.SemaTypeDuplicateDefinition); got != 1 {
		t.Fatalf("expected 1 duplicate error, got %d", got)
	}
	user := groups.Models["User"]
	if user == nil || len(user.Fields) != 2 {
		t.Fatalf("expected the later definition to win")
	}
}
