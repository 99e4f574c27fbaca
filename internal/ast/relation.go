package ast

import (
	"sdml/internal/token"
)

// EdgeKind classifies one declaration-site side of a named relationship.
type EdgeKind uint8

const (
	// EdgeOneSide is the back-reference side with no local scalar field.
	EdgeOneSide EdgeKind = iota
	// EdgeOneSideRight is the unique side of a 1-to-1 relation holding the
	// foreign key.
	EdgeOneSideRight
	// EdgeManySide is the many side of a 1-to-many relation, or either side
	// of a many-to-many relation.
	EdgeManySide
	// EdgeSelfOneToOne is a model referencing itself 1-to-1. The only edge
	// kind that fully describes a relationship on its own.
	EdgeSelfOneToOne
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeOneSide:
		return "one-side"
	case EdgeOneSideRight:
		return "one-side-right"
	case EdgeManySide:
		return "many-side"
	case EdgeSelfOneToOne:
		return "self-one-to-one"
	}
	return "unknown"
}

// RelationEdge describes one side of a named relationship as declared on a
// single field. ScalarField and ReferencedField are zero tokens for the
// EdgeOneSide variant, which carries no storage of its own.
type RelationEdge struct {
	Kind EdgeKind

	// RelationName is the logical name shared by both sides (the `name`
	// argument of @relation); it is the join key in the relation map.
	RelationName string

	// Model and Field identify the declaration site of this edge.
	Model token.Token
	Field token.Token

	// ScalarField names the foreign-key-holding field on Model.
	ScalarField token.Token
	// ReferencedModel names the model on the other side.
	ReferencedModel token.Token
	// ReferencedField names the @id/@unique field on ReferencedModel that
	// the scalar field points at.
	ReferencedField token.Token
}

// Referencing reports whether the edge is the side that owns the foreign
// key. Exactly one referencing edge must exist per relation, except for the
// lone self-1-to-1 edge which is referencing by construction.
func (e *RelationEdge) Referencing() bool {
	return e.Kind != EdgeOneSide
}
