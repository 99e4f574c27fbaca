package sema

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
)

// RelationPair is one fully validated relationship: its referencing edge
// (the side owning the foreign key, or the lone self-1-to-1 edge) and the
// optional back-reference side.
type RelationPair struct {
	Name        string
	Referencing *ast.RelationEdge
	Back        *ast.RelationEdge // nil when the relation has no back-reference field
}

// relationSlots holds the at-most-two edges discovered for one relation
// name anywhere across all models.
type relationSlots struct {
	referencing *ast.RelationEdge
	back        *ast.RelationEdge
}

// RelationMap accumulates relation edges incrementally as fields are
// visited, keyed by the relation's logical name. It is validated once, by
// Finalize, after the whole model set has been walked.
type RelationMap struct {
	order []string // имена в порядке первого появления
	slots map[string]*relationSlots
	pairs map[string]*RelationPair
}

// NewRelationMap returns an empty relation map.
func NewRelationMap() *RelationMap {
	return &RelationMap{
		slots: make(map[string]*relationSlots),
	}
}

// Register files a classified edge under its relation name. The edge fills
// whichever slot its variant selects (referencing vs back-reference); a
// second edge into an already-filled slot is a duplicate declaration.
func (rm *RelationMap) Register(cx *Context, edge *ast.RelationEdge) {
	slot, ok := rm.slots[edge.RelationName]
	if !ok {
		slot = &relationSlots{}
		rm.slots[edge.RelationName] = slot
		rm.order = append(rm.order, edge.RelationName)
	}

	if edge.Referencing() {
		if slot.referencing != nil {
			cx.ReportWithNote(diag.SemaRelationDuplicate, edge.Field.Span,
				slot.referencing.Field.Span, "already declared here",
				"relation %q declares its referencing side more than once", edge.RelationName)
			return
		}
		slot.referencing = edge
		return
	}

	if slot.back != nil {
		cx.ReportWithNote(diag.SemaRelationDuplicate, edge.Field.Span,
			slot.back.Field.Span, "already declared here",
			"relation %q declares its back-reference side more than once", edge.RelationName)
		return
	}
	slot.back = edge
}

// Finalize validates every accumulated relation name into a RelationPair,
// in first-appearance order. A lone self-1-to-1 edge is valid as-is;
// otherwise exactly one referencing edge must be present.
func (rm *RelationMap) Finalize(cx *Context) {
	rm.pairs = make(map[string]*RelationPair, len(rm.order))

	for _, name := range rm.order {
		slot := rm.slots[name]

		if slot.referencing == nil {
			// только back-reference: вторая сторона так и не объявилась
			cx.Report(diag.SemaRelationPartial, slot.back.Field.Span,
				"relation %q is declared on only one of its two sides", name)
			continue
		}

		if slot.referencing.Kind == ast.EdgeSelfOneToOne && slot.back != nil {
			// self-1-to-1 полностью описывается одним ребром; парная
			// сторона противоречит его классификации
			cx.ReportWithNote(diag.SemaRelationInvalid, slot.back.Field.Span,
				slot.referencing.Field.Span, "self relation declared here",
				"relation %q pairs a back-reference with a self relation", name)
			continue
		}

		rm.pairs[name] = &RelationPair{
			Name:        name,
			Referencing: slot.referencing,
			Back:        slot.back,
		}
	}
}

// Pairs returns the finalized relation set. Valid only after Finalize.
func (rm *RelationMap) Pairs() map[string]*RelationPair {
	if rm.pairs == nil {
		panic("sema: relation map read before finalize")
	}
	return rm.pairs
}
