package sema

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
)

// Build groups the declaration list and runs the build pass: type
// resolution and relation-edge accumulation, finalized into a DataModel.
// The returned model reflects whatever could be resolved; the caller must
// treat it as unusable when the reporter accumulated errors.
func Build(groups *Declarations, reporter diag.Reporter) *DataModel {
	cx := newContext(groups, reporter, NewRelationMap())
	Walk(cx, typeResolver{})
	return &DataModel{
		decls:     groups,
		relations: cx.Relations.Pairs(),
	}
}

// Validate runs the read-only checks — attribute validation and model
// invariants — over an already-built DataModel. It never mutates and
// carries no state between runs: validating the same model twice yields
// the identical diagnostics.
func Validate(dm *DataModel, reporter diag.Reporter) {
	cx := newContext(dm.decls, reporter, nil)
	Walk(cx, attrValidator{}, modelChecker{})
}

// Analyze is the whole semantic pipeline over a flat declaration list:
// grouping, build, validate. Every independently detectable problem lands
// in the bag; the result is binary — a DataModel when the bag holds no
// errors, nil otherwise. A partially-valid model never escapes.
func Analyze(decls []ast.Declaration, bag *diag.Bag) *DataModel {
	reporter := diag.BagReporter{Bag: bag}

	groups := Group(decls, reporter)
	if bag.HasErrors() {
		// дублирующиеся имена отравляют все последующие проверки
		return nil
	}

	dm := Build(groups, reporter)
	Validate(dm, reporter)

	if bag.HasErrors() {
		return nil
	}
	return dm
}
