package sema

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
)

// modelChecker is the validate-pass visitor enforcing per-model invariants:
// exactly one identifier field, and the model must not be vacuous.
type modelChecker struct {
	NopVisitor
}

func (modelChecker) ExitModel(cx *Context, model *ast.ModelDecl) {
	var idFields []*ast.FieldDecl
	for _, field := range model.Fields {
		if field.HasAttr(ast.AttrID) {
			idFields = append(idFields, field)
		}
	}

	if len(idFields) == 0 {
		cx.Report(diag.SemaModelIdFieldMissing, model.Name.Span,
			"model %q has no @id field", model.Name.Text)
	}
	// каждый идентификатор сверх первого — отдельная ошибка
	if len(idFields) > 1 {
		for _, extra := range idFields[1:] {
			cx.ReportWithNote(diag.SemaModelIdFieldDuplicate, extra.Name.Span,
				idFields[0].Name.Span, "first @id field declared here",
				"model %q declares more than one @id field", model.Name.Text)
		}
	}

	if modelIsEmpty(model) {
		cx.Report(diag.SemaModelEmpty, model.Name.Span,
			"model %q declares no usable content", model.Name.Text)
	}
}

// modelIsEmpty reports whether the model carries nothing beyond
// auto-generated identifiers and relation-derived scalar fields.
func modelIsEmpty(model *ast.ModelDecl) bool {
	relationScalars := make(map[string]bool)
	for _, field := range model.Fields {
		if field.Type.Type.Kind() != ast.TypeRelation {
			continue
		}
		edge := field.Type.Type.Relation()
		if edge.ScalarField.Text != "" {
			relationScalars[edge.ScalarField.Text] = true
		}
	}

	for _, field := range model.Fields {
		if isAutoGeneratedID(field) {
			continue
		}
		if relationScalars[field.Name.Text] {
			continue
		}
		return false
	}
	return true
}

// isAutoGeneratedID reports whether the field is an identifier defaulted
// via a generation-function marker, e.g. @id @default(auto()).
func isAutoGeneratedID(field *ast.FieldDecl) bool {
	if !field.HasAttr(ast.AttrID) {
		return false
	}
	def := field.Attr(ast.AttrDefault)
	return def != nil && def.Arg != nil && def.Arg.Kind == ast.ArgFunc
}
