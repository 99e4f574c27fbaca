package sema

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/token"
)

// mirrorState describes the field on the other model that names the same
// relation, as far as classification cares.
type mirrorState uint8

const (
	mirrorAbsent mirrorState = iota
	mirrorSingular
	mirrorArray
)

// classifyEdge is the relation topology decision table. It is a pure
// function of the four facts that matter: whether the local scalar field is
// unique, whether the mirror field exists and is an array, and whether the
// model references itself. Either an edge kind or an error code comes back.
func classifyEdge(scalarUnique bool, mirror mirrorState, self bool) (ast.EdgeKind, diag.Code, bool) {
	switch {
	case scalarUnique && mirror == mirrorAbsent && self:
		// модель ссылается сама на себя 1-к-1: единственный случай,
		// которому достаточно одного ребра
		return ast.EdgeSelfOneToOne, 0, true
	case scalarUnique && mirror == mirrorSingular:
		return ast.EdgeOneSideRight, 0, true
	case scalarUnique && mirror == mirrorArray:
		// уникальный внешний ключ не может питать многозначную
		// обратную сторону
		return 0, diag.SemaRelationScalarFieldIsUnique, false
	case !scalarUnique && mirror == mirrorSingular:
		// сингулярная обратная сторона требует уникальности
		return 0, diag.SemaRelationScalarFieldNotUnique, false
	case !scalarUnique && mirror == mirrorArray:
		return ast.EdgeManySide, 0, true
	case !scalarUnique && mirror == mirrorAbsent && self:
		// self-связи всегда должны быть 1-к-1
		return 0, diag.SemaRelationScalarFieldNotUnique, false
	default:
		return 0, diag.SemaRelationInvalid, false
	}
}

// buildRelationEdge validates the @relation attribute of a relation-shaped
// field and classifies the edge it declares. Reports and returns false on
// any failure; the field's type cell then stays Unknown.
func buildRelationEdge(cx *Context, field *ast.FieldDecl, target *ast.ModelDecl) (*ast.RelationEdge, bool) {
	model := cx.Model()

	attr, ok := relationAttribute(cx, field)
	if !ok {
		return nil, false
	}

	arg, ok := relationArgs(cx, field, attr)
	if !ok {
		return nil, false
	}

	nameArg := arg.NamedArg("name")
	if nameArg.Value.Kind != token.StringLit {
		cx.Report(diag.SemaRelationInvalidAttributeArg, nameArg.Value.Span,
			"relation name on field %q must be a string literal", field.Name.Text)
		return nil, false
	}
	relName := nameArg.Value.Text

	fieldArg := arg.NamedArg("field")
	referencesArg := arg.NamedArg("references")

	// обратная сторона без собственного хранилища
	if fieldArg == nil {
		return &ast.RelationEdge{
			Kind:            ast.EdgeOneSide,
			RelationName:    relName,
			Model:           model.Name,
			Field:           field.Name,
			ReferencedModel: target.Name,
		}, true
	}

	scalar, scalarOK := resolveScalarField(cx, fieldArg)
	ref, refOK := resolveReferencedField(cx, target, referencesArg)
	if !scalarOK || !refOK {
		return nil, false
	}

	if scalar.Type.Type.Primitive() != ref.Type.Type.Primitive() {
		cx.ReportWithNote(diag.SemaRelationScalarAndReferencedFieldsMismatch, fieldArg.Value.Span,
			ref.Name.Span, "referenced field declared here",
			"relation %q: scalar field %q is %s but referenced field %q is %s",
			relName, scalar.Name.Text, scalar.Type.Type.Primitive(),
			ref.Name.Text, ref.Type.Type.Primitive())
		return nil, false
	}

	mirror := findMirror(target, field, relName)
	kind, code, ok := classifyEdge(scalar.IsUnique(), mirror, target == model)
	if !ok {
		switch code {
		case diag.SemaRelationScalarFieldIsUnique:
			cx.Report(code, field.Span,
				"relation %q: scalar field %q must not be unique because the opposite side is many-valued",
				relName, scalar.Name.Text)
		case diag.SemaRelationScalarFieldNotUnique:
			cx.Report(code, field.Span,
				"relation %q: scalar field %q must be unique",
				relName, scalar.Name.Text)
		default:
			cx.Report(code, field.Span,
				"relation %q on field %q of model %q cannot be classified",
				relName, field.Name.Text, model.Name.Text)
		}
		return nil, false
	}

	return &ast.RelationEdge{
		Kind:            kind,
		RelationName:    relName,
		Model:           model.Name,
		Field:           field.Name,
		ScalarField:     scalar.Name,
		ReferencedModel: target.Name,
		ReferencedField: ref.Name,
	}, true
}

// relationAttribute enforces precondition 1: the field carries exactly one
// relation attribute and nothing else.
func relationAttribute(cx *Context, field *ast.FieldDecl) (*ast.Attribute, bool) {
	var relation *ast.Attribute
	for _, attr := range field.Attrs {
		if attr.IsRelation() {
			if relation != nil {
				cx.Report(diag.SemaRelationInvalidAttribute, attr.Span,
					"field %q carries more than one @relation attribute", field.Name.Text)
				return nil, false
			}
			relation = attr
			continue
		}
		cx.Report(diag.SemaRelationInvalidAttribute, attr.Span,
			"attribute @%s cannot be applied to relation field %q", attr.Name.Text, field.Name.Text)
		return nil, false
	}
	if relation == nil {
		cx.Report(diag.SemaRelationAttributeMissing, field.Span,
			"relation field %q lacks an @relation attribute", field.Name.Text)
		return nil, false
	}
	return relation, true
}

// relationArgs enforces precondition 2: a named-argument list whose names
// form exactly {name} or {name, field, references}.
func relationArgs(cx *Context, field *ast.FieldDecl, attr *ast.Attribute) (*ast.AttrArg, bool) {
	if attr.Arg == nil || attr.Arg.Kind != ast.ArgNamed {
		cx.Report(diag.SemaRelationInvalidAttributeArg, attr.Span,
			"@relation on field %q requires named arguments", field.Name.Text)
		return nil, false
	}
	if !namesMatch(attr.Arg, "name") && !namesMatch(attr.Arg, "name", "field", "references") {
		cx.Report(diag.SemaRelationInvalidAttributeArg, attr.Arg.Span,
			"@relation on field %q accepts either (name) or (name, field, references)", field.Name.Text)
		return nil, false
	}
	return attr.Arg, true
}

// namesMatch reports whether the named-argument list carries exactly the
// given names, in any order, without repetition.
func namesMatch(arg *ast.AttrArg, names ...string) bool {
	if len(arg.Named) != len(names) {
		return false
	}
	for _, want := range names {
		found := false
		for _, na := range arg.Named {
			if na.Name.Text == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// resolveScalarField enforces precondition 4: `field` names an existing
// primitive-typed field on the same model.
func resolveScalarField(cx *Context, fieldArg *ast.NamedArg) (*ast.FieldDecl, bool) {
	model := cx.Model()
	scalar := model.Field(fieldArg.Value.Text)
	if scalar == nil {
		cx.Report(diag.SemaRelationScalarFieldNotFound, fieldArg.Value.Span,
			"relation scalar field %q does not exist on model %q",
			fieldArg.Value.Text, model.Name.Text)
		return nil, false
	}
	if !isPrimitiveScalar(scalar) {
		cx.Report(diag.SemaRelationScalarFieldIsNotPrimitive, fieldArg.Value.Span,
			"relation scalar field %q on model %q must be primitive",
			scalar.Name.Text, model.Name.Text)
		return nil, false
	}
	return scalar, true
}

// resolveReferencedField enforces precondition 5: `references` names an
// existing primitive field on the referenced model carrying @id or @unique.
func resolveReferencedField(cx *Context, target *ast.ModelDecl, referencesArg *ast.NamedArg) (*ast.FieldDecl, bool) {
	ref := target.Field(referencesArg.Value.Text)
	if ref == nil {
		cx.Report(diag.SemaRelationReferencedFieldNotFound, referencesArg.Value.Span,
			"referenced field %q does not exist on model %q",
			referencesArg.Value.Text, target.Name.Text)
		return nil, false
	}
	if !isPrimitiveScalar(ref) {
		cx.Report(diag.SemaRelationReferencedFieldNotScalar, referencesArg.Value.Span,
			"referenced field %q on model %q must be a primitive scalar",
			ref.Name.Text, target.Name.Text)
		return nil, false
	}
	if !ref.IsUnique() {
		cx.Report(diag.SemaRelationReferencedFieldNotUnique, referencesArg.Value.Span,
			"referenced field %q on model %q must be @id or @unique",
			ref.Name.Text, target.Name.Text)
		return nil, false
	}
	return ref, true
}

func isPrimitiveScalar(field *ast.FieldDecl) bool {
	return field.Type.Type.Kind() == ast.TypePrimitive && field.Type.Arity != ast.Array
}

// findMirror looks on the referenced model for the field (other than the
// one being classified) whose own @relation attribute names the same
// relation.
func findMirror(target *ast.ModelDecl, current *ast.FieldDecl, relName string) mirrorState {
	for _, f := range target.Fields {
		if f == current {
			continue
		}
		attr := f.Attr(ast.AttrRelation)
		if attr == nil || attr.Arg == nil || attr.Arg.Kind != ast.ArgNamed {
			continue
		}
		nameArg := attr.Arg.NamedArg("name")
		if nameArg == nil || nameArg.Value.Text != relName {
			continue
		}
		if f.Type.Arity == ast.Array {
			return mirrorArray
		}
		return mirrorSingular
	}
	return mirrorAbsent
}
