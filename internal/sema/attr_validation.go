package sema

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/token"
)

// attrValidator is the validate-pass visitor checking every field attribute
// against the static catalog: co-occurrence, field shape, argument shape.
// Read-only; relation preconditions were already enforced during build.
type attrValidator struct {
	NopVisitor
}

func (attrValidator) EnterField(cx *Context, field *ast.FieldDecl) {
	if len(field.Attrs) == 0 {
		return
	}

	// совместимость проверяется против первого атрибута поля
	firstSpec, firstKnown := ast.LookupAttr(field.Attrs[0].Name.Text)

	for i, attr := range field.Attrs {
		spec, known := ast.LookupAttr(attr.Name.Text)
		if !known {
			cx.Report(diag.SemaAttributeUnknown, attr.Span,
				"unknown attribute @%s on field %q", attr.Name.Text, field.Name.Text)
			continue
		}

		if i > 0 && firstKnown && !firstSpec.CompatibleWith(spec.Name) {
			cx.ReportWithNote(diag.SemaAttributeIncompatible, attr.Span,
				field.Attrs[0].Span, "first attribute declared here",
				"attribute @%s cannot be combined with @%s on field %q",
				spec.Name, firstSpec.Name, field.Name.Text)
		}

		checkShape(cx, field, attr, spec)
		checkArg(cx, field, attr, spec)
	}
}

// checkShape verifies the attribute applies to the field's actual shape.
// Fields whose type cell is still Unknown (an earlier build error) are
// skipped: their shape cannot be judged and the cause is already reported.
func checkShape(cx *Context, field *ast.FieldDecl, attr *ast.Attribute, spec ast.AttrSpec) {
	typ := field.Type.Type
	if typ.Kind() == ast.TypeUnknown {
		return
	}

	reason := ""
	switch {
	case spec.Shape.Has(ast.ShapeScalar) && !field.IsScalar():
		reason = "can only be applied to scalar fields"
	case spec.Shape.Has(ast.ShapeNonScalar) && typ.Kind() != ast.TypeRelation:
		reason = "can only be applied to relation fields"
	case spec.Shape.Has(ast.ShapeShortStr) &&
		(typ.Kind() != ast.TypePrimitive || typ.Primitive() != ast.PrimShortStr):
		reason = "requires a ShortStr field"
	case spec.Shape.Has(ast.ShapeRequired) && field.Type.Arity == ast.Optional:
		reason = "cannot be applied to optional fields"
	}
	if reason != "" {
		cx.Report(diag.SemaAttributeInvalid, attr.Span,
			"attribute @%s on field %q %s", spec.Name, field.Name.Text, reason)
	}
}

// checkArg verifies the argument shape against the descriptor's allow-lists.
func checkArg(cx *Context, field *ast.FieldDecl, attr *ast.Attribute, spec ast.AttrSpec) {
	if attr.Arg == nil {
		return
	}

	switch attr.Arg.Kind {
	case ast.ArgFunc:
		if !spec.AllowsFunc(attr.Arg.Func.Text) {
			cx.Report(diag.SemaAttributeArgInvalid, attr.Arg.Func.Span,
				"attribute @%s does not accept the %s() argument", spec.Name, attr.Arg.Func.Text)
		}

	case ast.ArgIdent:
		if !spec.IdentArgs {
			cx.Report(diag.SemaAttributeArgInvalid, attr.Arg.Ident.Span,
				"attribute @%s does not accept a bare identifier argument", spec.Name)
			return
		}
		checkIdentArg(cx, field, spec, attr.Arg.Ident)

	case ast.ArgNamed:
		if len(spec.NamedSets) == 0 {
			cx.Report(diag.SemaAttributeArgInvalid, attr.Arg.Span,
				"attribute @%s does not accept named arguments", spec.Name)
			return
		}
		for _, na := range attr.Arg.Named {
			if !namedArgAllowed(spec, na.Name.Text) {
				cx.Report(diag.SemaAttributeArgInvalid, na.Name.Span,
					"attribute @%s does not accept the %q argument", spec.Name, na.Name.Text)
			}
		}
	}
}

// checkIdentArg validates a bare identifier argument against the field's
// type: declared enum values for enum fields, true/false for booleans.
func checkIdentArg(cx *Context, field *ast.FieldDecl, spec ast.AttrSpec, ident token.Token) {
	typ := field.Type.Type
	switch typ.Kind() {
	case ast.TypeEnum:
		enum := cx.Decls.Enums[typ.Name().Text]
		if enum == nil {
			// резолвер уже зарепортил бы несуществующий enum
			return
		}
		if !enum.HasValue(ident.Text) {
			cx.ReportWithNote(diag.SemaEnumValueUndefined, ident.Span,
				enum.Name.Span, "enum declared here",
				"value %q is not declared by enum %q", ident.Text, enum.Name.Text)
		}
	case ast.TypePrimitive:
		if typ.Primitive() == ast.PrimBoolean {
			if ident.Kind != token.KwTrue && ident.Kind != token.KwFalse {
				cx.Report(diag.SemaAttributeArgInvalid, ident.Span,
					"attribute @%s on Boolean field %q accepts only true or false",
					spec.Name, field.Name.Text)
			}
			return
		}
		cx.Report(diag.SemaAttributeArgInvalid, ident.Span,
			"attribute @%s on field %q does not accept identifier %q",
			spec.Name, field.Name.Text, ident.Text)
	}
}

func namedArgAllowed(spec ast.AttrSpec, name string) bool {
	for _, set := range spec.NamedSets {
		for _, allowed := range set {
			if allowed == name {
				return true
			}
		}
	}
	return false
}
