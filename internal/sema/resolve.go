package sema

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
)

// typeResolver is the build-pass visitor that gives every Unknown field type
// its meaning: a relation when the spelling names a model, an enum when it
// names an enum, otherwise an error. The resolution mutates the field's
// type cell in place — exactly once, never during validate.
type typeResolver struct {
	NopVisitor
}

func (typeResolver) EnterField(cx *Context, field *ast.FieldDecl) {
	typ := field.Type.Type
	if typ.Kind() != ast.TypeUnknown {
		return
	}
	name := typ.Name()

	if target, ok := cx.Decls.Models[name.Text]; ok {
		edge, ok := buildRelationEdge(cx, field, target)
		if !ok {
			// ошибка уже зарепорчена; ячейка остаётся Unknown
			return
		}
		typ.ResolveRelation(edge)
		cx.Relations.Register(cx, edge)
		return
	}

	if _, ok := cx.Decls.Enums[name.Text]; ok {
		typ.ResolveEnum(name)
		return
	}

	cx.Report(diag.SemaTypeUndefined, name.Span,
		"type %q of field %q on model %q is neither an enum nor a model",
		name.Text, field.Name.Text, cx.Model().Name.Text)
}

// ExitDeclarations finalizes the relation map once every model has been
// walked: only then is it known whether both sides of a relation exist.
func (typeResolver) ExitDeclarations(cx *Context) {
	cx.Relations.Finalize(cx)
}
