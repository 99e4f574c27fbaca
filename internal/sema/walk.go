package sema

// Walk drives the shared depth-first traversal: declarations → each config →
// each enum → each model → each field → each attribute, in name-sorted order
// so diagnostics and build output are deterministic. All passes run inside
// one walk via the visitor chain.
func Walk(cx *Context, passes ...Visitor) {
	vs := chain(passes)

	vs.EnterDeclarations(cx)

	for _, name := range cx.Decls.ConfigNames() {
		vs.VisitConfig(cx, cx.Decls.Configs[name])
	}
	for _, name := range cx.Decls.EnumNames() {
		vs.VisitEnum(cx, cx.Decls.Enums[name])
	}
	for _, name := range cx.Decls.ModelNames() {
		model := cx.Decls.Models[name]

		cx.pushModel(model)
		vs.EnterModel(cx, model)

		for _, field := range model.Fields {
			cx.pushField(field)
			vs.EnterField(cx, field)

			for _, attr := range field.Attrs {
				cx.pushAttr(attr)
				vs.VisitAttribute(cx, attr)
				cx.popAttr()
			}

			vs.ExitField(cx, field)
			cx.popField()
		}

		vs.ExitModel(cx, model)
		cx.popModel()
	}

	vs.ExitDeclarations(cx)
}
