// Package ast defines the syntactic declarations produced by the grammar
// parser and consumed by semantic analysis.
//
// Invariants:
//   - Declarations are built once by the parser and never mutated afterwards,
//     with a single exception: a field's type cell starts as Unknown for any
//     non-primitive spelling and is resolved exactly once by the semantic
//     build pass (Type.ResolveEnum / Type.ResolveRelation). Resolving an
//     already-resolved cell is a pipeline defect and panics.
//   - Tokens compare by payload, never by span (token.Token.Eq).
//   - Attribute applicability lives in the static catalog (attr_catalog.go);
//     the parser accepts any '@ident' attribute and leaves judgement to sema.
package ast
