// Package sema gives meaning to the flat declaration list produced by the
// parser: it resolves forward references, infers and validates relations
// between models, validates attribute usage, and produces a fully-typed
// DataModel — or the complete list of semantic errors.
//
// The analysis is organised as independent visitor passes sharing one
// depth-first walk (declarations → config → enum → model → field →
// attribute). Two entry modes exist over the same walk shape:
//
//   - build: runs the type resolver and the relation builder, performing the
//     single write-once mutation of each field's Unknown type cell, then
//     finalizes the relation map into the DataModel.
//   - validate: runs read-only checks (attribute validation, model
//     invariants) over an already-built DataModel. Running validate twice
//     yields the identical diagnostics; no state is carried between runs.
//
// Every check reports through diag.Reporter and the traversal continues, so
// a single run surfaces as many problems as possible. The overall result is
// binary: zero errors yields the DataModel, otherwise only the errors are
// returned and no partially-valid model ever escapes.
package sema
