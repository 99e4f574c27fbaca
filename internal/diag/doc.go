// Package diag defines the diagnostic model shared by all pipeline phases.
//
//   - Diagnostic is the central record: Severity, a stable numeric Code,
//     a human-oriented Message, the primary source.Span, and optional Notes
//     with secondary spans (e.g. "previously defined here").
//   - Bag is an append-only accumulator with a cap. Semantic analysis never
//     stops at the first error; every independently detectable problem lands
//     in the bag and the overall result stays binary (model or errors).
//   - Reporter decouples producers (lexer, parser, sema) from storage.
//     BagReporter aggregates into a Bag, NopReporter discards.
//
// Rendering lives in internal/diagfmt; this package performs no IO.
package diag
