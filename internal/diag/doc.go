// Package diag defines the core diagnostic model shared by the checker
// pipeline.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the booleaness detectors and the loaders that
//     feed them.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits that the driver or CLI can
//     materialise and optionally apply.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt,
// whereas orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – enum (Info, Convention, Warning, Error) defined in severity.go.
//   - Confidence – two-level enum (High, Inference). High findings follow
//     from tree structure alone; Inference findings also depended on type
//     information resolved for an operand.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing the suggested rewrite.
//
// # Emitting diagnostics
//
// Detectors should use a diag.Reporter to decouple emission from storage.
// diag.BagReporter aggregates diagnostics into a Bag, which supports sorting,
// deduplication and capping; diag.DedupReporter drops exact repeats before
// they reach storage.
package diag
