// Package ingestion reads Garmin/Strava FIT activity exports into tabular
// data.
//
// # Architecture
//
// The package is organized around three components:
//
//  1. Field extraction: ExtractFields normalizes one decoded record message
//     of unknown shape into a flat name->value map.
//  2. Reader: reads one .fit or .fit.gz file through an injected Decoder and
//     applies the derived-column pass (AddDerivedColumns).
//  3. Loader: batch-loads a directory, isolating per-file failures so a
//     single corrupt export never aborts the batch.
//
// # Record shapes
//
// FIT parsing libraries differ in how a decoded record exposes its fields,
// so extraction probes a sequence of capabilities (ValueProvider,
// FieldMapProvider, FieldListProvider, FieldSeqProvider) instead of assuming
// one API. The production FITDecoder adapts github.com/muktihari/fit
// messages to the FieldListProvider shape.
//
// # Data flow
//
//	FIT file → Decoder → record messages → ExtractFields → rows → Table
//	→ AddDerivedColumns → run_id tag → combined Table
//
// # Error handling
//
// Recoverable conditions (bad record, empty file, corrupt file) are absorbed
// and reflected in logs and in LoadResult; they never surface as errors to
// the caller. A missing decoding library makes every read return an empty
// table rather than failing.
package ingestion
