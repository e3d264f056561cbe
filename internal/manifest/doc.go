// Package manifest defines the record schema shared by every command: the
// input chunk shape, the flattened source/target output record, the JSONL
// codec, and the atomic manifest writer.
//
// A record's source and target carry the same freshly generated UUID; Check
// enforces that plus the other structural invariants when re-reading an
// existing manifest.
package manifest
