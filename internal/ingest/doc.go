// Package ingest implements the prepare pipeline: glob the input folder,
// parse chunk files into manifest records on a worker pool, then reduce the
// per-file results into a single JSONL manifest written sequentially in
// lexical file order.
//
// Failure handling is deliberately lenient at line and file granularity.
// A malformed line logs a warning and is skipped; an unreadable file logs an
// error and counts as failed. Neither aborts the batch. Only writer and lock
// failures end a run, and the atomic writer guarantees an aborted run leaves
// no partial manifest behind.
package ingest
