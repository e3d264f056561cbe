// Package ledger persists prepare-run history in SQLite.
//
// Each finished run becomes one immutable row; the ledger is purely
// informational and a write failure must never fail a prepare that already
// produced a manifest. Schema changes bump the version in schema.go; users
// clear the database to adopt the new schema.
package ledger
