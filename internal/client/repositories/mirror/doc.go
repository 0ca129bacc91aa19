// Package mirror keeps durable copies of fallback collections in SQLite or
// PostgreSQL so that records created while the backend was unreachable
// survive a restart. A postgres:// DSN selects PostgreSQL through pgx; any
// other DSN is opened with the pure-Go SQLite driver.
//
// A snapshot is stored per resource: one row per record, in collection
// order, plus the next ID to assign. Saving replaces the previous snapshot
// in a single transaction.
package mirror
