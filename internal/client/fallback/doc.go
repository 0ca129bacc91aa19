// Package fallback implements the local data stores that stand in for the
// admin backend when it cannot be reached.
//
// # Overview
//
// Every resource has a store (Categories, FAQs, Reports, BankAccounts,
// Stores, Payments) built on a generic Collection. A collection is seeded
// lazily on first use from a fixed snapshot and afterwards mutated in place;
// it lives as long as the process unless Reset is called. List mimics the
// backend: case-insensitive search over the record's text fields, exact-match
// filters, optional sorting, stats over the whole collection and pagination
// over the filtered slice.
//
// # Results
//
// Store methods answer with the same models.Envelope the remote API uses.
// Business-rule rejections and unknown IDs are reported as envelopes with
// Success=false and an error message; the returned Go error is always nil so
// the stores satisfy the same data-source interface as the HTTP client.
//
// # Mirroring
//
// A collection may be mirrored into durable storage (see Mirror). The mirror
// is consulted once when the collection is first used and rewritten after
// every successful mutation. Mirror failures are logged and never fail the
// operation that triggered them.
package fallback
