// Package models defines the admin resources exchanged with the marketplace
// backend and the envelope every data source answers with.
//
// Each resource has three shapes: the record itself, an input used on create
// and a patch whose pointer fields mark what an update changes. Records embed
// Timestamps and implement Entity, which lets the local fallback collections
// search, filter and sort them without knowing the concrete type.
package models
