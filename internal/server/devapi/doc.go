// Package devapi is a development stand-in for the marketplace admin
// backend. It serves the admin REST contract with gin over the same local
// stores the client falls back to, so the client can be exercised end to
// end without the real backend.
package devapi
