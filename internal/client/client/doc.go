// Package client talks to the marketplace admin REST backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) with Do for JSON
//     envelope calls, Download for binary exports and Ping for health checks.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the bearer
//     token when one is available, tags every request with an X-Request-ID,
//     retries idempotent reads and classifies failures.
//  3. A generic Resource that maps list/get/create/update/delete and named
//     actions onto /admin/<resource>[/:id][/<verb>].
//
// # Error Handling
//
// Failures are split in two families that callers tell apart with errors.Is
// and errors.As:
//
//   - *TransportError (matches ErrUnavailable): network errors, timeouts,
//     any non-2xx status, unparsable bodies, and reads answered with
//     success=false. The data-access layer answers these from local data.
//   - *APIError: a write answered with a 4xx other than 401 and 403 and a
//     structured message (a 404 for an unknown ID included), or a 2xx write
//     whose envelope says success=false. These reach the caller with the
//     server's message.
//
// 401 and 403 additionally match ErrUnauthorized.
package client
