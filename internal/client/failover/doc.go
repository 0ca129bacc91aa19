// Package failover decides, per resource and per call, whether an operation
// is served by the remote backend or by local fallback data.
//
// Every call starts by attempting the remote source. A transport failure
// (client.ErrUnavailable) switches that one call to the local source; the
// resource's State records the switch so callers can show an offline banner.
// Business errors from a reachable backend are returned untouched and the
// local source is never consulted. A call whose context was cancelled is not
// retried locally either. Each call resolves entirely from one source.
//
// Policies alter the first step:
//
//   - PolicyRetry (default): always try remote first.
//   - PolicySticky: after a transport failure, skip remote until a call or a
//     Watch probe succeeds, or Reset is called.
//   - PolicyLocal: never call remote.
package failover
