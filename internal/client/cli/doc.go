// Package cli provides the interactive marketplace admin command-line client.
//
// It wires configuration, the token chain, the resource facades with their
// local fallback stores, and an interactive REPL. A background watcher probes
// the backend and shows (online) or (offline) in the prompt; results served
// from local data are marked "(offline data)".
//
// Key features:
//   - list / get / create / update / delete on every admin resource
//   - moderation actions: activate, toggle, report-status, store-status,
//     approve, reject
//   - report export to a directory, S3 bucket or upload URL
//   - dashboard and per-resource failover status
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
