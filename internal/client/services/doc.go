// Package services contains the resource facades of the admin client.
//
// A facade exposes one function per operation of a resource and hides where
// the answer came from. Every call first asks the remote backend; when the
// backend cannot be reached the same call is served by the local fallback
// store and the result is tagged (Envelope.Fallback, message suffix
// "(offline data)"). Validation and business errors from a reachable backend
// are returned to the caller unchanged.
package services
