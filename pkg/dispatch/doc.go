// Package dispatch owns the request dispatch and coalescing subsystem for a
// single Hue bridge connection.
//
// A Connection runs one background worker. Producers hand it immutable
// Requests through Submit; the worker delivers them over HTTPS one at a
// time. Because only one request can be in flight on a constrained device,
// bursts of submissions collapse into a single pending slot: while a request
// is being delivered, at most one later submission is retained, and each new
// submission replaces it. Intermediate requests are dropped without
// notification. Submission is therefore fire-and-forget: transport and
// response failures are retried or logged, never surfaced to the submitter.
package dispatch
