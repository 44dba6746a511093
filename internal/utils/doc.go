// Package utils provides shared low-level helpers used throughout the
// pockeat internals: a synchronous JSON POST helper for talking to AI
// provider APIs, string truncation for bounded log and error previews, JSON
// pretty-printing for prompt embedding, and a generic pointer helper.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [TruncateString] for diagnostics previews, [JSONToString] for embedding
// structures in prompts, and [Ptr] for converting values to pointers.
package utils
