// Package jsonx recovers structured data from the free-form text a language
// model returns. Model output carries no formatting guarantees: JSON may be
// wrapped in markdown fences, surrounded by prose, or damaged by single
// quotes, trailing commas, doubled colons, or missing closing brackets.
//
// The package is a pipeline of three composable steps:
//
//   - [Extract] locates the substring of raw output that is plausibly JSON.
//   - [Repair] rewrites near-JSON text to fix common quoting, comma, colon
//     and bracket defects, without parsing it.
//   - [Parse] orchestrates a standard decode, falling back to one repaired
//     decode, and converts unrecoverable failures into a typed [ParseError].
//
// All functions are pure text transformations with no shared state, so
// concurrent use is safe. Extract and Repair never fail; only Parse returns
// an error, and only after both decode attempts are exhausted.
package jsonx
