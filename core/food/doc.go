// Package food analyzes food descriptions, meal photos, and nutrition label
// images through an [ai.Provider], recovering structured results from the
// model's free-form output with the tolerant core/jsonx pipeline.
//
// JSON handling never fails loudly here: a response the pipeline cannot
// recover yields a zero-valued result whose Error field carries a truncated
// diagnostic, so callers always receive a well-formed value.
package food
