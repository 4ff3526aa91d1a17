// Package utils provides loose-typed conversion helpers.
//
// Partial update payloads arrive as map[string]any with JSON-typed
// values (float64 numbers, strings); ToInt normalizes them into the
// concrete type the catalog gateway expects.
package utils
