// Package bill implements the recipe resolution and aggregation feature.
//
// It turns a user's bill of materials (crafted items with quantities)
// into the consolidated list of raw components required to craft them.
//
// # Components
//
//   - Resolver: recursively expands one (identifier, quantity) pair into
//     raw leaf contributions, with a path-scoped cycle guard and a depth
//     cap. Cycles and unknown identifiers degrade the output instead of
//     failing it.
//   - Consolidate: deduplicates leaf contributions by id, sums their
//     quantities and orders the result by name for stable output.
//   - Processor: the single entry point called whenever the user's
//     selection changes; resolves every bill line and consolidates.
//   - Service / Handler: expose bill processing over HTTP.
//
// # HTTP Endpoints
//
//   - POST /bill/resolve : Resolve a bill into consolidated raw components.
package bill
