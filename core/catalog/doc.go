// Package catalog implements the crafting catalog core: the item model,
// the swappable catalog store contract with its file, object-storage and
// database backends, the lookup index, the TTL read-through recipe cache,
// and the mutation gateway.
//
// # Store
//
// The Store interface is the single load/persist contract. Three backends
// are provided:
//  1. FileStore: a local JSON file in the interchange format.
//  2. ObjectStore: the same JSON document kept in object storage (S3/MinIO).
//  3. DBStore: a GORM-backed table, usable with MySQL or SQLite.
//
// # Cache
//
// The Cache sits between readers and the Store. Entries are held per kind
// plus one combined and one metadata entry, each valid for a TTL window.
// Concurrent misses are coalesced into a single store load. Mutations
// invalidate synchronously, so a read issued after a completed mutation
// never observes pre-mutation data.
//
// # Gateway
//
// The Gateway validates and applies add/update/remove operations. It owns
// all catalog writes; every other component only reads, directly or through
// the cache. Failures are reported as unsuccessful Results, never panics.
//
// # Interchange format
//
// The catalog JSON document uses the top-level keys raw_components,
// intermediate_recipes, crafted_items, artisan_levels and gathering_skills.
// FileStore and ObjectStore preserve this shape exactly.
package catalog
