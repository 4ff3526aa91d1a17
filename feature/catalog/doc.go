// Package catalog implements the catalog editing and browsing feature.
//
// It wraps the core catalog gateway and recipe cache behind HTTP
// endpoints for the (external) catalog-editing surface. All mutations go
// through the gateway, which validates, persists and invalidates the
// cache before responding; reads go through the cache.
//
// # HTTP Endpoints
//
//   - GET    /catalog                : Full catalog in the interchange shape.
//   - GET    /catalog/meta          : Artisan and gathering skill lists.
//   - GET    /catalog/:identifier   : One item by id or name. A 404 carries
//     a "suggestion" field when a near-miss name exists.
//   - POST   /catalog/:kind         : Add an item to one slice.
//   - PUT    /catalog/:kind/:id     : Merge partial updates into an item.
//   - DELETE /catalog/:kind/:id     : Remove an item.
package catalog
