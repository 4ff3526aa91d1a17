// Package storage provides object storage access for the catalog.
//
// It wraps the MinIO client behind a narrow Client interface so the
// object-backed catalog store and tests can swap implementations. The
// interface covers bucket checks and creation plus object get and put;
// EnsureBucket bootstraps the catalog bucket on startup.
//
// A mock implementation lives in the mocks subpackage for tests.
package storage
