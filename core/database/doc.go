// Package database handles database connections for the DB-backed
// catalog store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures MySQL or SQLite connections based on the application's
// configuration. SQLite (including :memory:) keeps tests hermetic; MySQL
// is the expected production driver.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
