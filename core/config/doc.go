// Package config provides configuration management for the crafting
// calculator.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Catalog: store backend selection, catalog locations, cache TTL
//   - Database: connection details for the database-backed store
//   - Storage: S3/MinIO credentials and bucket for the object-backed store
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Store)
package config
