// Package server holds configuration for the HTTP server layer.
//
// The actual Fiber application is assembled in the start command; this
// package only defines the settings it consumes.
package server
