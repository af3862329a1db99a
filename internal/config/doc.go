// Package config provides configuration loading, merging, and validation
// facilities for the sync governor daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every non-zero field):
//  1. Environment variables (a .env file is preloaded when present)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// A field explicitly set to its zero value falls through to the next source.
// The main entry point is [GetStructuredConfig].
package config
