// Package config provides configuration loading, merging, and validation.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] for the console client and
// [GetStubConfig] for the development backend.
package config
