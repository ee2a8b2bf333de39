// Package config provides configuration loading, merging, and validation
// facilities for the go-scim-owner binaries.
//
// Configuration is assembled from multiple sources; a field takes the value
// of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetStubConfig] for the local fake directory.
package config
