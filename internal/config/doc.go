// Package config loads, merges and validates configuration.
//
// Sources, later overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Entry points: [GetServerConfig] for the server, [GetClientConfig] for the
// client.
package config
