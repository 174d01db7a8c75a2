// Package server runs the vault server's transports: the REST API over HTTP
// and, when configured, the gRPC health service. It owns startup, signal
// handling and graceful shutdown.
package server
