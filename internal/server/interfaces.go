package server

// Server is the lifecycle of the vault server's transports.
type Server interface {
	// RunServer serves until a termination signal arrives, then shuts down.
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}
