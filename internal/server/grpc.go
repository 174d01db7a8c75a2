package server

import (
	"fmt"
	"net"

	"github.com/klaus-0-0/vault/internal/config"
	vaultgrpc "github.com/klaus-0-0/vault/internal/handler/grpc"
	"github.com/klaus-0-0/vault/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *vaultgrpc.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *vaultgrpc.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer listens on the configured address, marks the health service
// SERVING and blocks in Serve.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen: %w", err)
	}

	g.handler.SetServing(true)

	if err = g.server.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
