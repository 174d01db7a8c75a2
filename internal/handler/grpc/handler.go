package grpc

import (
	"github.com/klaus-0-0/vault/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// VaultServiceName is the service name reported by the health endpoint next
// to the overall ("") status.
const VaultServiceName = "vault.v1.Vault"

// Handler is the root gRPC transport handler. It exposes the standard
// grpc.health.v1 service; the vault API itself is served over HTTP.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service starts NOT_SERVING.
// Call [Handler.SetServing] once the listeners are up.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// SetServing switches the reported status to SERVING or NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.setStatus(status)
	h.logger.Info().Str("status", status.String()).Msg("gRPC health status changed")
}

// Shutdown reports NOT_SERVING permanently; later SetServing calls are
// ignored by the health server.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(VaultServiceName, status)
}
