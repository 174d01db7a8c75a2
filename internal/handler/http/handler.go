package http

import (
	"time"

	"github.com/klaus-0-0/vault/internal/config"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/service"
	"golang.org/x/time/rate"
)

// authLimiterTTL is how long an idle client IP keeps its rate-limit bucket.
const authLimiterTTL = 10 * time.Minute

type Handler struct {
	services *service.Services

	authLimiter    *ipLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authLimiter:    newIPLimiter(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst, authLimiterTTL),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
