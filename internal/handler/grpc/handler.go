// Package grpc implements the gRPC transport layer of the application.
//
// The gRPC surface is intentionally small: it serves the standard health
// protocol so orchestrators can probe the process without touching the REST
// API. Domain operations remain HTTP-only.
package grpc

import (
	"context"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check implements the health protocol's unary probe. The process reports
// SERVING as soon as the service container is wired; a missing container
// means startup has not completed.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	st := grpc_health_v1.HealthCheckResponse_SERVING
	if h.services == nil {
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	h.logger.Debug().Str("service", req.GetService()).Str("status", st.String()).Msg("health check")

	return &grpc_health_v1.HealthCheckResponse{Status: st}, nil
}

// Watch implements the health protocol's streaming probe. The status of this
// process does not change while it is running, so a single message is sent
// and the stream is held open until the client goes away.
func (h *Handler) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	st := grpc_health_v1.HealthCheckResponse_SERVING
	if h.services == nil {
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	if err := stream.Send(&grpc_health_v1.HealthCheckResponse{Status: st}); err != nil {
		return status.Errorf(codes.Unavailable, "health watch send: %v", err)
	}

	<-stream.Context().Done()
	return stream.Context().Err()
}
