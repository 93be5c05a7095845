package server

import (
	"net"

	"github.com/ansorokin/habit-keeper/internal/config"
	healthHandler "github.com/ansorokin/habit-keeper/internal/handler/grpc"
	"github.com/ansorokin/habit-keeper/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type grpcServer struct {
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *healthHandler.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, handler)

	return &grpcServer{
		server:  srv,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Msgf("gRPC server Listen: %v", err)
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
