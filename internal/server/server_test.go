package server

import (
	"testing"

	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/handler"
	grpcHandler "github.com/ansorokin/habit-keeper/internal/handler/grpc"
	httpHandler "github.com/ansorokin/habit-keeper/internal/handler/http"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddressesConfigured(t *testing.T) {
	handlers := &handler.Handlers{}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	log := logger.Nop()
	handlers := &handler.Handlers{
		HTTP: httpHandler.NewHandler(&service.Services{}, config.App{}, log),
	}

	srv, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0"}, log)

	require.NoError(t, err)

	impl, ok := srv.(*server)
	require.True(t, ok)
	assert.NotNil(t, impl.httpServer)
	assert.Nil(t, impl.gRPCServer)
}

func TestNewServer_BothTransports(t *testing.T) {
	log := logger.Nop()
	handlers := &handler.Handlers{
		HTTP: httpHandler.NewHandler(&service.Services{}, config.App{}, log),
		GRPC: grpcHandler.NewHandler(&service.Services{}, log),
	}

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(handlers, cfg, log)

	require.NoError(t, err)

	impl, ok := srv.(*server)
	require.True(t, ok)
	assert.NotNil(t, impl.httpServer)
	assert.NotNil(t, impl.gRPCServer)
}
