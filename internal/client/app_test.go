package client

import (
	"testing"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/mock"
	"github.com/ansorokin/habit-keeper/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	ui, err := tui.New(server, logger.Nop())
	require.NoError(t, err)

	app, err := NewApp(server, ui, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestNewApp_MissingDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	ui, err := tui.New(server, logger.Nop())
	require.NoError(t, err)

	_, err = NewApp(nil, ui, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(server, nil, logger.Nop())
	assert.Error(t, err)
}
