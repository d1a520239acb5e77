package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockGlobalStore, *mocks.MockRemoteRegistry) {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	global := mocks.NewMockGlobalStore(ctrl)
	registry := mocks.NewMockRemoteRegistry(ctrl)

	application := app.New(app.Deps{
		Global:   global,
		Registry: registry,
		Logger:   logger,
	})
	return &app.Components{App: application, Logger: logger}, global, registry
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, global, registry := newComponents(ctrl)
	global.EXPECT().Init().Return(nil)
	registry.EXPECT().List().Return(nil, nil)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"remote", "list"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_Version verifies that version needs no user configuration.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, global, registry := newComponents(ctrl)
	global.EXPECT().Init().Return(nil)
	registry.EXPECT().Resolve("gone").Return(domain.Remote{}, domain.ErrRemoteNotFound)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"remote", "remove", "gone"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_AppOptions verifies that options are applied to the app before execution.
func TestRun_AppOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, global, _ := newComponents(ctrl)
	global.EXPECT().Init().Return(errors.New("home is read-only"))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	var applied bool
	exitCode := run(context.Background(), []string{"info"}, new(bytes.Buffer), provider, func(a *app.App) {
		applied = a == components.App
	})
	assert.True(t, applied)
	assert.Equal(t, 1, exitCode)
}
