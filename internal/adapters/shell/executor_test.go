package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestLocalExecutor_Run(t *testing.T) {
	exec := shell.NewLocalExecutor(shell.NewRunner(quietLogger(t))).WithDir(t.TempDir())

	res, err := exec.Run(context.Background(), "echo line1; echo line2 >&2")

	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, "line1\nline2\n", res.Output)
}

func TestLocalExecutor_Run_NonZeroExit(t *testing.T) {
	exec := shell.NewLocalExecutor(shell.NewRunner(quietLogger(t))).WithDir(t.TempDir())

	res, err := exec.Run(context.Background(), "echo 'Could not find conda environment: x'; exit 3")

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Output, "Could not find conda environment")
}

func TestLocalExecutor_Run_Timeout(t *testing.T) {
	runner := shell.NewRunner(quietLogger(t)).WithTimeout(200 * time.Millisecond)
	exec := shell.NewLocalExecutor(runner).WithDir(t.TempDir())

	_, err := exec.Run(context.Background(), "sleep 5")

	require.ErrorIs(t, err, domain.ErrCommandTimeout)
	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.True(t, cmdErr.TimedOut)
}

func TestLocalExecutor_Run_EchoedOutputIsInfo(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info("Collecting package metadata").Times(1)
	exec := shell.NewLocalExecutor(shell.NewRunner(log)).WithDir(t.TempDir())

	_, err := exec.Run(domain.WithEcho(context.Background()), "echo 'Collecting package metadata'")
	require.NoError(t, err)
}
