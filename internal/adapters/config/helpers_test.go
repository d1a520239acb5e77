package config_test

import (
	"testing"

	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

// sequence returns a name source that yields each name in turn.
func sequence(names ...string) func(int) string {
	i := 0
	return func(int) string {
		n := names[i%len(names)]
		i++
		return n
	}
}
