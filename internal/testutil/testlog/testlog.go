// Package testlog is a one-call test setup helper: configure logging for
// test output and announce the running test. internal/dispatcher/buffered's
// tests call Start first, since that package is the one place in this
// module with a real logger wired through (buffered.Dispatcher.WithLogger).
package testlog

import (
	"testing"

	"github.com/danmuck/wirecall/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logger := logging.Logger()
	logger.Debug().Str("test", t.Name()).Msg("start")
}
