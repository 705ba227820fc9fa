package logging_test

import (
	"testing"

	"github.com/brainsik/rustbook-ch13-cacher/shared/logging"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewConsole_Level(t *testing.T) {
	logger := logging.NewConsole(zap.InfoLevel)
	defer logger.Sync() //nolint:errcheck

	assert.Nil(t, logger.Check(zap.DebugLevel, "hidden"))
	assert.NotNil(t, logger.Check(zap.InfoLevel, "shown"))
}
