package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rifc/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	logger, err := logging.New("warn", false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = logging.New("error", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "verbose forces debug")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("chatty", false)
	assert.Error(t, err)
}
