package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"lyricsapi/internal/lib/logger/utils"
)

func TestInitLogger(t *testing.T) {
	previous := utils.Logger
	t.Cleanup(func() { utils.Logger = previous })

	assert.NoError(t, utils.InitLogger("warn"))
	assert.True(t, utils.Logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, utils.Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	previous := utils.Logger
	t.Cleanup(func() { utils.Logger = previous })

	assert.Error(t, utils.InitLogger("loud"))
	assert.Same(t, previous, utils.Logger)
}
