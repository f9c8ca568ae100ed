package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("prod", func(t *testing.T) {
		l, err := New("prod", "")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("level override", func(t *testing.T) {
		l, err := New("prod", "debug")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("other envs use production config", func(t *testing.T) {
		for _, env := range []string{"production", "staging", ""} {
			l, err := New(env, "")
			require.NoError(t, err, env)
			assert.True(t, l.Core().Enabled(zapcore.InfoLevel), env)
			assert.False(t, l.Core().Enabled(zapcore.DebugLevel), env)
		}
	})

	t.Run("dev enables debug", func(t *testing.T) {
		l, err := New("dev", "")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("dev", "loud")
		assert.Error(t, err)
	})
}
