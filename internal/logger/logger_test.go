package logger_test

import (
	"context"
	"testing"

	"github.com/san-kum/wavebeat/internal/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{
		logger.DevelopmentEnvironment,
		logger.ProductionEnvironment,
		logger.QuietEnvironment,
		"",
	} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetWithoutSetup(t *testing.T) {
	require.NotPanics(t, func() {
		logger.Info(context.Background(), "no setup needed")
	})
}

func TestWithLogger(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.Int("npoints", 1000))

	logger.Debug(ctx, "grid ready")
	logger.Warn(ctx, "slow frame", zap.Int("step", 3))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "grid ready", entries[0].Message)
	require.Equal(t, int64(1000), entries[0].ContextMap()["npoints"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, int64(3), entries[1].ContextMap()["step"])
}
