package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)

	log.Info("slab built",
		String("element", "Au"),
		Int("atoms", 72),
		Float64("lattice_a", 4.078),
		Bool("cached", false),
		Duration("elapsed", 5*time.Millisecond),
		Err(errors.New("partial")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "slab built", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "Au", fields["element"])
	assert.Equal(t, int64(72), fields["atoms"])
	assert.Equal(t, 4.078, fields["lattice_a"])
	assert.Equal(t, false, fields["cached"])
	assert.Equal(t, "partial", fields["error"])
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	log, logs := newObservedLogger(zapcore.WarnLevel)

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")
	log.Error("kept too")

	assert.Equal(t, 2, logs.Len())
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	child := log.With(String("component", "builder")).Named("slab")
	child.Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "builder", entries[0].ContextMap()["component"])
	assert.Equal(t, "slab", entries[0].LoggerName)
}

func TestErrField_Nil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	// Must not panic and must return usable children.
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
	assert.NotNil(t, log.With(String("k", "v")))
	assert.NotNil(t, log.Named("child"))
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	log, logs := newObservedLogger(zapcore.InfoLevel)
	SetDefault(log)
	Default().Info("through default")
	assert.Equal(t, 1, logs.Len())

	// nil is ignored.
	SetDefault(nil)
	assert.Equal(t, log, Default())
}

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
