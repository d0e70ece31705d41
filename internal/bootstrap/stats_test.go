package bootstrap

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/repository"
)

func TestStatsReporter_Report(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := repository.NewMemoryStore()
	store.Append(domain.Project{ID: "a", Title: "Alpha", Owner: "Ana"})
	store.Append(domain.Project{ID: "b", Title: "Beta", Owner: "Bo"})

	s := NewStatsReporter(store, zap.New(core))
	s.Report()

	assert.Equal(t, float64(2), testutil.ToFloat64(StoredProjects))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "store stats", logs.All()[0].Message)
	assert.Equal(t, int64(2), logs.All()[0].ContextMap()["projects"])
}

func TestStatsReporter_StartRejectsBadSchedule(t *testing.T) {
	s := NewStatsReporter(repository.NewMemoryStore(), zap.NewNop())

	assert.Error(t, s.Start("not a schedule"))
}

func TestStatsReporter_StartStop(t *testing.T) {
	s := NewStatsReporter(repository.NewMemoryStore(), zap.NewNop())

	require.NoError(t, s.Start("@every 1h"))
	s.Stop()
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("production", "debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("development", "bogus")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
