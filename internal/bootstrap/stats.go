package bootstrap

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/projects-api/internal/api/http"
)

// StoredProjects is the project count seen by the last stats run.
var StoredProjects = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "projects_api",
		Subsystem: "store",
		Name:      "projects",
		Help:      "Number of projects held in memory",
	},
)

// StatsReporter periodically publishes the store size to the log and to
// StoredProjects.
type StatsReporter struct {
	projects httpapi.ProjectCounter
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewStatsReporter(projects httpapi.ProjectCounter, logger *zap.Logger) *StatsReporter {
	return &StatsReporter{
		projects: projects,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Report records the current store size once.
func (s *StatsReporter) Report() {
	n := s.projects.Count()
	StoredProjects.Set(float64(n))
	s.logger.Info("store stats", zap.Int("projects", n))
}

// Start schedules Report on the given cron spec (e.g. "@every 1m").
func (s *StatsReporter) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.Report); err != nil {
		return fmt.Errorf("schedule stats %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("stats reporter started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running report to finish.
func (s *StatsReporter) Stop() {
	<-s.cron.Stop().Done()
}
