package monitor

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xandeum/pnodemon/src/config"
	"github.com/xandeum/pnodemon/src/notify"
	"github.com/xandeum/pnodemon/src/pnode"
	"github.com/xandeum/pnodemon/src/report"
	"github.com/xandeum/pnodemon/src/sampler"
	"github.com/xandeum/pnodemon/src/state"
)

// Monitor drives the sample, diff, validate, report, persist cycle.
type Monitor struct {
	conf     *config.Config
	sampler  *sampler.Sampler
	store    *state.Store
	notifier notify.Notifier
	logger   *logrus.Entry

	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// New creates a Monitor around its collaborators.
func New(conf *config.Config,
	s *sampler.Sampler,
	store *state.Store,
	notifier notify.Notifier,
	logger *logrus.Entry,
) *Monitor {
	return &Monitor{
		conf:       conf,
		sampler:    s,
		store:      store,
		notifier:   notifier,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

// Run executes the first cycle immediately, then one cycle per configured
// interval, until Shutdown is called. Cycles never overlap: the select is
// only reached between cycles, so a shutdown waits for the cycle in
// progress.
func (m *Monitor) Run() {
	m.logger.WithFields(logrus.Fields{
		"interval":   m.conf.Interval,
		"status_url": m.conf.StatusURL,
	}).Info("Starting monitor")

	m.RunCycle(time.Now())

	ticker := time.NewTicker(m.conf.Interval)
	defer ticker.Stop()

	for {
		select {
		case t := <-ticker.C:
			m.RunCycle(t)
		case <-m.shutdownCh:
			m.logger.Debug("Monitor loop stopped")
			return
		}
	}
}

// Shutdown stops the interval loop. A cycle already in progress finishes
// normally before Run returns.
func (m *Monitor) Shutdown() {
	m.shutdownOnce.Do(func() {
		m.logger.Debug("Shutdown")
		close(m.shutdownCh)
	})
}

// RunCycle executes one full monitoring pass. Failures inside the cycle are
// logged, never fatal: the scheduling loop must continue to the next
// interval regardless of cycle outcome.
func (m *Monitor) RunCycle(now time.Time) {
	prev := m.loadBaseline()

	nodes, ok := m.sampler.Sample()
	if !ok {
		m.logger.Error("All sampling attempts failed, skipping cycle")
		return
	}

	candidate := pnode.Snapshot{Nodes: nodes, TakenAt: now}

	out := Validate(prev, candidate, m.conf.ChurnThreshold)

	m.logger.WithFields(logrus.Fields{
		"decision": out.Decision.String(),
		"total":    nodes.Len(),
		"added":    len(out.Report.Added),
		"removed":  len(out.Report.Removed),
	}).Info("Cycle validated")

	m.send(m.render(out, prev, now))

	m.commit(out, candidate, prev, now)
}

// loadBaseline reads the persisted baseline, treating a missing or
// irrecoverably corrupt state file as a first run.
func (m *Monitor) loadBaseline() *state.Baseline {
	b, err := m.store.Load()
	if err != nil {
		if err == state.ErrNoState {
			m.logger.Info("No previous state, bootstrapping")
		} else {
			m.logger.WithError(err).Warn("State unreadable, bootstrapping")
		}
		return nil
	}
	return b
}

func (m *Monitor) render(out Outcome, prev *state.Baseline, now time.Time) string {
	switch {
	case out.Bootstrap:
		return report.Initial(out.Report.CurrentCount, now)
	case out.Decision == CriticalAlert:
		return report.Critical(prev.Count(), now)
	case out.Decision == Reject:
		return report.Skipped(out.Reason, out.Report, now)
	default:
		return report.Update(out.Report, now)
	}
}

func (m *Monitor) send(message string) {
	if err := m.notifier.Notify(message); err != nil {
		m.logger.WithError(err).Error("Webhook delivery failed")
	}
}

// commit rewrites the state file when the decision calls for it: on
// acceptance, or on the cycle where the zero-node alert first activates.
// Rejected cycles and repeated alert cycles leave the file untouched.
func (m *Monitor) commit(out Outcome, candidate pnode.Snapshot, prev *state.Baseline, now time.Time) {
	switch out.Decision {
	case Accept:
		b := &state.Baseline{
			Nodes:       candidate.Nodes.IDs(),
			LastUpdated: now,
		}
		if err := m.store.Commit(b); err != nil {
			m.logger.WithError(err).Error("Failed to persist baseline")
		}

	case CriticalAlert:
		if prev == nil || prev.ZeroAlertActive {
			return
		}
		// Retain the last good baseline, only the alert flag changes.
		b := &state.Baseline{
			Nodes:           prev.Nodes,
			ZeroAlertActive: true,
			LastUpdated:     prev.LastUpdated,
		}
		if err := m.store.Commit(b); err != nil {
			m.logger.WithError(err).Error("Failed to persist alert state")
		}
	}
}
