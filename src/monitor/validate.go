package monitor

import (
	"fmt"

	"github.com/xandeum/pnodemon/src/pnode"
	"github.com/xandeum/pnodemon/src/state"
)

// Outcome bundles the decision for one cycle with the material the report
// formatter and the store need.
type Outcome struct {
	Decision Decision

	// Reason explains a Reject or CriticalAlert decision.
	Reason string

	// Report is the diff against the previous baseline. Empty on bootstrap.
	Report pnode.ChangeReport

	// Bootstrap is true on the first-ever run, when there was no previous
	// baseline to diff against.
	Bootstrap bool

	// AlertActive is the value of the zero-node alert flag after this cycle.
	AlertActive bool
}

// Validate runs the change validator against the previous baseline. prev is
// nil on the first-ever run, which always accepts with an empty report.
//
// The zero-node check runs before the churn threshold: a candidate of zero
// nodes against a non-zero baseline is a critical alert even when the churn
// alone would have been a plain rejection.
func Validate(prev *state.Baseline, candidate pnode.Snapshot, threshold float64) Outcome {
	if prev == nil {
		return Outcome{
			Decision:  Accept,
			Bootstrap: true,
			Report: pnode.ChangeReport{
				Added:        []string{},
				Removed:      []string{},
				CurrentCount: candidate.Nodes.Len(),
			},
		}
	}

	report := pnode.Diff(prev.Set(), candidate.Nodes)

	// Zero-alert state machine. The baseline is deliberately not updated to
	// zero: a false "all nodes vanished" reading must not replace the last
	// good state.
	if candidate.Nodes.Len() == 0 && prev.Count() > 0 {
		return Outcome{
			Decision:    CriticalAlert,
			Reason:      "zero nodes observed",
			Report:      report,
			AlertActive: true,
		}
	}

	// Recovery from an active alert accepts unconditionally. The retained
	// baseline is at least one cycle stale, so churn against it is expected
	// to be large; gating recovery on the threshold could keep the alert
	// latched forever.
	if prev.ZeroAlertActive && candidate.Nodes.Len() > 0 {
		return Outcome{
			Decision: Accept,
			Report:   report,
		}
	}

	delta := report.Churn()
	base := prev.Count()
	if base < 1 {
		base = 1
	}

	if float64(delta)/float64(base) > threshold {
		return Outcome{
			Decision: Reject,
			Reason:   fmt.Sprintf("change exceeds threshold: %d of %d baseline nodes changed", delta, base),
			Report:   report,
		}
	}

	return Outcome{
		Decision: Accept,
		Report:   report,
	}
}
