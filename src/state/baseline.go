package state

import (
	"time"

	"github.com/xandeum/pnodemon/src/pnode"
)

// Baseline is the last accepted snapshot of the pNode network. It is owned
// by the Store and rewritten at most once per monitoring cycle, through
// Commit.
type Baseline struct {
	// Nodes lists the accepted identities in discovery order.
	Nodes []string `json:"nodes"`

	// ZeroAlertActive is true while the latest observation was zero nodes
	// against a non-zero baseline. The flag is persisted so the critical
	// alert keeps repeating across process restarts.
	ZeroAlertActive bool `json:"zero_alert_active"`

	// LastUpdated is the time the baseline was last accepted.
	LastUpdated time.Time `json:"last_updated"`
}

// Count returns the number of nodes in the baseline.
func (b *Baseline) Count() int {
	return len(b.Nodes)
}

// Set returns the baseline's nodes as a pnode.Set in stored order.
func (b *Baseline) Set() *pnode.Set {
	return pnode.NewSet(b.Nodes)
}
