// Package report renders the outcome of a monitoring cycle into the
// human-readable message posted to the chat webhook.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/xandeum/pnodemon/src/pnode"
)

// maxListed is the number of node identities printed per section before the
// list is truncated to a remainder count.
const maxListed = 5

const timeLayout = "2006-01-02 15:04:05"

// Initial renders the first-run message, which reports the total only.
func Initial(total int, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🚀 *Initial pNode Network Status* - %s\n\n", now.Format(timeLayout))
	fmt.Fprintf(&b, "• Total Active Nodes: %d\n", total)

	return b.String()
}

// Update renders an accepted membership change, listing new and offline
// nodes in discovery order.
func Update(rep pnode.ChangeReport, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *pNode Network Status Update* - %s\n\n", now.Format(timeLayout))
	fmt.Fprintf(&b, "• Total Active Nodes: %d\n", rep.CurrentCount)

	if len(rep.Added) > 0 {
		fmt.Fprintf(&b, "\n🆕 *New Nodes (%d)* 🆕\n", len(rep.Added))
		listNodes(&b, rep.Added)
	}

	if len(rep.Removed) > 0 {
		fmt.Fprintf(&b, "\n⚠️ *Offline Nodes (%d)* ⚠️\n", len(rep.Removed))
		listNodes(&b, rep.Removed)
	}

	return b.String()
}

// Skipped renders a rejected baseline update. No node lists are included,
// only the reason and the counts involved.
func Skipped(reason string, rep pnode.ChangeReport, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "⏭️ *pNode Update Skipped* - %s\n\n", now.Format(timeLayout))
	fmt.Fprintf(&b, "• Reason: %s\n", reason)
	fmt.Fprintf(&b, "• Baseline Nodes: %d\n", rep.PreviousCount)
	fmt.Fprintf(&b, "• Observed Nodes: %d\n", rep.CurrentCount)

	return b.String()
}

// Critical renders the zero-node outage warning. It is re-sent every cycle
// while the alert is active.
func Critical(lastKnown int, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🚨 *CRITICAL: pNode Network Reports Zero Nodes* - %s\n\n", now.Format(timeLayout))
	fmt.Fprintf(&b, "• Last Known Active Nodes: %d\n", lastKnown)
	b.WriteString("• Baseline preserved; this alert repeats until nodes reappear\n")

	return b.String()
}

// listNodes prints up to maxListed entries, then a remainder count.
func listNodes(b *strings.Builder, nodes []string) {
	for i, node := range nodes {
		if i == maxListed {
			fmt.Fprintf(b, "• ... and %d more\n", len(nodes)-maxListed)
			return
		}
		fmt.Fprintf(b, "• %s\n", node)
	}
}
