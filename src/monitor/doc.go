// Package monitor implements the reconciliation engine of pnodemon.
//
// Monitor drives one cycle at a time: sample the status endpoint, diff the
// result against the persisted baseline, validate the change, render and
// send a report, and commit the new baseline on acceptance. Cycles never
// overlap; the interval loop waits for the previous cycle to finish before
// scheduling the next.
//
// Validation embeds a two-state alert machine. In the Normal state, a
// candidate is accepted unless its combined churn exceeds the configured
// fraction of the baseline. When a zero-node set is observed against a
// non-zero baseline, the machine enters the zero-alert state: the baseline
// is retained, a critical alert is emitted on every cycle, and the machine
// only returns to Normal once a non-zero sample is observed, which is then
// accepted. The zero-node check runs before the churn threshold, because a
// total outage is the more severe condition and must not be masked by a
// rejection. The alert flag is persisted alongside the baseline so the
// machine survives restarts.
package monitor
