package pnode

// ChangeReport captures the membership movement between two snapshots. It is
// recomputed every cycle and never persisted.
type ChangeReport struct {
	Added         []string
	Removed       []string
	PreviousCount int
	CurrentCount  int
}

// Churn is the combined count of added and removed nodes.
func (r ChangeReport) Churn() int {
	return len(r.Added) + len(r.Removed)
}

// Diff computes the identities that joined and left between previous and
// current. Added follows current's discovery order, Removed follows
// previous's. Diff is pure: current = (previous - Removed) + Added holds
// exactly.
func Diff(previous, current *Set) ChangeReport {
	report := ChangeReport{
		Added:         []string{},
		Removed:       []string{},
		PreviousCount: previous.Len(),
		CurrentCount:  current.Len(),
	}

	for _, id := range current.IDs() {
		if !previous.Contains(id) {
			report.Added = append(report.Added, id)
		}
	}

	for _, id := range previous.IDs() {
		if !current.Contains(id) {
			report.Removed = append(report.Removed, id)
		}
	}

	return report
}
