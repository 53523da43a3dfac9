package pnode

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	previous := NewSet([]string{"a:1", "b:2", "c:3"})
	current := NewSet([]string{"b:2", "d:4", "c:3", "e:5"})

	report := Diff(previous, current)

	if !reflect.DeepEqual(report.Added, []string{"d:4", "e:5"}) {
		t.Fatalf("Added should be [d:4 e:5], not %v", report.Added)
	}
	if !reflect.DeepEqual(report.Removed, []string{"a:1"}) {
		t.Fatalf("Removed should be [a:1], not %v", report.Removed)
	}
	if report.PreviousCount != 3 {
		t.Fatalf("PreviousCount should be 3, not %d", report.PreviousCount)
	}
	if report.CurrentCount != 4 {
		t.Fatalf("CurrentCount should be 4, not %d", report.CurrentCount)
	}
	if report.Churn() != 3 {
		t.Fatalf("Churn should be 3, not %d", report.Churn())
	}
}

func TestDiffAddedRemovedDisjoint(t *testing.T) {
	previous := NewSet([]string{"a:1", "b:2", "c:3", "d:4"})
	current := NewSet([]string{"c:3", "d:4", "e:5", "f:6"})

	report := Diff(previous, current)

	added := NewSet(report.Added)
	for _, id := range report.Removed {
		if added.Contains(id) {
			t.Fatalf("added and removed should be disjoint, both contain %s", id)
		}
	}
}

// The reconstruction property: current = (previous - removed) + added.
func TestDiffReconstruction(t *testing.T) {
	previous := NewSet([]string{"a:1", "b:2", "c:3", "d:4"})
	current := NewSet([]string{"b:2", "e:5", "d:4", "f:6"})

	report := Diff(previous, current)

	removed := NewSet(report.Removed)
	rebuilt := NewSet(nil)
	for _, id := range previous.IDs() {
		if !removed.Contains(id) {
			rebuilt.Add(id)
		}
	}
	for _, id := range report.Added {
		rebuilt.Add(id)
	}

	if !rebuilt.Equals(current) {
		t.Fatalf("rebuilt set %v should equal current %v", rebuilt.IDs(), current.IDs())
	}
}

func TestDiffIdenticalSets(t *testing.T) {
	previous := NewSet([]string{"a:1", "b:2"})
	current := NewSet([]string{"b:2", "a:1"})

	report := Diff(previous, current)

	if len(report.Added) != 0 || len(report.Removed) != 0 {
		t.Fatalf("identical sets should produce an empty diff, got added=%v removed=%v",
			report.Added, report.Removed)
	}
}

func TestDiffEmptyPrevious(t *testing.T) {
	report := Diff(NewSet(nil), NewSet([]string{"a:1", "b:2"}))

	if len(report.Added) != 2 {
		t.Fatalf("everything should be added, got %v", report.Added)
	}
	if len(report.Removed) != 0 {
		t.Fatalf("nothing should be removed, got %v", report.Removed)
	}
}

func TestDiffEmptyCurrent(t *testing.T) {
	report := Diff(NewSet([]string{"a:1", "b:2"}), NewSet(nil))

	if len(report.Added) != 0 {
		t.Fatalf("nothing should be added, got %v", report.Added)
	}
	if len(report.Removed) != 2 {
		t.Fatalf("everything should be removed, got %v", report.Removed)
	}
}
