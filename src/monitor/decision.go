package monitor

// Decision is the outcome of validating a candidate snapshot against the
// baseline: Accept, Reject, or CriticalAlert.
type Decision uint32

const (
	//Accept commits the candidate as the new baseline.
	Accept Decision = iota
	//Reject leaves the baseline unchanged because the change is too large.
	Reject
	//CriticalAlert signals a zero-node observation against a non-zero baseline.
	CriticalAlert
)

// String ...
func (d Decision) String() string {
	switch d {
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	case CriticalAlert:
		return "CriticalAlert"
	default:
		return "Unknown"
	}
}
