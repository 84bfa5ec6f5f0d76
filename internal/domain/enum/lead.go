package enum

// LeadPriority is the tier label derived from a lead's numeric score.
// The label is always recomputed from the clamped score; labels proposed
// by a scoring provider are discarded.
type LeadPriority string

const (
	LeadPriorityHot  LeadPriority = "hot"
	LeadPriorityWarm LeadPriority = "warm"
	LeadPriorityCold LeadPriority = "cold"
)

// LeadPriorityForScore derives the tier label from a score already clamped
// to [0,100]: >=80 hot, >=50 warm, else cold.
func LeadPriorityForScore(score int) LeadPriority {
	switch {
	case score >= 80:
		return LeadPriorityHot
	case score >= 50:
		return LeadPriorityWarm
	default:
		return LeadPriorityCold
	}
}

func (p LeadPriority) String() string {
	return string(p)
}

// LeadStatus tracks a lead through the sales funnel
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) String() string {
	return string(s)
}

// Valid reports whether the status is a known funnel stage
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}
