package domain

import "time"

// TrackerType identifies one of the "mind tools" activity trackers.
type TrackerType string

const (
	TrackerBreakThings TrackerType = "break_things"
	TrackerBreathing   TrackerType = "breathing"
	TrackerGrounding   TrackerType = "grounding"
	TrackerJournaling  TrackerType = "journaling"
	TrackerMeditation  TrackerType = "meditation"
)

// AllTrackerTypes lists every valid tracker type.
var AllTrackerTypes = []TrackerType{
	TrackerBreakThings,
	TrackerBreathing,
	TrackerGrounding,
	TrackerJournaling,
	TrackerMeditation,
}

// IsValid reports whether t is a known tracker type.
func (t TrackerType) IsValid() bool {
	switch t {
	case TrackerBreakThings, TrackerBreathing, TrackerGrounding,
		TrackerJournaling, TrackerMeditation:
		return true
	}
	return false
}

func (t TrackerType) String() string { return string(t) }

// ActivityCounter is a daily usage tally for one tracker.
// The natural key is (user name, user email, tracker, activity date).
// Counts are monotonically non-decreasing under the max-wins merge rule:
// a client-reported count only replaces the stored one when it is larger.
type ActivityCounter struct {
	ID           int64
	UserName     string
	UserEmail    string
	Tracker      TrackerType
	ActivityDate time.Time
	Count        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MergeAction describes the outcome of reconciling one counter.
type MergeAction string

const (
	MergeCreated   MergeAction = "created"
	MergeUpdated   MergeAction = "updated"
	MergeUnchanged MergeAction = "unchanged"
	MergeFailed    MergeAction = "failed"
)
