package waitingroom

import (
	"slices"
	"time"
)

// Rank is the triage sort key: emergencies first, then higher manual
// priority, then arrival order. The board order is a projection
// computed on every read; it is never persisted.
type Rank struct {
	ArrivalMode ArrivalMode
	Priority    int
	ArrivedAt   time.Time
}

func (r Rank) Compare(other Rank) int {
	if c := modeWeight(r.ArrivalMode) - modeWeight(other.ArrivalMode); c != 0 {
		return c
	}
	if r.Priority != other.Priority {
		// higher priority first
		if r.Priority > other.Priority {
			return -1
		}
		return 1
	}
	return r.ArrivedAt.Compare(other.ArrivedAt)
}

func modeWeight(m ArrivalMode) int {
	if m == ArrivalEmergency {
		return 0
	}
	return 1
}

// SortEntries orders active entries into the clinic's triage queue.
// The sort is stable so equal ranks keep their input order.
func SortEntries(entries []*Entry) []*Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *Entry) int {
		return a.TriageRank().Compare(b.TriageRank())
	})
	return sorted
}

// SortByRank orders arbitrary read models by their triage rank.
func SortByRank[T any](items []T, rankOf func(T) Rank) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return rankOf(a).Compare(rankOf(b))
	})
	return sorted
}
