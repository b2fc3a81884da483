package queries

import (
	"context"

	"vetclinic-scheduling/internal/domain/waitingroom"

	"github.com/google/uuid"
)

type WaitingRoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WaitingRoomEntryView, error)
	// TriageBoard returns the clinic's active entries in service
	// order. The order is re-derived on every call, never stored.
	TriageBoard(ctx context.Context, clinicID uuid.UUID) ([]*TriageBoardRow, error)
}

type WaitingRoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WaitingRoomEntryView, error)
	FindActiveByClinic(ctx context.Context, clinicID uuid.UUID) ([]*WaitingRoomEntryView, error)
}

type waitingRoomQueriesImpl struct {
	store WaitingRoomReadStore
}

func NewWaitingRoomQueries(store WaitingRoomReadStore) WaitingRoomQueries {
	return &waitingRoomQueriesImpl{store: store}
}

func (q *waitingRoomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WaitingRoomEntryView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *waitingRoomQueriesImpl) TriageBoard(ctx context.Context, clinicID uuid.UUID) ([]*TriageBoardRow, error) {
	entries, err := q.store.FindActiveByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	sorted := waitingroom.SortByRank(entries, func(v *WaitingRoomEntryView) waitingroom.Rank {
		return waitingroom.Rank{
			ArrivalMode: waitingroom.ArrivalMode(v.ArrivalMode),
			Priority:    v.Priority,
			ArrivedAt:   v.ArrivedAt,
		}
	})

	rows := make([]*TriageBoardRow, len(sorted))
	for i, entry := range sorted {
		rows[i] = &TriageBoardRow{Position: i + 1, Entry: *entry}
	}
	return rows, nil
}
