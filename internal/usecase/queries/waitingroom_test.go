//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vetclinic-scheduling/internal/pkg/errs"
	"vetclinic-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWaitingRoomReadStore struct {
	byID    map[uuid.UUID]*queries.WaitingRoomEntryView
	active  []*queries.WaitingRoomEntryView
	findErr error
}

func (s *stubWaitingRoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.WaitingRoomEntryView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byID[id], nil
}

func (s *stubWaitingRoomReadStore) FindActiveByClinic(_ context.Context, _ uuid.UUID) ([]*queries.WaitingRoomEntryView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.active, nil
}

func entryView(mode string, priority int, arrivedAt time.Time) *queries.WaitingRoomEntryView {
	return &queries.WaitingRoomEntryView{
		ID:          uuid.New(),
		ClinicID:    uuid.New(),
		Origin:      "walk_in",
		ArrivalMode: mode,
		Priority:    priority,
		Status:      "waiting",
		ArrivedAt:   arrivedAt,
	}
}

func TestTriageBoard_Ordering(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	lateEmergency := entryView("emergency", 0, base.Add(40*time.Minute))
	highPriority := entryView("standard", 5, base.Add(30*time.Minute))
	earlyStandard := entryView("standard", 0, base.Add(5*time.Minute))
	lateStandard := entryView("standard", 0, base.Add(20*time.Minute))

	store := &stubWaitingRoomReadStore{
		active: []*queries.WaitingRoomEntryView{earlyStandard, lateStandard, highPriority, lateEmergency},
	}
	q := queries.NewWaitingRoomQueries(store)

	rows, err := q.TriageBoard(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Emergencies outrank any manual priority; priority outranks
	// arrival order; ties go to the earlier arrival.
	assert.Equal(t, lateEmergency.ID, rows[0].Entry.ID)
	assert.Equal(t, highPriority.ID, rows[1].Entry.ID)
	assert.Equal(t, earlyStandard.ID, rows[2].Entry.ID)
	assert.Equal(t, lateStandard.ID, rows[3].Entry.ID)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Position)
	}
}

func TestTriageBoard_StableForEqualRanks(t *testing.T) {
	t.Parallel()

	arrived := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	first := entryView("standard", 2, arrived)
	second := entryView("standard", 2, arrived)

	store := &stubWaitingRoomReadStore{
		active: []*queries.WaitingRoomEntryView{first, second},
	}
	q := queries.NewWaitingRoomQueries(store)

	rows, err := q.TriageBoard(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].Entry.ID)
	assert.Equal(t, second.ID, rows[1].Entry.ID)
}

func TestTriageBoard_EmptyClinic(t *testing.T) {
	t.Parallel()

	q := queries.NewWaitingRoomQueries(&stubWaitingRoomReadStore{})

	rows, err := q.TriageBoard(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTriageBoard_StoreError(t *testing.T) {
	t.Parallel()

	storeErr := errs.New("read failed")
	q := queries.NewWaitingRoomQueries(&stubWaitingRoomReadStore{findErr: storeErr})

	_, err := q.TriageBoard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storeErr)
}
