//go:build unit

package waitingroom_test

import (
	"testing"
	"time"

	"vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromAppointment(t *testing.T) {
	entry := builder.NewWaitingRoomEntryBuilder().BuildDomain()

	assert.NotEqual(t, uuid.Nil, entry.ID())
	assert.Equal(t, waitingroom.OriginScheduled, entry.Origin())
	assert.Equal(t, waitingroom.StatusWaiting, entry.Status())
	require.NotNil(t, entry.AppointmentID())
	assert.Nil(t, entry.CalledAt())
	assert.Nil(t, entry.ClosedAt())
}

func TestNewWalkIn(t *testing.T) {
	t.Run("with owner and animal", func(t *testing.T) {
		entry := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.Origin = waitingroom.OriginWalkIn
		}).BuildDomain()

		assert.Equal(t, waitingroom.OriginWalkIn, entry.Origin())
		assert.Nil(t, entry.AppointmentID())
		assert.Equal(t, waitingroom.StatusWaiting, entry.Status())
	})

	t.Run("found animal without owner", func(t *testing.T) {
		desc := "injured stray cat, grey tabby"
		entry := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.Origin = waitingroom.OriginWalkIn
			b.OwnerID = nil
			b.AnimalID = nil
			b.FoundAnimalDescription = &desc
			b.ArrivalMode = waitingroom.ArrivalEmergency
		}).BuildDomain()

		assert.Nil(t, entry.OwnerID())
		assert.Nil(t, entry.AnimalID())
		require.NotNil(t, entry.FoundAnimalDescription())
		assert.Equal(t, desc, *entry.FoundAnimalDescription())
		assert.Equal(t, waitingroom.ArrivalEmergency, entry.ArrivalMode())
	})
}

func TestEntryTransitions(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 15, 0, 0, time.UTC)
	actor := uuid.New()

	entryAt := func(status waitingroom.Status) *waitingroom.Entry {
		return builder.NewWaitingRoomEntryBuilder().BuildDomainWithStatus(status)
	}

	t.Run("waiting to called", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusWaiting)
		require.NoError(t, entry.Call(now, actor))

		assert.Equal(t, waitingroom.StatusCalled, entry.Status())
		require.NotNil(t, entry.CalledAt())
		assert.Equal(t, now, *entry.CalledAt())
		require.NotNil(t, entry.CalledBy())
		assert.Equal(t, actor, *entry.CalledBy())
	})

	t.Run("waiting straight to in service", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusWaiting)
		require.NoError(t, entry.StartService(now, actor))

		assert.Equal(t, waitingroom.StatusInService, entry.Status())
		assert.Nil(t, entry.CalledAt())
		require.NotNil(t, entry.ServiceStartedAt())
	})

	t.Run("waiting straight to closed", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusWaiting)
		require.NoError(t, entry.Close(now, &actor))

		assert.Equal(t, waitingroom.StatusClosed, entry.Status())
		require.NotNil(t, entry.ClosedAt())
		require.NotNil(t, entry.ClosedBy())
	})

	t.Run("close without actor", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusWaiting)
		require.NoError(t, entry.Close(now, nil))

		assert.Equal(t, waitingroom.StatusClosed, entry.Status())
		assert.Nil(t, entry.ClosedBy())
	})

	t.Run("called to in service to closed", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusCalled)
		require.NoError(t, entry.StartService(now, actor))
		require.NoError(t, entry.Close(now.Add(20*time.Minute), &actor))
		assert.Equal(t, waitingroom.StatusClosed, entry.Status())
	})

	t.Run("calling twice fails", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusCalled)
		assert.ErrorIs(t, entry.Call(now, actor), waitingroom.ErrInvalidTransition)
	})

	t.Run("in service cannot be called", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusInService)
		assert.ErrorIs(t, entry.Call(now, actor), waitingroom.ErrInvalidTransition)
		assert.ErrorIs(t, entry.StartService(now, actor), waitingroom.ErrInvalidTransition)
	})

	t.Run("closed rejects everything including close", func(t *testing.T) {
		entry := entryAt(waitingroom.StatusClosed)
		assert.ErrorIs(t, entry.Call(now, actor), waitingroom.ErrInvalidTransition)
		assert.ErrorIs(t, entry.StartService(now, actor), waitingroom.ErrInvalidTransition)
		assert.ErrorIs(t, entry.Close(now, &actor), waitingroom.ErrInvalidTransition)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	allowed := map[waitingroom.Status][]waitingroom.Status{
		waitingroom.StatusWaiting:   {waitingroom.StatusCalled, waitingroom.StatusInService, waitingroom.StatusClosed},
		waitingroom.StatusCalled:    {waitingroom.StatusInService, waitingroom.StatusClosed},
		waitingroom.StatusInService: {waitingroom.StatusClosed},
		waitingroom.StatusClosed:    {},
	}

	all := []waitingroom.Status{
		waitingroom.StatusWaiting,
		waitingroom.StatusCalled,
		waitingroom.StatusInService,
		waitingroom.StatusClosed,
	}

	for from, targets := range allowed {
		for _, to := range all {
			want := false
			for _, target := range targets {
				if to == target {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReassess(t *testing.T) {
	notes := "deteriorating, bumped up"

	t.Run("updates priority while active", func(t *testing.T) {
		entry := builder.NewWaitingRoomEntryBuilder().BuildDomain()
		require.NoError(t, entry.Reassess(5, &notes))

		assert.Equal(t, 5, entry.Priority())
		require.NotNil(t, entry.TriageNotes())
		assert.Equal(t, notes, *entry.TriageNotes())
	})

	t.Run("keeps notes when nil given", func(t *testing.T) {
		entry := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.TriageNotes = &notes
		}).BuildDomain()

		require.NoError(t, entry.Reassess(3, nil))
		assert.Equal(t, 3, entry.Priority())
		require.NotNil(t, entry.TriageNotes())
	})

	t.Run("fails on closed entry", func(t *testing.T) {
		entry := builder.NewWaitingRoomEntryBuilder().BuildDomainWithStatus(waitingroom.StatusClosed)
		assert.ErrorIs(t, entry.Reassess(5, nil), waitingroom.ErrEntryClosed)
	})
}
