//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domappt "vetclinic-scheduling/internal/domain/appointment"
	domwr "vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/pkg/clock"
	"vetclinic-scheduling/internal/usecase/commands"
	"vetclinic-scheduling/internal/usecase/shared"
	"vetclinic-scheduling/tests/common/builder"
	commandsmock "vetclinic-scheduling/tests/mock/commands"
	sharedmock "vetclinic-scheduling/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaitingRoomCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUoW         *sharedmock.MockUnitOfWork
	mockTx          *sharedmock.MockTx
	mockReads       *sharedmock.MockCommandReads
	mockAppts       *sharedmock.MockAppointmentRepository
	mockWaitingRoom *sharedmock.MockWaitingRoomRepository
	mockEvents      *sharedmock.MockEventOutbox
	mockOwners      *commandsmock.MockOwnerExistenceChecker
	mockAnimals     *commandsmock.MockAnimalExistenceChecker
	clock           *clock.MockClock
	commands        commands.WaitingRoomCommands
}

func (s *WaitingRoomCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockAppts = sharedmock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockWaitingRoom = sharedmock.NewMockWaitingRoomRepository(s.mockCtrl)
	s.mockEvents = sharedmock.NewMockEventOutbox(s.mockCtrl)
	s.mockOwners = commandsmock.NewMockOwnerExistenceChecker(s.mockCtrl)
	s.mockAnimals = commandsmock.NewMockAnimalExistenceChecker(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))

	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Appointments().Return(s.mockAppts).AnyTimes()
	s.mockTx.EXPECT().WaitingRoom().Return(s.mockWaitingRoom).AnyTimes()
	s.mockTx.EXPECT().Events().Return(s.mockEvents).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewWaitingRoomCommands(s.mockUoW, s.mockOwners, s.mockAnimals, s.clock)
}

func (s *WaitingRoomCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaitingRoomCommandsSuite(t *testing.T) {
	suite.Run(t, new(WaitingRoomCommandsTestSuite))
}

func (s *WaitingRoomCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
}

// ================================================================================
// TestCreateFromAppointment
// ================================================================================

func (s *WaitingRoomCommandsTestSuite) TestCreateFromAppointment() {
	s.Run("success: inherits clinic, owner and animal from the appointment", func() {
		apptSnap := builder.NewAppointmentBuilder().BuildSnapshot()
		input := commands.CheckInInput{
			AppointmentID: apptSnap.ID,
			ArrivalMode:   domwr.ArrivalStandard,
			Priority:      1,
		}
		createdID := uuid.New()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockReads.EXPECT().HasActiveEntryForAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(false, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) (uuid.UUID, error) {
				s.Equal(apptSnap.ClinicID, entry.ClinicID())
				s.Equal(apptSnap.OwnerID, entry.OwnerID())
				s.Equal(apptSnap.AnimalID, entry.AnimalID())
				s.Equal(domwr.OriginScheduled, entry.Origin())
				return createdID, nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryCreated, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		id, err := s.commands.CreateFromAppointment(context.Background(), input)
		s.NoError(err)
		s.Equal(createdID, id)
	})

	s.Run("error: unknown appointment", func() {
		input := commands.CheckInInput{AppointmentID: uuid.New(), ArrivalMode: domwr.ArrivalStandard}

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), input.AppointmentID).
			Return(nil, infra.WrapRepoErr("appointment", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateFromAppointment(context.Background(), input)
		s.ErrorIs(err, commands.ErrAppointmentNotFound)
	})

	s.Run("error: active entry already linked", func() {
		apptSnap := builder.NewAppointmentBuilder().BuildSnapshot()
		input := commands.CheckInInput{AppointmentID: apptSnap.ID, ArrivalMode: domwr.ArrivalStandard}

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockReads.EXPECT().HasActiveEntryForAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(true, nil).Times(1)

		_, err := s.commands.CreateFromAppointment(context.Background(), input)
		s.ErrorIs(err, commands.ErrDuplicateActiveEntry)
	})

	s.Run("error: unique index closes the concurrent check-in race", func() {
		apptSnap := builder.NewAppointmentBuilder().BuildSnapshot()
		input := commands.CheckInInput{AppointmentID: apptSnap.ID, ArrivalMode: domwr.ArrivalStandard}

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockReads.EXPECT().HasActiveEntryForAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(false, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("create entry", errors.New("23505"), infra.KindDuplicateKey)).Times(1)

		_, err := s.commands.CreateFromAppointment(context.Background(), input)
		s.ErrorIs(err, commands.ErrDuplicateActiveEntry)
	})
}

// ================================================================================
// TestCreateWalkIn
// ================================================================================

func (s *WaitingRoomCommandsTestSuite) TestCreateWalkIn() {
	walkInInput := func() commands.WalkInInput {
		ownerID := uuid.New()
		animalID := uuid.New()
		return commands.WalkInInput{
			ClinicID:    uuid.New(),
			OwnerID:     &ownerID,
			AnimalID:    &animalID,
			ArrivalMode: domwr.ArrivalStandard,
			Priority:    2,
		}
	}

	s.Run("success: admits a walk-in", func() {
		input := walkInInput()
		createdID := uuid.New()

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.expectWithin()
		s.mockWaitingRoom.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) (uuid.UUID, error) {
				s.Equal(domwr.OriginWalkIn, entry.Origin())
				s.Nil(entry.AppointmentID())
				return createdID, nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryCreated, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		id, err := s.commands.CreateWalkIn(context.Background(), input)
		s.NoError(err)
		s.Equal(createdID, id)
	})

	s.Run("success: anonymous found animal needs no registry lookups", func() {
		desc := "stray cat, grey tabby"
		input := commands.WalkInInput{
			ClinicID:               uuid.New(),
			FoundAnimalDescription: &desc,
			ArrivalMode:            domwr.ArrivalEmergency,
			Priority:               9,
		}
		createdID := uuid.New()

		s.expectWithin()
		s.mockWaitingRoom.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(createdID, nil).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryCreated, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		id, err := s.commands.CreateWalkIn(context.Background(), input)
		s.NoError(err)
		s.Equal(createdID, id)
	})

	s.Run("error: unknown owner", func() {
		input := walkInInput()

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(false, nil).Times(1)

		_, err := s.commands.CreateWalkIn(context.Background(), input)
		s.ErrorIs(err, commands.ErrUnknownOwner)
	})

	s.Run("error: unknown animal", func() {
		input := walkInInput()

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(false, nil).Times(1)

		_, err := s.commands.CreateWalkIn(context.Background(), input)
		s.ErrorIs(err, commands.ErrUnknownAnimal)
	})
}

// ================================================================================
// Entry transitions
// ================================================================================

func (s *WaitingRoomCommandsTestSuite) TestTransitions() {
	actorID := uuid.New()

	s.Run("success: call a waiting entry", func() {
		snap := builder.NewWaitingRoomEntryBuilder().BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) error {
				s.Equal(domwr.StatusCalled, entry.Status())
				s.Equal(&actorID, entry.CalledBy())
				return nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryCalled, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.Call(context.Background(), snap.ID, actorID))
	})

	s.Run("success: start service directly from waiting", func() {
		snap := builder.NewWaitingRoomEntryBuilder().BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) error {
				s.Equal(domwr.StatusInService, entry.Status())
				return nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomServiceStart, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.StartService(context.Background(), snap.ID, actorID))
	})

	s.Run("success: close records the acting user when present", func() {
		snap := builder.NewWaitingRoomEntryBuilder().BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) error {
				s.Equal(domwr.StatusClosed, entry.Status())
				s.Equal(&actorID, entry.ClosedBy())
				return nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryClosed, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.Close(context.Background(), snap.ID, &actorID))
	})

	s.Run("error: calling a closed entry", func() {
		snap := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.Status = domwr.StatusClosed
		}).BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)

		s.ErrorIs(s.commands.Call(context.Background(), snap.ID, actorID), domwr.ErrInvalidTransition)
	})

	s.Run("error: missing entry", func() {
		id := uuid.New()

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("entry", errors.New("no rows"), infra.KindNotFound)).Times(1)

		s.ErrorIs(s.commands.Call(context.Background(), id, actorID), commands.ErrEntryNotFound)
	})
}

// ================================================================================
// TestReassess
// ================================================================================

func (s *WaitingRoomCommandsTestSuite) TestReassess() {
	s.Run("success: updates priority and triage notes", func() {
		snap := builder.NewWaitingRoomEntryBuilder().BuildSnapshot()
		notes := "dehydrated, needs fluids soon"

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) error {
				s.Equal(7, entry.Priority())
				s.Equal(&notes, entry.TriageNotes())
				return nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryReassess, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.Reassess(context.Background(), snap.ID, 7, &notes))
	})

	s.Run("error: closed entry cannot be reassessed", func() {
		snap := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.Status = domwr.StatusClosed
		}).BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().WaitingRoomEntryByID(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)

		s.ErrorIs(s.commands.Reassess(context.Background(), snap.ID, 3, nil), domwr.ErrEntryClosed)
	})
}

// ================================================================================
// TestEnsureInService
// ================================================================================

func (s *WaitingRoomCommandsTestSuite) TestEnsureInService() {
	actorID := uuid.New()

	s.Run("success: moves entry and appointment into service", func() {
		apptBuilder := builder.NewAppointmentBuilder()
		apptSnap := apptBuilder.BuildSnapshot()
		entrySnap := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.ClinicID = apptBuilder.ClinicID
			b.AppointmentID = &apptBuilder.ID
			b.Status = domwr.StatusCalled
		}).BuildSnapshot()
		calledAt := entrySnap.ArrivedAt.Add(5 * time.Minute)
		entrySnap.CalledAt = &calledAt
		entrySnap.CalledBy = &actorID

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockReads.EXPECT().ActiveEntryByAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(&entrySnap, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry *domwr.Entry) error {
				s.Equal(domwr.StatusInService, entry.Status())
				return nil
			}).Times(1)
		s.mockAppts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, appt *domappt.Appointment) error {
				s.NotNil(appt.ServiceStartedAt())
				return nil
			}).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomServiceStart, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.EnsureInService(context.Background(), apptSnap.ID, actorID))
	})

	s.Run("success: already in service is a no-op", func() {
		apptBuilder := builder.NewAppointmentBuilder()
		apptSnap := apptBuilder.BuildSnapshot()
		entrySnap := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.ClinicID = apptBuilder.ClinicID
			b.AppointmentID = &apptBuilder.ID
			b.Status = domwr.StatusInService
		}).BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockReads.EXPECT().ActiveEntryByAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(&entrySnap, nil).Times(1)

		s.NoError(s.commands.EnsureInService(context.Background(), apptSnap.ID, actorID))
	})

	s.Run("error: no active entry for the appointment", func() {
		apptSnap := builder.NewAppointmentBuilder().BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockReads.EXPECT().ActiveEntryByAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(nil, infra.WrapRepoErr("entry", errors.New("no rows"), infra.KindNotFound)).Times(1)

		s.ErrorIs(s.commands.EnsureInService(context.Background(), apptSnap.ID, actorID), commands.ErrEntryNotFound)
	})

	s.Run("error: unknown appointment", func() {
		id := uuid.New()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("appointment", errors.New("no rows"), infra.KindNotFound)).Times(1)

		s.ErrorIs(s.commands.EnsureInService(context.Background(), id, actorID), commands.ErrAppointmentNotFound)
	})
}
