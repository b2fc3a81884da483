//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domappt "vetclinic-scheduling/internal/domain/appointment"
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

type AppointmentCommandsTestSuite struct {
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
	mockMemberships *commandsmock.MockMembershipEligibilityChecker
	mockLocker      *commandsmock.MockPractitionerLocker
	clock           *clock.MockClock
	commands        commands.AppointmentCommands
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockAppts = sharedmock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockWaitingRoom = sharedmock.NewMockWaitingRoomRepository(s.mockCtrl)
	s.mockEvents = sharedmock.NewMockEventOutbox(s.mockCtrl)
	s.mockOwners = commandsmock.NewMockOwnerExistenceChecker(s.mockCtrl)
	s.mockAnimals = commandsmock.NewMockAnimalExistenceChecker(s.mockCtrl)
	s.mockMemberships = commandsmock.NewMockMembershipEligibilityChecker(s.mockCtrl)
	s.mockLocker = commandsmock.NewMockPractitionerLocker(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))

	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Appointments().Return(s.mockAppts).AnyTimes()
	s.mockTx.EXPECT().WaitingRoom().Return(s.mockWaitingRoom).AnyTimes()
	s.mockTx.EXPECT().Events().Return(s.mockEvents).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewAppointmentCommands(
		s.mockUoW, s.mockOwners, s.mockAnimals, s.mockMemberships, s.mockLocker, s.clock)
}

func (s *AppointmentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

// expectWithin wires the unit of work so the transactional closure runs
// against the suite's mock Tx.
func (s *AppointmentCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
}

// expectLockPassthrough makes the agenda lock transparent so the body
// under test executes.
func (s *AppointmentCommandsTestSuite) expectLockPassthrough() {
	s.mockLocker.EXPECT().WithPractitionerLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ uuid.UUID, fn func(context.Context) error) error {
			return fn(ctx)
		}).Times(1)
}

func scheduleInputFrom(b *builder.AppointmentBuilder) commands.ScheduleAppointmentInput {
	return commands.ScheduleAppointmentInput{
		ClinicID:        b.ClinicID,
		OwnerID:         b.OwnerID,
		AnimalID:        b.AnimalID,
		PractitionerID:  b.PractitionerID,
		Start:           b.Start,
		DurationMinutes: b.DurationMin,
		Reason:          b.Reason,
		Notes:           b.Notes,
	}
}

// ================================================================================
// TestSchedule
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestSchedule() {
	s.Run("success: schedules with practitioner and returns id", func() {
		b := builder.NewAppointmentBuilder()
		input := scheduleInputFrom(b)
		createdID := uuid.New()

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.mockMemberships.EXPECT().
			IsUserEligibleForClinicAt(gomock.Any(), *input.PractitionerID, input.ClinicID, s.clock.Now(), gomock.Any()).
			Return(true, nil).Times(1)
		s.expectLockPassthrough()
		s.expectWithin()
		s.mockReads.EXPECT().
			HasOverlap(gomock.Any(), input.ClinicID, *input.PractitionerID, gomock.Any(), nil).
			Return(false, nil).Times(1)
		s.mockAppts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(createdID, nil).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicAppointmentScheduled, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		id, err := s.commands.Schedule(context.Background(), input)
		s.NoError(err)
		s.Equal(createdID, id)
	})

	s.Run("success: no practitioner skips eligibility, lock and overlap check", func() {
		b := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.PractitionerID = nil
		})
		input := scheduleInputFrom(b)
		createdID := uuid.New()

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.expectWithin()
		s.mockAppts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(createdID, nil).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicAppointmentScheduled, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		id, err := s.commands.Schedule(context.Background(), input)
		s.NoError(err)
		s.Equal(createdID, id)
	})

	s.Run("error: non-positive duration rejected before any lookup", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())
		input.DurationMinutes = 0

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, domappt.ErrInvalidDuration)
	})

	s.Run("error: unknown owner fails before animal lookup", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(false, nil).Times(1)

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, commands.ErrUnknownOwner)
	})

	s.Run("error: unknown animal fails before eligibility check", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(false, nil).Times(1)

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, commands.ErrUnknownAnimal)
	})

	s.Run("error: ineligible practitioner", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.mockMemberships.EXPECT().
			IsUserEligibleForClinicAt(gomock.Any(), *input.PractitionerID, input.ClinicID, s.clock.Now(), gomock.Any()).
			Return(false, nil).Times(1)

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, commands.ErrPractitionerNotEligible)
	})

	s.Run("error: overlapping slot reports double booking", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.mockMemberships.EXPECT().
			IsUserEligibleForClinicAt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)
		s.expectLockPassthrough()
		s.expectWithin()
		s.mockReads.EXPECT().
			HasOverlap(gomock.Any(), input.ClinicID, *input.PractitionerID, gomock.Any(), nil).
			Return(true, nil).Times(1)

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, commands.ErrPractitionerDoubleBooked)
	})

	s.Run("error: exclusion constraint violation maps to double booking", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.mockMemberships.EXPECT().
			IsUserEligibleForClinicAt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)
		s.expectLockPassthrough()
		s.expectWithin()
		s.mockReads.EXPECT().
			HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), nil).
			Return(false, nil).Times(1)
		s.mockAppts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("create appointment", errors.New("23P01"), infra.KindConflict)).Times(1)

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, commands.ErrPractitionerDoubleBooked)
	})

	s.Run("error: busy agenda lock surfaces as conflict", func() {
		input := scheduleInputFrom(builder.NewAppointmentBuilder())

		s.mockOwners.EXPECT().Exists(gomock.Any(), *input.OwnerID).Return(true, nil).Times(1)
		s.mockAnimals.EXPECT().Exists(gomock.Any(), *input.AnimalID).Return(true, nil).Times(1)
		s.mockMemberships.EXPECT().
			IsUserEligibleForClinicAt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)
		s.mockLocker.EXPECT().WithPractitionerLock(gomock.Any(), input.ClinicID, *input.PractitionerID, gomock.Any()).
			Return(commands.ErrPractitionerAgendaBusy).Times(1)

		_, err := s.commands.Schedule(context.Background(), input)
		s.ErrorIs(err, commands.ErrPractitionerAgendaBusy)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestCancel() {
	s.Run("success: cancels and closes the linked active entry", func() {
		apptBuilder := builder.NewAppointmentBuilder()
		apptSnap := apptBuilder.BuildSnapshot()
		entrySnap := builder.NewWaitingRoomEntryBuilder().With(func(b *builder.WaitingRoomEntryBuilder) {
			b.ClinicID = apptBuilder.ClinicID
			b.AppointmentID = &apptBuilder.ID
		}).BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockAppts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicAppointmentCancelled, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		s.mockReads.EXPECT().ActiveEntryByAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(&entrySnap, nil).Times(1)
		s.mockWaitingRoom.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicWaitingRoomEntryClosed, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.Cancel(context.Background(), apptSnap.ID))
	})

	s.Run("success: no active entry means nothing extra to close", func() {
		apptSnap := builder.NewAppointmentBuilder().BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockAppts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockEvents.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), shared.TopicAppointmentCancelled, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		s.mockReads.EXPECT().ActiveEntryByAppointment(gomock.Any(), apptSnap.ClinicID, apptSnap.ID).
			Return(nil, infra.WrapRepoErr("entry", errors.New("no rows"), infra.KindNotFound)).Times(1)

		s.NoError(s.commands.Cancel(context.Background(), apptSnap.ID))
	})

	s.Run("error: missing appointment", func() {
		id := uuid.New()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("appointment", errors.New("no rows"), infra.KindNotFound)).Times(1)

		s.ErrorIs(s.commands.Cancel(context.Background(), id), commands.ErrAppointmentNotFound)
	})

	s.Run("error: terminal status rejects cancellation", func() {
		apptSnap := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.Status = domappt.StatusCompleted
		}).BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)

		s.ErrorIs(s.commands.Cancel(context.Background(), apptSnap.ID), domappt.ErrInvalidTransition)
	})
}

// ================================================================================
// Transitions
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestTransitions() {
	type transitionCase struct {
		name       string
		run        func(ctx context.Context, id uuid.UUID) error
		topic      string
		fromStatus domappt.Status
	}

	testCases := []transitionCase{
		{name: "complete", run: s.commands.Complete, topic: shared.TopicAppointmentCompleted, fromStatus: domappt.StatusPlanned},
		{name: "no-show", run: s.commands.MarkNoShow, topic: shared.TopicAppointmentNoShow, fromStatus: domappt.StatusPlanned},
		{name: "start service", run: s.commands.StartService, topic: shared.TopicAppointmentServiceStart, fromStatus: domappt.StatusPlanned},
	}

	for _, tc := range testCases {
		s.Run("success: "+tc.name, func() {
			apptSnap := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
				b.Status = tc.fromStatus
			}).BuildSnapshot()

			s.expectWithin()
			s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
			s.mockAppts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
			s.mockEvents.EXPECT().
				Enqueue(gomock.Any(), gomock.Any(), tc.topic, gomock.Any(), gomock.Any()).
				Return(nil).Times(1)

			s.NoError(tc.run(context.Background(), apptSnap.ID))
		})

		s.Run("error: "+tc.name+" on cancelled appointment", func() {
			apptSnap := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
				b.Status = domappt.StatusCancelled
			}).BuildSnapshot()

			s.expectWithin()
			s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)

			s.ErrorIs(tc.run(context.Background(), apptSnap.ID), domappt.ErrInvalidTransition)
		})
	}

	s.Run("error: update failure marked as database failure", func() {
		apptSnap := builder.NewAppointmentBuilder().BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().AppointmentByID(gomock.Any(), apptSnap.ID).Return(&apptSnap, nil).Times(1)
		s.mockAppts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset")).Times(1)

		s.ErrorIs(s.commands.Complete(context.Background(), apptSnap.ID), commands.ErrDatabaseOperationFailed)
	})
}
