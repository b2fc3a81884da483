package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"vetclinic-scheduling/internal/domain/appointment"
	"vetclinic-scheduling/internal/infra/db"
	"vetclinic-scheduling/internal/infra/readstore"
	"vetclinic-scheduling/internal/infra/repository"
	"vetclinic-scheduling/internal/pkg/errs"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	appointmentRepo shared.AppointmentRepository
	waitingRoomRepo shared.WaitingRoomRepository
	eventOutbox     shared.EventOutbox
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository()
	}
	return t.appointmentRepo
}

func (t *pgTx) WaitingRoom() shared.WaitingRoomRepository {
	if t.waitingRoomRepo == nil {
		t.waitingRoomRepo = repository.NewWaitingRoomRepository()
	}
	return t.waitingRoomRepo
}

func (t *pgTx) Events() shared.EventOutbox {
	if t.eventOutbox == nil {
		t.eventOutbox = repository.NewEventOutboxRepository()
	}
	return t.eventOutbox
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	waitingRoomStore *readstore.WaitingRoomReadStore
}

func (r *commandReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.dbtx)
	}
	return r.appointmentStore
}

func (r *commandReads) waitingRoom() *readstore.WaitingRoomReadStore {
	if r.waitingRoomStore == nil {
		r.waitingRoomStore = readstore.NewWaitingRoomReadStore(r.dbtx)
	}
	return r.waitingRoomStore
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	return r.appointments().FindSnapshotByID(ctx, r.dbtx, id)
}

func (r *commandReads) HasOverlap(ctx context.Context, clinicID, practitionerID uuid.UUID, slot appointment.TimeSlot, excludeAppointmentID *uuid.UUID) (bool, error) {
	return r.appointments().HasOverlap(ctx, r.dbtx, clinicID, practitionerID, slot, excludeAppointmentID)
}

func (r *commandReads) WaitingRoomEntryByID(ctx context.Context, id uuid.UUID) (*shared.WaitingRoomEntrySnapshot, error) {
	return r.waitingRoom().FindSnapshotByID(ctx, r.dbtx, id)
}

func (r *commandReads) ActiveEntryByAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID) (*shared.WaitingRoomEntrySnapshot, error) {
	return r.waitingRoom().FindActiveSnapshotByAppointment(ctx, r.dbtx, clinicID, appointmentID)
}

func (r *commandReads) HasActiveEntryForAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID) (bool, error) {
	return r.waitingRoom().HasActiveEntryForAppointment(ctx, r.dbtx, clinicID, appointmentID)
}
