package readstore

import (
	"context"
	"time"

	"vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/infra/db"
	"vetclinic-scheduling/internal/pkg/pgconv"
	"vetclinic-scheduling/internal/usecase/queries"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type WaitingRoomReadStore struct {
	db db.DBTX
}

func NewWaitingRoomReadStore(dbtx db.DBTX) *WaitingRoomReadStore {
	return &WaitingRoomReadStore{db: dbtx}
}

const selectEntrySQL = `
SELECT id, clinic_id, origin, arrival_mode, appointment_id,
       owner_id, animal_id, found_animal_description,
       priority, triage_notes, status, arrived_at,
       called_at, service_started_at, closed_at,
       called_by, service_started_by, closed_by
FROM waiting_room_entries`

type entryRow struct {
	ID                     uuid.UUID
	ClinicID               uuid.UUID
	Origin                 string
	ArrivalMode            string
	AppointmentID          pgtype.UUID
	OwnerID                pgtype.UUID
	AnimalID               pgtype.UUID
	FoundAnimalDescription pgtype.Text
	Priority               int32
	TriageNotes            pgtype.Text
	Status                 string
	ArrivedAt              time.Time
	CalledAt               pgtype.Timestamptz
	ServiceStartedAt       pgtype.Timestamptz
	ClosedAt               pgtype.Timestamptz
	CalledBy               pgtype.UUID
	ServiceStartedBy       pgtype.UUID
	ClosedBy               pgtype.UUID
}

func scanEntryRow(row pgx.Row) (entryRow, error) {
	var r entryRow
	err := row.Scan(
		&r.ID, &r.ClinicID, &r.Origin, &r.ArrivalMode, &r.AppointmentID,
		&r.OwnerID, &r.AnimalID, &r.FoundAnimalDescription,
		&r.Priority, &r.TriageNotes, &r.Status, &r.ArrivedAt,
		&r.CalledAt, &r.ServiceStartedAt, &r.ClosedAt,
		&r.CalledBy, &r.ServiceStartedBy, &r.ClosedBy,
	)
	return r, err
}

func (s *WaitingRoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WaitingRoomEntryView, error) {
	row, err := scanEntryRow(s.db.QueryRow(ctx, selectEntrySQL+" WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waiting room entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waiting room entry by ID", err)
	}
	return rowToEntryView(row), nil
}

// FindActiveByClinic returns every non-closed entry for the clinic.
// Ordering is arrival order only; triage ranking happens in the query
// layer so the rule lives in one place.
func (s *WaitingRoomReadStore) FindActiveByClinic(ctx context.Context, clinicID uuid.UUID) ([]*queries.WaitingRoomEntryView, error) {
	rows, err := s.db.Query(ctx,
		selectEntrySQL+` WHERE clinic_id = $1 AND status <> 'closed' ORDER BY arrived_at, id`,
		clinicID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active waiting room entries", err)
	}
	defer rows.Close()

	var result []*queries.WaitingRoomEntryView
	for rows.Next() {
		r, scanErr := scanEntryRow(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan waiting room entry row", scanErr)
		}
		result = append(result, rowToEntryView(r))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waiting room entry rows", err)
	}
	return result, nil
}

func (s *WaitingRoomReadStore) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.WaitingRoomEntrySnapshot, error) {
	row, err := scanEntryRow(dbtx.QueryRow(ctx, selectEntrySQL+" WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waiting room entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waiting room entry snapshot", err)
	}
	return rowToEntrySnapshot(row), nil
}

func (s *WaitingRoomReadStore) FindActiveSnapshotByAppointment(ctx context.Context, dbtx db.DBTX, clinicID, appointmentID uuid.UUID) (*shared.WaitingRoomEntrySnapshot, error) {
	row, err := scanEntryRow(dbtx.QueryRow(ctx,
		selectEntrySQL+` WHERE clinic_id = $1 AND appointment_id = $2 AND status <> 'closed'`,
		clinicID, appointmentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active waiting room entry not found for appointment", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active waiting room entry for appointment", err)
	}
	return rowToEntrySnapshot(row), nil
}

func (s *WaitingRoomReadStore) HasActiveEntryForAppointment(ctx context.Context, dbtx db.DBTX, clinicID, appointmentID uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM waiting_room_entries
			WHERE clinic_id = $1 AND appointment_id = $2 AND status <> 'closed'
		)`,
		clinicID, appointmentID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active waiting room entry", err)
	}
	return exists, nil
}

func rowToEntryView(r entryRow) *queries.WaitingRoomEntryView {
	return &queries.WaitingRoomEntryView{
		ID:                     r.ID,
		ClinicID:               r.ClinicID,
		Origin:                 r.Origin,
		ArrivalMode:            r.ArrivalMode,
		AppointmentID:          pgconv.UUIDPtrFromPgtype(r.AppointmentID),
		OwnerID:                pgconv.UUIDPtrFromPgtype(r.OwnerID),
		AnimalID:               pgconv.UUIDPtrFromPgtype(r.AnimalID),
		FoundAnimalDescription: pgconv.StringPtrFromPgtype(r.FoundAnimalDescription),
		Priority:               int(r.Priority),
		TriageNotes:            pgconv.StringPtrFromPgtype(r.TriageNotes),
		Status:                 r.Status,
		ArrivedAt:              r.ArrivedAt,
		CalledAt:               pgconv.TimePtrFromPgtype(r.CalledAt),
		ServiceStartedAt:       pgconv.TimePtrFromPgtype(r.ServiceStartedAt),
		ClosedAt:               pgconv.TimePtrFromPgtype(r.ClosedAt),
	}
}

func rowToEntrySnapshot(r entryRow) *shared.WaitingRoomEntrySnapshot {
	return &shared.WaitingRoomEntrySnapshot{
		ID:                     r.ID,
		ClinicID:               r.ClinicID,
		Origin:                 waitingroom.Origin(r.Origin),
		ArrivalMode:            waitingroom.ArrivalMode(r.ArrivalMode),
		AppointmentID:          pgconv.UUIDPtrFromPgtype(r.AppointmentID),
		OwnerID:                pgconv.UUIDPtrFromPgtype(r.OwnerID),
		AnimalID:               pgconv.UUIDPtrFromPgtype(r.AnimalID),
		FoundAnimalDescription: pgconv.StringPtrFromPgtype(r.FoundAnimalDescription),
		Priority:               int(r.Priority),
		TriageNotes:            pgconv.StringPtrFromPgtype(r.TriageNotes),
		Status:                 waitingroom.Status(r.Status),
		ArrivedAt:              r.ArrivedAt,
		CalledAt:               pgconv.TimePtrFromPgtype(r.CalledAt),
		ServiceStartedAt:       pgconv.TimePtrFromPgtype(r.ServiceStartedAt),
		ClosedAt:               pgconv.TimePtrFromPgtype(r.ClosedAt),
		CalledBy:               pgconv.UUIDPtrFromPgtype(r.CalledBy),
		ServiceStartedBy:       pgconv.UUIDPtrFromPgtype(r.ServiceStartedBy),
		ClosedBy:               pgconv.UUIDPtrFromPgtype(r.ClosedBy),
	}
}
