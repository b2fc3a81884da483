package repository

import (
	"context"

	"vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/infra/db"
	"vetclinic-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WaitingRoomRepository struct{}

func NewWaitingRoomRepository() *WaitingRoomRepository {
	return &WaitingRoomRepository{}
}

const insertEntrySQL = `
INSERT INTO waiting_room_entries (
	id, clinic_id, origin, arrival_mode, appointment_id,
	owner_id, animal_id, found_animal_description,
	priority, triage_notes, status, arrived_at,
	called_at, service_started_at, closed_at,
	called_by, service_started_by, closed_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
RETURNING id`

func (r *WaitingRoomRepository) Create(ctx context.Context, tx db.DBTX, entry *waitingroom.Entry) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertEntrySQL,
		entry.ID(),
		entry.ClinicID(),
		entry.Origin().String(),
		entry.ArrivalMode().String(),
		pgconv.UUIDPtrToPgtype(entry.AppointmentID()),
		pgconv.UUIDPtrToPgtype(entry.OwnerID()),
		pgconv.UUIDPtrToPgtype(entry.AnimalID()),
		pgconv.StringPtrToPgtype(entry.FoundAnimalDescription()),
		entry.Priority(),
		pgconv.StringPtrToPgtype(entry.TriageNotes()),
		entry.Status().String(),
		pgconv.TimeToPgtype(entry.ArrivedAt()),
		pgconv.TimePtrToPgtype(entry.CalledAt()),
		pgconv.TimePtrToPgtype(entry.ServiceStartedAt()),
		pgconv.TimePtrToPgtype(entry.ClosedAt()),
		pgconv.UUIDPtrToPgtype(entry.CalledBy()),
		pgconv.UUIDPtrToPgtype(entry.ServiceStartedBy()),
		pgconv.UUIDPtrToPgtype(entry.ClosedBy()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create waiting room entry", err, infra.KindFromPgError(err))
	}
	return id, nil
}

const updateEntrySQL = `
UPDATE waiting_room_entries
SET priority = $2,
    triage_notes = $3,
    status = $4,
    called_at = $5,
    service_started_at = $6,
    closed_at = $7,
    called_by = $8,
    service_started_by = $9,
    closed_by = $10
WHERE id = $1`

func (r *WaitingRoomRepository) Update(ctx context.Context, tx db.DBTX, entry *waitingroom.Entry) error {
	tag, err := tx.Exec(ctx, updateEntrySQL,
		entry.ID(),
		entry.Priority(),
		pgconv.StringPtrToPgtype(entry.TriageNotes()),
		entry.Status().String(),
		pgconv.TimePtrToPgtype(entry.CalledAt()),
		pgconv.TimePtrToPgtype(entry.ServiceStartedAt()),
		pgconv.TimePtrToPgtype(entry.ClosedAt()),
		pgconv.UUIDPtrToPgtype(entry.CalledBy()),
		pgconv.UUIDPtrToPgtype(entry.ServiceStartedBy()),
		pgconv.UUIDPtrToPgtype(entry.ClosedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update waiting room entry", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waiting room entry not found for update", nil, infra.KindNotFound)
	}
	return nil
}
