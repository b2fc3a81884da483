package readstore

import (
	"context"
	"time"

	domappt "vetclinic-scheduling/internal/domain/appointment"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/infra/db"
	"vetclinic-scheduling/internal/pkg/pgconv"
	"vetclinic-scheduling/internal/usecase/queries"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const selectAppointmentSQL = `
SELECT id, clinic_id, owner_id, animal_id, practitioner_id,
       start_at, duration_min, status, reason, notes,
       service_started_at, created_at, updated_at
FROM appointments`

type appointmentRow struct {
	ID               uuid.UUID
	ClinicID         uuid.UUID
	OwnerID          pgtype.UUID
	AnimalID         pgtype.UUID
	PractitionerID   pgtype.UUID
	StartAt          time.Time
	DurationMin      int32
	Status           string
	Reason           pgtype.Text
	Notes            pgtype.Text
	ServiceStartedAt pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func scanAppointmentRow(row pgx.Row) (appointmentRow, error) {
	var r appointmentRow
	err := row.Scan(
		&r.ID, &r.ClinicID, &r.OwnerID, &r.AnimalID, &r.PractitionerID,
		&r.StartAt, &r.DurationMin, &r.Status, &r.Reason, &r.Notes,
		&r.ServiceStartedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := scanAppointmentRow(s.db.QueryRow(ctx, selectAppointmentSQL+" WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return rowToAppointmentView(row), nil
}

func (s *AppointmentReadStore) FindByClinicBetween(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx,
		selectAppointmentSQL+` WHERE clinic_id = $1 AND start_at >= $2 AND start_at < $3 ORDER BY start_at, id`,
		clinicID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments for clinic", err)
	}
	defer rows.Close()

	var result []*queries.AppointmentView
	for rows.Next() {
		r, scanErr := scanAppointmentRow(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", scanErr)
		}
		result = append(result, rowToAppointmentView(r))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return result, nil
}

func (s *AppointmentReadStore) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	row, err := scanAppointmentRow(dbtx.QueryRow(ctx, selectAppointmentSQL+" WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment snapshot", err)
	}
	return rowToAppointmentSnapshot(row), nil
}

// HasOverlap applies the half-open overlap rule to planned
// appointments of the practitioner in the clinic. The exclusion
// constraint repeats the same predicate as the hard guarantee.
const hasOverlapSQL = `
SELECT EXISTS (
	SELECT 1
	FROM appointments
	WHERE clinic_id = $1
	  AND practitioner_id = $2
	  AND status = 'planned'
	  AND ($4::uuid IS NULL OR id <> $4)
	  AND tstzrange(start_at, start_at + make_interval(mins => duration_min)) && $3::tstzrange
)`

func (s *AppointmentReadStore) HasOverlap(
	ctx context.Context,
	dbtx db.DBTX,
	clinicID, practitionerID uuid.UUID,
	slot domappt.TimeSlot,
	excludeAppointmentID *uuid.UUID,
) (bool, error) {
	var overlap bool
	err := dbtx.QueryRow(ctx, hasOverlapSQL,
		clinicID, practitionerID, slot.ToTstzrange(), excludeAppointmentID,
	).Scan(&overlap)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot overlap", err)
	}
	return overlap, nil
}

func rowToAppointmentView(r appointmentRow) *queries.AppointmentView {
	start := r.StartAt
	duration := int(r.DurationMin)
	return &queries.AppointmentView{
		ID:               r.ID,
		ClinicID:         r.ClinicID,
		OwnerID:          pgconv.UUIDPtrFromPgtype(r.OwnerID),
		AnimalID:         pgconv.UUIDPtrFromPgtype(r.AnimalID),
		PractitionerID:   pgconv.UUIDPtrFromPgtype(r.PractitionerID),
		Start:            start,
		End:              start.Add(time.Duration(duration) * time.Minute),
		DurationMinutes:  duration,
		Status:           r.Status,
		Reason:           pgconv.StringPtrFromPgtype(r.Reason),
		Notes:            pgconv.StringPtrFromPgtype(r.Notes),
		ServiceStartedAt: pgconv.TimePtrFromPgtype(r.ServiceStartedAt),
		CreatedAt:        pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(r.UpdatedAt),
	}
}

func rowToAppointmentSnapshot(r appointmentRow) *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:               r.ID,
		ClinicID:         r.ClinicID,
		OwnerID:          pgconv.UUIDPtrFromPgtype(r.OwnerID),
		AnimalID:         pgconv.UUIDPtrFromPgtype(r.AnimalID),
		PractitionerID:   pgconv.UUIDPtrFromPgtype(r.PractitionerID),
		Start:            r.StartAt,
		DurationMin:      int(r.DurationMin),
		Status:           domappt.Status(r.Status),
		Reason:           pgconv.StringPtrFromPgtype(r.Reason),
		Notes:            pgconv.StringPtrFromPgtype(r.Notes),
		ServiceStartedAt: pgconv.TimePtrFromPgtype(r.ServiceStartedAt),
		CreatedAt:        pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(r.UpdatedAt),
	}
}
