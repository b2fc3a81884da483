package readstore

import (
	"context"
	"time"

	"vetclinic-scheduling/internal/domain/staff"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/infra/db"

	"github.com/google/uuid"
)

// Registry lookups against the clinic platform tables. Scheduling
// only asks existence and eligibility questions here, it never owns
// these rows.

type OwnerRegistry struct {
	db db.DBTX
}

func NewOwnerRegistry(dbtx db.DBTX) *OwnerRegistry {
	return &OwnerRegistry{db: dbtx}
}

func (r *OwnerRegistry) Exists(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, ownerID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check owner existence", err)
	}
	return exists, nil
}

type AnimalRegistry struct {
	db db.DBTX
}

func NewAnimalRegistry(dbtx db.DBTX) *AnimalRegistry {
	return &AnimalRegistry{db: dbtx}
}

func (r *AnimalRegistry) Exists(ctx context.Context, animalID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM animals WHERE id = $1)`, animalID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check animal existence", err)
	}
	return exists, nil
}

type MembershipRegistry struct {
	db db.DBTX
}

func NewMembershipRegistry(dbtx db.DBTX) *MembershipRegistry {
	return &MembershipRegistry{db: dbtx}
}

// IsUserEligibleForClinicAt requires a membership whose validity
// window covers the instant and whose role is in allowedRoles. An
// open-ended membership has valid_to NULL.
func (r *MembershipRegistry) IsUserEligibleForClinicAt(ctx context.Context, userID, clinicID uuid.UUID, at time.Time, allowedRoles []staff.Role) (bool, error) {
	roles := make([]string, 0, len(allowedRoles))
	for _, role := range allowedRoles {
		roles = append(roles, string(role))
	}

	var eligible bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM clinic_memberships
			WHERE user_id = $1
			  AND clinic_id = $2
			  AND role = ANY($3)
			  AND valid_from <= $4
			  AND (valid_to IS NULL OR valid_to > $4)
		)`,
		userID, clinicID, roles, at).Scan(&eligible)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check clinic membership eligibility", err)
	}
	return eligible, nil
}
