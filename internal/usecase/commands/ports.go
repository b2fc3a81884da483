package commands

import (
	"context"
	"time"

	"vetclinic-scheduling/internal/domain/staff"

	"github.com/google/uuid"
)

// Collaborator ports into the rest of the clinic platform. Adapters
// decide caching; the core only sees synchronous boolean answers.

type OwnerExistenceChecker interface {
	Exists(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

type AnimalExistenceChecker interface {
	Exists(ctx context.Context, animalID uuid.UUID) (bool, error)
}

type MembershipEligibilityChecker interface {
	IsUserEligibleForClinicAt(ctx context.Context, userID, clinicID uuid.UUID, at time.Time, allowedRoles []staff.Role) (bool, error)
}

// PractitionerLocker serializes the conflict check-then-insert
// sequence per clinic+practitioner across instances. The database
// exclusion constraint remains the hard guarantee underneath.
type PractitionerLocker interface {
	WithPractitionerLock(ctx context.Context, clinicID, practitionerID uuid.UUID, fn func(ctx context.Context) error) error
}
