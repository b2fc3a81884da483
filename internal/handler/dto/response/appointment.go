package response

import (
	"time"

	"vetclinic-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type AppointmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	ClinicID         uuid.UUID  `json:"clinic_id"`
	OwnerID          *uuid.UUID `json:"owner_id,omitempty"`
	AnimalID         *uuid.UUID `json:"animal_id,omitempty"`
	PractitionerID   *uuid.UUID `json:"practitioner_id,omitempty"`
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	DurationMinutes  int        `json:"duration_minutes"`
	Status           string     `json:"status"`
	Reason           *string    `json:"reason,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	ServiceStartedAt *time.Time `json:"service_started_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               v.ID,
		ClinicID:         v.ClinicID,
		OwnerID:          v.OwnerID,
		AnimalID:         v.AnimalID,
		PractitionerID:   v.PractitionerID,
		Start:            v.Start,
		End:              v.End,
		DurationMinutes:  v.DurationMinutes,
		Status:           v.Status,
		Reason:           v.Reason,
		Notes:            v.Notes,
		ServiceStartedAt: v.ServiceStartedAt,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}
