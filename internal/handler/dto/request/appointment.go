package request

import (
	"strings"
	"time"

	"vetclinic-scheduling/internal/usecase/commands"

	"github.com/google/uuid"
)

type ScheduleAppointmentRequest struct {
	ClinicID        uuid.UUID  `json:"clinic_id" binding:"required"`
	OwnerID         *uuid.UUID `json:"owner_id,omitempty"`
	AnimalID        *uuid.UUID `json:"animal_id,omitempty"`
	PractitionerID  *uuid.UUID `json:"practitioner_id,omitempty"`
	Start           time.Time  `json:"start" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required"`
	Reason          *string    `json:"reason,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

func (r ScheduleAppointmentRequest) ToInput() commands.ScheduleAppointmentInput {
	return commands.ScheduleAppointmentInput{
		ClinicID:        r.ClinicID,
		OwnerID:         r.OwnerID,
		AnimalID:        r.AnimalID,
		PractitionerID:  r.PractitionerID,
		Start:           r.Start,
		DurationMinutes: r.DurationMinutes,
		Reason:          trimPtr(r.Reason),
		Notes:           trimPtr(r.Notes),
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
