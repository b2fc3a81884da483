package response

import (
	"time"

	"vetclinic-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
)

type WaitingRoomEntryResponse struct {
	ID                     uuid.UUID  `json:"id"`
	ClinicID               uuid.UUID  `json:"clinic_id"`
	Origin                 string     `json:"origin"`
	ArrivalMode            string     `json:"arrival_mode"`
	AppointmentID          *uuid.UUID `json:"appointment_id,omitempty"`
	OwnerID                *uuid.UUID `json:"owner_id,omitempty"`
	AnimalID               *uuid.UUID `json:"animal_id,omitempty"`
	FoundAnimalDescription *string    `json:"found_animal_description,omitempty"`
	Priority               int        `json:"priority"`
	TriageNotes            *string    `json:"triage_notes,omitempty"`
	Status                 string     `json:"status"`
	ArrivedAt              time.Time  `json:"arrived_at"`
	CalledAt               *time.Time `json:"called_at,omitempty"`
	ServiceStartedAt       *time.Time `json:"service_started_at,omitempty"`
	ClosedAt               *time.Time `json:"closed_at,omitempty"`
}

type TriageBoardRowResponse struct {
	Position int                      `json:"position"`
	Entry    WaitingRoomEntryResponse `json:"entry"`
}

func FromWaitingRoomEntryView(v *queries.WaitingRoomEntryView) *WaitingRoomEntryResponse {
	return &WaitingRoomEntryResponse{
		ID:                     v.ID,
		ClinicID:               v.ClinicID,
		Origin:                 v.Origin,
		ArrivalMode:            v.ArrivalMode,
		AppointmentID:          v.AppointmentID,
		OwnerID:                v.OwnerID,
		AnimalID:               v.AnimalID,
		FoundAnimalDescription: v.FoundAnimalDescription,
		Priority:               v.Priority,
		TriageNotes:            v.TriageNotes,
		Status:                 v.Status,
		ArrivedAt:              v.ArrivedAt,
		CalledAt:               v.CalledAt,
		ServiceStartedAt:       v.ServiceStartedAt,
		ClosedAt:               v.ClosedAt,
	}
}

func FromTriageBoardRow(row *queries.TriageBoardRow) *TriageBoardRowResponse {
	entry := row.Entry
	return &TriageBoardRowResponse{
		Position: row.Position,
		Entry:    *FromWaitingRoomEntryView(&entry),
	}
}
