package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
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

type WaitingRoomEntryView struct {
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

// TriageBoardRow is an entry plus its derived queue position.
type TriageBoardRow struct {
	Position int                  `json:"position"`
	Entry    WaitingRoomEntryView `json:"entry"`
}
