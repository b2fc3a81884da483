package request

import (
	"vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	ArrivalMode string `json:"arrival_mode" binding:"required"`
	Priority    int    `json:"priority"`
}

func (r CheckInRequest) ToInput(appointmentID uuid.UUID) (commands.CheckInInput, error) {
	mode, err := waitingroom.NewArrivalMode(r.ArrivalMode)
	if err != nil {
		return commands.CheckInInput{}, err
	}
	return commands.CheckInInput{
		AppointmentID: appointmentID,
		ArrivalMode:   mode,
		Priority:      r.Priority,
	}, nil
}

type WalkInRequest struct {
	ClinicID               uuid.UUID  `json:"clinic_id" binding:"required"`
	OwnerID                *uuid.UUID `json:"owner_id,omitempty"`
	AnimalID               *uuid.UUID `json:"animal_id,omitempty"`
	FoundAnimalDescription *string    `json:"found_animal_description,omitempty"`
	ArrivalMode            string     `json:"arrival_mode" binding:"required"`
	Priority               int        `json:"priority"`
	TriageNotes            *string    `json:"triage_notes,omitempty"`
}

func (r WalkInRequest) ToInput() (commands.WalkInInput, error) {
	mode, err := waitingroom.NewArrivalMode(r.ArrivalMode)
	if err != nil {
		return commands.WalkInInput{}, err
	}
	return commands.WalkInInput{
		ClinicID:               r.ClinicID,
		OwnerID:                r.OwnerID,
		AnimalID:               r.AnimalID,
		FoundAnimalDescription: trimPtr(r.FoundAnimalDescription),
		ArrivalMode:            mode,
		Priority:               r.Priority,
		TriageNotes:            trimPtr(r.TriageNotes),
	}, nil
}

type ReassessRequest struct {
	Priority    int     `json:"priority"`
	TriageNotes *string `json:"triage_notes,omitempty"`
}
