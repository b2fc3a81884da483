package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByClinicBetween(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*AppointmentView, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByClinicBetween(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByClinicBetween(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*AppointmentView, error) {
	return q.store.FindByClinicBetween(ctx, clinicID, from, to)
}
