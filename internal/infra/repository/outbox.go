package repository

import (
	"context"
	"time"

	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/infra/db"
)

// EventOutboxRepository writes domain events into the outbox table in
// the same transaction as the aggregate change. The relay that ships
// rows to the bus lives outside this service.
type EventOutboxRepository struct{}

func NewEventOutboxRepository() *EventOutboxRepository {
	return &EventOutboxRepository{}
}

const insertEventSQL = `
INSERT INTO domain_events (topic, payload, occurred_at)
VALUES ($1, $2, $3)`

func (r *EventOutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, topic string, payload []byte, occurredAt time.Time) error {
	if _, err := tx.Exec(ctx, insertEventSQL, topic, payload, occurredAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue domain event", err)
	}
	return nil
}
