package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetclinic-scheduling/internal/pkg/errs"
	"vetclinic-scheduling/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PractitionerLocker serializes writes to one practitioner's agenda
// within a clinic. The exclusion constraint remains the hard
// guarantee; the lock turns most races into a fast failure instead
// of a constraint violation.
type PractitionerLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPractitionerLocker(client *redis.Client, ttl time.Duration) commands.PractitionerLocker {
	return &PractitionerLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *PractitionerLocker) WithPractitionerLock(ctx context.Context, clinicID, practitionerID uuid.UUID, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:agenda:%s:%s", clinicID.String(), practitionerID.String())
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to acquire practitioner lock")
	}
	if !ok {
		return commands.ErrPractitionerAgendaBusy
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

// Delete only when the token still matches so an expired lock held by
// another caller is never released by us.
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *PractitionerLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errs.Wrap(err, "failed to release practitioner lock")
	}
	return nil
}
