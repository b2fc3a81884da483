//go:build unit

package uow

import (
	"testing"
	"time"

	"vetclinic-scheduling/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "serialization failure is retryable",
			err:  &pgconn.PgError{Code: pgErrCodeSerializationFailure},
			want: true,
		},
		{
			name: "deadlock is retryable",
			err:  &pgconn.PgError{Code: pgErrCodeDeadlockDetected},
			want: true,
		},
		{
			name: "wrapped serialization failure is still retryable",
			err:  errs.Wrap(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, "commit failed"),
			want: true,
		},
		{
			name: "unique violation is not retryable",
			err:  &pgconn.PgError{Code: "23505"},
			want: false,
		},
		{
			name: "exclusion violation is not retryable",
			err:  &pgconn.PgError{Code: "23P01"},
			want: false,
		},
		{
			name: "non-postgres error is not retryable",
			err:  errs.New("connection reset"),
			want: false,
		},
		{
			name: "nil error is not retryable",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	const maxRetries = 3
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	tests := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{name: "retryable error before budget exhausted", err: retryable, attempt: 0, want: true},
		{name: "retryable error on last allowed attempt", err: retryable, attempt: maxRetries - 1, want: true},
		{name: "retryable error after budget exhausted", err: retryable, attempt: maxRetries, want: false},
		{name: "non-retryable error never retries", err: errs.New("boom"), attempt: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRetry(tt.err, tt.attempt, maxRetries))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		exponential := time.Duration(1<<attempt) * base
		maxJitter := exponential / 5

		// Jitter is random; sample a few times to pin the bounds.
		for i := 0; i < 10; i++ {
			wait := calculateBackoff(attempt, base)
			assert.GreaterOrEqual(t, wait, exponential,
				"attempt %d: backoff below exponential floor", attempt)
			assert.Less(t, wait, exponential+maxJitter,
				"attempt %d: backoff above jitter ceiling", attempt)
		}
	}
}
