package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	result ErrorClassification
}

func (s stubClassifier) Classify(error) ErrorClassification { return s.result }

func TestExecWithRetry_SucceedsFirstTry(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: stubClassifier{result: Retryable}}

	calls := 0
	err := db.execWithRetry(context.Background(), func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestExecWithRetry_NonRetryableFailsOnce(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: stubClassifier{result: NonRetryable}}

	calls := 0
	err := db.execWithRetry(context.Background(), func() error {
		calls++
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestExecWithRetry_RetryableExhaustsAttempts(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: stubClassifier{result: Retryable}}

	calls := 0
	err := db.execWithRetry(context.Background(), func() error {
		calls++
		return errors.New("transient")
	})
	require.Error(t, err)
	require.Equal(t, maxExecAttempts, calls)
}

func TestExecWithRetry_RecoversMidway(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: stubClassifier{result: Retryable}}

	calls := 0
	err := db.execWithRetry(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestExecWithRetry_NoClassifier(t *testing.T) {
	db := &DB{logger: logger.Nop()}

	calls := 0
	err := db.execWithRetry(context.Background(), func() error {
		calls++
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	require.Equal(t, NonRetryable, c.Classify(nil))
	require.Equal(t, NonRetryable, c.Classify(errors.New("plain error")))
	require.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	require.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	require.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	require.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.SyntaxError}))
}
