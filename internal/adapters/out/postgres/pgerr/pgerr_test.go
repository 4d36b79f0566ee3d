package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("should return nil for nil", func(t *testing.T) {
		assert.NoError(t, pgerr.Translate("op", nil))
	})

	for _, code := range []string{pgerr.SerializationFailure, pgerr.DeadlockDetected, pgerr.LockNotAvailable} {
		t.Run("should map "+code+" to conflict", func(t *testing.T) {
			cause := fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, Message: "contention"})

			err := pgerr.Translate("lock product", cause)

			require.ErrorIs(t, err, errs.ErrConflict)
			var pgErr *pgconn.PgError
			require.ErrorAs(t, err, &pgErr)
			assert.Equal(t, code, pgErr.Code)
			assert.Contains(t, err.Error(), "lock product")
		})
	}

	t.Run("should keep other driver errors", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23505", Message: "duplicate key"}

		err := pgerr.Translate("add product", cause)

		assert.NotErrorIs(t, err, errs.ErrConflict)
		assert.Same(t, cause, err)
	})

	t.Run("should keep plain errors", func(t *testing.T) {
		cause := errors.New("connection refused")

		assert.Same(t, cause, pgerr.Translate("op", cause))
	})
}
