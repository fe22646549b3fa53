package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasklist-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "some_constraint"}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, mapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		err := mapError(sql.ErrNoRows)
		assert.True(t, store.IsNotFoundError(err))
	})

	t.Run("wrapped no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		err := mapError(fmt.Errorf("query failed: %w", sql.ErrNoRows))
		assert.True(t, store.IsNotFoundError(err))
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()
		err := mapError(pgError(uniqueViolationCode))
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("foreign key violation maps to invalid entity", func(t *testing.T) {
		t.Parallel()
		err := mapError(pgError(foreignKeyViolationCode))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "some_constraint")
	})

	t.Run("check violation maps to invalid entity", func(t *testing.T) {
		t.Parallel()
		err := mapError(pgError(checkViolationCode))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		assert.Same(t, cause, mapError(cause))
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, classifyError("task", "create", nil))
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		t.Parallel()
		var storeErr *store.StoreError

		err := classifyError("task", "get", sql.ErrNoRows)
		assert.True(t, store.IsNotFoundError(err))
		assert.False(t, errors.As(err, &storeErr))

		err = classifyError("user", "create", pgError(uniqueViolationCode))
		assert.True(t, store.IsDuplicateError(err))
		assert.False(t, errors.As(err, &storeErr))

		err = classifyError("task_list", "create", pgError(foreignKeyViolationCode))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.False(t, errors.As(err, &storeErr))
	})

	t.Run("unclassified errors carry entity and operation", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")

		err := classifyError("task_list", "update", cause)

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "task_list", storeErr.Entity)
		assert.Equal(t, "update", storeErr.Operation)
		assert.ErrorIs(t, err, cause)
	})
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(pgError(uniqueViolationCode)))
	assert.False(t, isUniqueViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))

	assert.True(t, isForeignKeyViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, isForeignKeyViolation(pgError(uniqueViolationCode)))
}

// fakeResult implements sql.Result for checkRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("affected rows is success", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, checkRowsAffected(fakeResult{rows: 1}, store.ErrTaskNotFound))
	})

	t.Run("zero rows surfaces the not-found error", func(t *testing.T) {
		t.Parallel()
		err := checkRowsAffected(fakeResult{rows: 0}, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("driver failure propagates", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("driver does not support RowsAffected")
		err := checkRowsAffected(fakeResult{err: cause}, store.ErrTaskNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
	})
}
