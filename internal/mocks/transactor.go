package mocks

import (
	"context"

	"github.com/phrazzld/tasklist-api/internal/store"
)

// MockTransactor implements store.Transactor without a database. The
// callback runs with a nil transaction; mock stores ignore WithTx, so the
// composed operation executes against their in-memory state. BeginErr
// simulates a transaction that cannot start.
type MockTransactor struct {
	BeginErr error
	Calls    int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTransaction implements the store.Transactor interface
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(ctx, nil)
}
