package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newTestStore() *Store {
	return NewStore(&clock.Fixed{T: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)})
}

func addRecord(ctx context.Context, s *Store, employeeID string) error {
	_, err := s.Roster().CreateIfAbsent(ctx, roster.Record{EmployeeID: employeeID, FullName: employeeID})
	return err
}

func hasRecord(t *testing.T, s *Store, employeeID string) bool {
	t.Helper()
	_, err := s.Roster().GetByEmployeeID(context.Background(), employeeID)
	if errors.Is(err, roster.ErrRecordNotFound) {
		return false
	}
	require.NoError(t, err)
	return true
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	tx := s.Transactor()

	require.NoError(t, tx.WithinTx(ctx, func(txCtx context.Context) error {
		return addRecord(txCtx, s, "E-1")
	}))

	err := tx.WithinTx(ctx, func(txCtx context.Context) error {
		require.NoError(t, addRecord(txCtx, s, "E-2"))
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	assert.True(t, hasRecord(t, s, "E-1"))
	assert.False(t, hasRecord(t, s, "E-2"))
}

func TestWithinTxNestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	tx := s.Transactor()

	err := tx.WithinTx(ctx, func(txCtx context.Context) error {
		require.NoError(t, addRecord(txCtx, s, "E-1"))
		return tx.WithinTx(txCtx, func(innerCtx context.Context) error {
			require.NoError(t, addRecord(innerCtx, s, "E-2"))
			return errBoom
		})
	})
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, hasRecord(t, s, "E-1"), "inner failure rolls back the whole unit")
	assert.False(t, hasRecord(t, s, "E-2"))

	// A second transactor over the same store joins through the context too.
	other := s.Transactor()
	require.NoError(t, tx.WithinTx(ctx, func(txCtx context.Context) error {
		require.NoError(t, addRecord(txCtx, s, "E-3"))
		return other.WithinTx(txCtx, func(innerCtx context.Context) error {
			return addRecord(innerCtx, s, "E-4")
		})
	}))
	assert.True(t, hasRecord(t, s, "E-3"))
	assert.True(t, hasRecord(t, s, "E-4"))
}

func TestWithinTxFailureKeepsConcurrentCommit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	tx := s.Transactor()

	started := make(chan struct{})
	release := make(chan struct{})
	var (
		wg             sync.WaitGroup
		errOK, errFail error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errFail = tx.WithinTx(ctx, func(txCtx context.Context) error {
			close(started)
			if err := addRecord(txCtx, s, "E-fail"); err != nil {
				return err
			}
			<-release
			return errBoom
		})
	}()
	go func() {
		defer wg.Done()
		<-started
		errOK = tx.WithinTx(ctx, func(txCtx context.Context) error {
			return addRecord(txCtx, s, "E-ok")
		})
	}()

	<-started
	close(release)
	wg.Wait()

	assert.ErrorIs(t, errFail, errBoom)
	require.NoError(t, errOK)
	assert.False(t, hasRecord(t, s, "E-fail"))
	assert.True(t, hasRecord(t, s, "E-ok"), "rollback must not erase another transaction's write")
}
