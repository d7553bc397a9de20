// Package memory holds map-backed repositories with the same contracts as
// the PostgreSQL ones, including uniqueness and cascade rules. Services and
// handlers are tested against it.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/google/uuid"
)

type refreshToken struct {
	accountID string
	expiresAt int64
	revoked   bool
}

type tables struct {
	roster        map[string]roster.Record
	accounts      map[string]account.Account
	employees     map[string]employee.Employee
	jobs          map[int64]job.Job
	applications  map[string]application.Application
	promotions    map[string]promotion.Promotion
	refreshTokens map[string]refreshToken
	nextJobID     int64
}

func (t tables) clone() tables {
	return tables{
		roster:        maps.Clone(t.roster),
		accounts:      maps.Clone(t.accounts),
		employees:     maps.Clone(t.employees),
		jobs:          maps.Clone(t.jobs),
		applications:  maps.Clone(t.applications),
		promotions:    maps.Clone(t.promotions),
		refreshTokens: maps.Clone(t.refreshTokens),
		nextJobID:     t.nextJobID,
	}
}

// Store is the shared state behind every memory repository.
type Store struct {
	mu    sync.Mutex
	data  tables
	clock clock.Clock

	// txMu serializes transactions so a rollback only discards its own writes.
	txMu sync.Mutex

	// FailApplicationCreate, when set, is returned by the next
	// ApplicationRepository.Create call.
	FailApplicationCreate error
}

func NewStore(c clock.Clock) *Store {
	return &Store{
		clock: c,
		data: tables{
			roster:        map[string]roster.Record{},
			accounts:      map[string]account.Account{},
			employees:     map[string]employee.Employee{},
			jobs:          map[int64]job.Job{},
			applications:  map[string]application.Application{},
			promotions:    map[string]promotion.Promotion{},
			refreshTokens: map[string]refreshToken{},
		},
	}
}

func newID() string {
	return uuid.NewString()
}

type transactor struct {
	s *Store
}

// txKey marks a context that already runs inside a transaction.
type txKey struct{}

// Transactor snapshots the store and restores it when fn fails. A call whose
// context already carries a transaction joins it.
func (s *Store) Transactor() database.Transactor {
	return &transactor{s: s}
}

func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(bool); ok {
		return fn(ctx)
	}

	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	t.s.mu.Lock()
	snapshot := t.s.data.clone()
	t.s.mu.Unlock()

	err := fn(context.WithValue(ctx, txKey{}, true))
	if err != nil {
		t.s.mu.Lock()
		t.s.data = snapshot
		t.s.mu.Unlock()
	}
	return err
}
