package memory

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/auth"
)

type accountRepository struct {
	s *Store
}

func (s *Store) Accounts() account.AccountRepository {
	return &accountRepository{s: s}
}

func (r *accountRepository) Create(_ context.Context, a account.Account) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.accounts {
		if existing.Username == a.Username {
			return account.Account{}, account.ErrUsernameExists
		}
	}
	now := r.s.clock.Now()
	a.ID = newID()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.data.accounts[a.ID] = a
	return a, nil
}

func (r *accountRepository) GetByID(_ context.Context, id string) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.data.accounts[id]
	if !ok {
		return account.Account{}, account.ErrAccountNotFound
	}
	return a, nil
}

func (r *accountRepository) GetByUsername(_ context.Context, username string) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.data.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return account.Account{}, account.ErrAccountNotFound
}

func (r *accountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err == account.ErrAccountNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *accountRepository) UpdateLastLogin(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.data.accounts[id]
	if !ok {
		return account.ErrAccountNotFound
	}
	now := r.s.clock.Now()
	a.LastLoginAt = &now
	a.UpdatedAt = now
	r.s.data.accounts[id] = a
	return nil
}

// Delete removes the account, unlinks its employee and drops its refresh
// tokens, mirroring the foreign keys.
func (r *accountRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.accounts[id]; !ok {
		return account.ErrAccountNotFound
	}
	delete(r.s.data.accounts, id)

	for key, emp := range r.s.data.employees {
		if emp.AccountID != nil && *emp.AccountID == id {
			emp.AccountID = nil
			r.s.data.employees[key] = emp
		}
	}
	for token, rt := range r.s.data.refreshTokens {
		if rt.accountID == id {
			delete(r.s.data.refreshTokens, token)
		}
	}
	return nil
}

type refreshTokenRepository struct {
	s *Store
}

func (s *Store) RefreshTokens() auth.RefreshTokenRepository {
	return &refreshTokenRepository{s: s}
}

func (r *refreshTokenRepository) CreateRefreshToken(_ context.Context, accountID string, token string, expiresAt int64, _ auth.SessionTrackingRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.data.refreshTokens[token] = refreshToken{accountID: accountID, expiresAt: expiresAt}
	return nil
}

func (r *refreshTokenRepository) IsRefreshTokenRevoked(_ context.Context, token string) (string, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt, ok := r.s.data.refreshTokens[token]
	if !ok {
		return "", true, nil
	}
	expired := rt.expiresAt <= r.s.clock.Now().Unix()
	return rt.accountID, rt.revoked || expired, nil
}

func (r *refreshTokenRepository) RevokeRefreshToken(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if rt, ok := r.s.data.refreshTokens[token]; ok {
		rt.revoked = true
		r.s.data.refreshTokens[token] = rt
	}
	return nil
}
