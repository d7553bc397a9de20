package auth

import "context"

// RefreshTokenRepository persists issued refresh tokens (hashed) so they can
// be revoked on logout.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, accountID string, token string, expiresAt int64, sessionReq SessionTrackingRequest) error
	// IsRefreshTokenRevoked reports the owning account and whether the token
	// is revoked or expired.
	IsRefreshTokenRevoked(ctx context.Context, token string) (accountID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
}
