package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid employee id or password")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrTokenExpired               = errors.New("token has expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrAuthenticationRequired     = errors.New("authentication required")
	ErrStaffAccessRequired        = errors.New("HR staff access required")
	ErrGoogleLoginDisabled        = errors.New("google sign-in is not configured")
	ErrGoogleEmailNotVerified     = errors.New("google account email is not verified")
	ErrGoogleAccountNotLinked     = errors.New("no registered employee uses this google email")
	ErrInvalidOAuthState          = errors.New("invalid oauth state")
)
