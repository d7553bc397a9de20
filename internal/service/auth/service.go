package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/awash-hr/job-portal/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.Transactor
	account.AccountRepository
	employee.EmployeeRepository
	auth.RefreshTokenRepository
	jwt.Service
	googleEnabled bool
}

func NewAuthService(tx database.Transactor, accountRepository account.AccountRepository, employeeRepository employee.EmployeeRepository, refreshTokenRepository auth.RefreshTokenRepository, jwtService jwt.Service, googleEnabled bool) auth.AuthService {
	return &AuthServiceImpl{
		tx:                     tx,
		AccountRepository:      accountRepository,
		EmployeeRepository:     employeeRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		googleEnabled:          googleEnabled,
	}
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens mints an access/refresh pair for acct and persists the refresh
// token hash.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, acct account.Account, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(jwt.AccessClaims{
			AccountID:  acct.ID,
			EmployeeID: acct.Username,
			IsStaff:    acct.IsStaff,
		})
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(acct.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, acct.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		if err := a.UpdateLastLogin(txCtx, acct.ID); err != nil {
			return fmt.Errorf("failed to record last login: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.IsStaff = acct.IsStaff
	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	acct, err := a.AccountRepository.GetByUsername(ctx, loginReq.EmployeeID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, acct, sessionTrackReq)
}

// LoginWithGoogle implements auth.AuthService. Only employees who already
// registered can sign in this way; the Google email must match theirs.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, verified bool, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if !a.googleEnabled {
		return auth.TokenResponse{}, auth.ErrGoogleLoginDisabled
	}
	if !verified {
		return auth.TokenResponse{}, auth.ErrGoogleEmailNotVerified
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	if emp.AccountID == nil {
		return auth.TokenResponse{}, auth.ErrGoogleAccountNotLinked
	}

	acct, err := a.AccountRepository.GetByID(ctx, *emp.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return a.issueTokens(ctx, acct, sessionTrackReq)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	accountID, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	ownerID, revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if ownerID != accountID {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	acct, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(jwt.AccessClaims{
		AccountID:  acct.ID,
		EmployeeID: acct.Username,
		IsStaff:    acct.IsStaff,
	})
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrRefreshTokenCookieEmpty
	}
	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// CreateStaff implements auth.AuthService.
func (a *AuthServiceImpl) CreateStaff(ctx context.Context, req auth.CreateStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	first, last := account.SplitFullName(req.FullName)
	_, err = a.AccountRepository.Create(ctx, account.Account{
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		IsStaff:      true,
	})
	return err
}
