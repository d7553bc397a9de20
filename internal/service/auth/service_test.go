package auth

import (
	"context"
	"testing"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/jwt"
	"github.com/awash-hr/job-portal/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type authFixture struct {
	store   *memory.Store
	service auth.AuthService
	session auth.SessionTrackingRequest
}

func newAuthFixture(t *testing.T, googleEnabled bool) authFixture {
	t.Helper()
	c := &clock.Fixed{T: time.Now()}
	store := memory.NewStore(c)

	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, c, false)
	require.NoError(t, err)

	return authFixture{
		store:   store,
		service: NewAuthService(store.Transactor(), store.Accounts(), store.Employees(), store.RefreshTokens(), jwtService, googleEnabled),
		session: auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"},
	}
}

func (f authFixture) createAccount(t *testing.T, username, password string, staff bool) account.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	acct, err := f.store.Accounts().Create(context.Background(), account.Account{Username: username, PasswordHash: string(hash), IsStaff: staff})
	require.NoError(t, err)
	return acct
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, false)
	acct := f.createAccount(t, "AIB/001/2020", "password123", false)

	response, err := f.service.Login(ctx, auth.LoginRequest{EmployeeID: "AIB/001/2020", Password: "password123"}, f.session)

	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, response.RefreshTokenExpiresIn, int64(0))
	assert.False(t, response.IsStaff)

	stored, err := f.store.Accounts().GetByID(ctx, acct.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, false)
	f.createAccount(t, "E-1", "password123", false)

	_, err := f.service.Login(ctx, auth.LoginRequest{EmployeeID: "E-1", Password: "wrong-password"}, f.session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.service.Login(ctx, auth.LoginRequest{EmployeeID: "nobody", Password: "password123"}, f.session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "unknown users look the same as bad passwords")
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, false)
	f.createAccount(t, "HR-1", "password123", true)

	tokens, err := f.service.Login(ctx, auth.LoginRequest{EmployeeID: "HR-1", Password: "password123"}, f.session)
	require.NoError(t, err)
	assert.True(t, tokens.IsStaff)

	refreshed, err := f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "access tokens are not refresh tokens")

	require.NoError(t, f.service.Logout(ctx, tokens.RefreshToken))
	_, err = f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	assert.ErrorIs(t, f.service.Logout(ctx, ""), auth.ErrRefreshTokenCookieEmpty)
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		f := newAuthFixture(t, false)
		_, err := f.service.LoginWithGoogle(ctx, "hana@example.com", true, f.session)
		assert.ErrorIs(t, err, auth.ErrGoogleLoginDisabled)
	})

	f := newAuthFixture(t, true)
	acct := f.createAccount(t, "E-5", "password123", false)
	email := "hana@example.com"
	_, err := f.store.Employees().Create(ctx, employee.Employee{
		EmployeeID: "E-5", FullName: "Hana Girma", Email: &email, AccountID: &acct.ID, IsRegistered: true,
	})
	require.NoError(t, err)

	_, err = f.service.LoginWithGoogle(ctx, email, false, f.session)
	assert.ErrorIs(t, err, auth.ErrGoogleEmailNotVerified)

	_, err = f.service.LoginWithGoogle(ctx, "stranger@example.com", true, f.session)
	assert.ErrorIs(t, err, auth.ErrGoogleAccountNotLinked)

	tokens, err := f.service.LoginWithGoogle(ctx, "HANA@example.com", true, f.session)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestAuthService_CreateStaff(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, false)

	req := auth.CreateStaffRequest{Username: "HR-9", Password: "supersecret", FullName: "Meron Alemu"}
	require.NoError(t, f.service.CreateStaff(ctx, req))

	acct, err := f.store.Accounts().GetByUsername(ctx, "HR-9")
	require.NoError(t, err)
	assert.True(t, acct.IsStaff)
	assert.Equal(t, "Meron", acct.FirstName)
	assert.Equal(t, "Alemu", acct.LastName)

	assert.ErrorIs(t, f.service.CreateStaff(ctx, req), account.ErrUsernameExists)

	err = f.service.CreateStaff(ctx, auth.CreateStaffRequest{Username: "HR-10", Password: "short"})
	assert.Error(t, err)
}
