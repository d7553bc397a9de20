package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("unexpected token type")

// AccessClaims is what an access token asserts about its bearer.
type AccessClaims struct {
	AccountID  string
	EmployeeID string
	IsStaff    bool
}

type Service interface {
	GenerateAccessToken(claims AccessClaims) (token string, expiresAt int64, err error)
	GenerateRefreshToken(accountID string) (token string, expiresAt int64, err error)
	// ParseRefreshToken verifies signature, expiry and type and returns the
	// account id the token was issued to.
	ParseRefreshToken(tokenString string) (accountID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearRefreshTokenCookie() *http.Cookie
}

type JWTService struct {
	accessTokenExpiration  time.Duration
	refreshTokenExpiration time.Duration
	tokenAuth              *jwtauth.JWTAuth
	clock                  clock.Clock
	secureCookie           bool
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService parses the expiration durations ("1h", "168h") up front so a
// bad configuration fails at boot.
func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string, c clock.Clock, secureCookie bool) (*JWTService, error) {
	accessExp, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	refreshExp, err := time.ParseDuration(refreshTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpiration:  accessExp,
		refreshTokenExpiration: refreshExp,
		tokenAuth:              jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		clock:                  c,
		secureCookie:           secureCookie,
	}, nil
}

func (j *JWTService) GenerateAccessToken(claims AccessClaims) (token string, expiresAt int64, err error) {
	expiresAt = j.clock.Now().Add(j.accessTokenExpiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"account_id":  claims.AccountID,
		"employee_id": claims.EmployeeID,
		"is_staff":    claims.IsStaff,
		"type":        TokenTypeAccess,
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(accountID string) (token string, expiresAt int64, err error) {
	expiresAt = j.clock.Now().Add(j.refreshTokenExpiration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"account_id": accountID,
		"exp":        expiresAt,
		"type":       TokenTypeRefresh,
		// distinguishes tokens minted within the same second
		"iat_nano": j.clock.Now().UnixNano(),
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ParseRefreshToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	if tokenType, ok := token.Get("type"); !ok || tokenType != TokenTypeRefresh {
		return "", ErrWrongTokenType
	}

	accountID, _ := token.PrivateClaims()["account_id"].(string)
	if accountID == "" {
		return "", jwt.ErrInvalidJWT()
	}
	return accountID, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClaimsFromMap reads access claims out of a verified token's claim map.
func ClaimsFromMap(claims map[string]interface{}) (AccessClaims, error) {
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeAccess {
		return AccessClaims{}, ErrWrongTokenType
	}
	accountID, _ := claims["account_id"].(string)
	if accountID == "" {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}
	employeeID, _ := claims["employee_id"].(string)
	isStaff, _ := claims["is_staff"].(bool)
	return AccessClaims{AccountID: accountID, EmployeeID: employeeID, IsStaff: isStaff}, nil
}
