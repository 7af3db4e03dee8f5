package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/Jezzej/craftique/internals/config"
	"github.com/Jezzej/craftique/internals/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the session JWT.
const SessionCookieName = "token"

// Token purposes. A reset-purpose token must never be accepted as a session.
const (
	PurposeSession = "session"
	PurposeReset   = "reset"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// SessionClaims is the payload of every token the server signs: the
// sanitized user, a purpose flag, and the registered expiry/id claims.
type SessionClaims struct {
	User    models.SanitizedUser `json:"user"`
	Purpose string               `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session and reset tokens and manages the
// session cookie. Tokens are stateless; nothing is persisted here.
type TokenManager struct {
	// CookieConfig holds the shared security baseline for cookies
	CookieConfig *config.CookieConfig
	// JWTSecret is the HS256 signing key
	JWTSecret string
	// SessionMaxAge is the session token lifetime in seconds
	SessionMaxAge int
	// ResetMaxAge is the reset token lifetime in seconds (the OTP window)
	ResetMaxAge int
}

func NewTokenManager(cookieConfig *config.CookieConfig, jwtSecret string, sessionMaxAge int, resetMaxAge int) *TokenManager {
	return &TokenManager{
		CookieConfig:  cookieConfig,
		JWTSecret:     jwtSecret,
		SessionMaxAge: sessionMaxAge,
		ResetMaxAge:   resetMaxAge,
	}
}

func (tm *TokenManager) createToken(user models.SanitizedUser, purpose string, maxAge int) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		User:    user,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(maxAge) * time.Second)),
		},
	})

	return token.SignedString([]byte(tm.JWTSecret))
}

// CreateSessionToken signs a session token embedding the sanitized user.
func (tm *TokenManager) CreateSessionToken(user models.SanitizedUser) (string, error) {
	return tm.createToken(user, PurposeSession, tm.SessionMaxAge)
}

// CreateResetToken signs a reset-purpose token with the shorter reset TTL.
func (tm *TokenManager) CreateResetToken(user models.SanitizedUser) (string, error) {
	return tm.createToken(user, PurposeReset, tm.ResetMaxAge)
}

// VerifyToken checks signature and expiry and returns the claims.
// Tampered or expired tokens come back as errors, never a panic.
func (tm *TokenManager) VerifyToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(tm.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// SetSessionCookie stores the session token in an HttpOnly cookie.
// The token is never returned in a response body.
func (tm *TokenManager) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, tm.SessionMaxAge, "/", tm.CookieConfig.Domain, tm.CookieConfig.IsSecure, tm.CookieConfig.HttpOnly)
}

// ClearSessionCookie removes the session cookie from the client.
func (tm *TokenManager) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", tm.CookieConfig.Domain, tm.CookieConfig.IsSecure, tm.CookieConfig.HttpOnly)
}
