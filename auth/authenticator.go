package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk-core/clock"
	"github.com/spec-kit/helpdesk-core/config"
	"github.com/spec-kit/helpdesk-core/domain"
	apperrors "github.com/spec-kit/helpdesk-core/pkg/util"
	"github.com/spec-kit/helpdesk-core/store"
)

// Authenticator issues and validates signed tokens backed by stored
// TokenRecords. Records are never removed; expiry is checked on every
// Authenticate call against the injected clock.
type Authenticator struct {
	store      *store.Store
	clk        clock.Clock
	secret     []byte
	ttl        time.Duration
	knownRoles map[domain.Role]struct{}
}

// NewAuthenticator builds an authenticator from configuration.
func NewAuthenticator(cfg config.Config, st *store.Store, clk clock.Clock) *Authenticator {
	ttlMinutes := cfg.Auth.TokenTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	known := make(map[domain.Role]struct{}, len(cfg.Tickets.AllowedRoles))
	for _, role := range cfg.Tickets.AllowedRoles {
		known[domain.Role(role)] = struct{}{}
	}
	return &Authenticator{
		store:      st,
		clk:        clk,
		secret:     []byte(cfg.Auth.JWTSecret),
		ttl:        time.Duration(ttlMinutes) * time.Minute,
		knownRoles: known,
	}
}

// Claims describes the JWT payload.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// CreateToken signs a token for the user with the configured TTL and
// records it in the store. The user is not validated here; Authenticate
// rejects tokens for unknown or inactive users.
func (a *Authenticator) CreateToken(userID string) (domain.TokenRecord, error) {
	now := a.clk.Now()
	expiresAt := now.Add(a.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return domain.TokenRecord{}, apperrors.NewInternalError(err)
	}

	record := domain.TokenRecord{
		Token:     signed,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	a.store.PutToken(record)
	return record, nil
}

// Authenticate resolves a token to its active user. Unknown tokens, bad
// signatures, expired tokens and missing or inactive users all fail with
// an auth error.
func (a *Authenticator) Authenticate(token string) (domain.User, error) {
	record, ok := a.store.GetToken(token)
	if !ok {
		return domain.User{}, apperrors.NewAuthError("token not found")
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, apperrors.NewAuthError("unexpected signing method")
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.clk.Now))
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.User{}, apperrors.NewAuthError("token expired")
		}
		return domain.User{}, apperrors.NewAuthError("invalid token")
	}

	if a.clk.Now().After(record.ExpiresAt) {
		return domain.User{}, apperrors.NewAuthError("token expired")
	}

	user, ok := a.store.GetUser(record.UserID)
	if !ok || !user.Active {
		return domain.User{}, apperrors.NewAuthError("inactive user")
	}
	return user, nil
}

// RequireRole checks that the user's role is both known to the system and
// in the allowed set.
func (a *Authenticator) RequireRole(user domain.User, allowed []domain.Role) error {
	if _, ok := a.knownRoles[user.Role]; !ok {
		return apperrors.NewAuthorizationError("unknown role")
	}
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return apperrors.NewAuthorizationError("role not permitted")
}
