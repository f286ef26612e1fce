package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS512 signing key is less than 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the JWT token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

const minSecretLen = 64

// JWT generates and verifies access tokens.
type JWT interface {
	// Generate creates a signed token for the user.
	Generate(userID uuid.UUID, userName string) (string, error)
	// Verify parses and validates the token and returns claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type authKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// Audiences are the accepted token audiences.
	Audiences []string
	// TTL is the token lifetime.
	TTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// ID generates token ids.
	ID generator
}

// Claims carries the registered claims plus the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is the authenticated user identifier.
	UserID uuid.UUID `json:"user_id"`
	// UserName is the authenticated user login name.
	UserName string `json:"user_name"`
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(authKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, authKey{}, clm)
}

// ActorID returns the authenticated user id, or uuid.Nil for anonymous calls.
func ActorID(ctx context.Context) uuid.UUID {
	if clm := GetAuth(ctx); clm != nil {
		return clm.UserID
	}
	return uuid.Nil
}
