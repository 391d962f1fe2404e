package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// MinSecretLength is the shortest secret accepted for HMAC-SHA256 signing.
const MinSecretLength = 32

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("token signature mismatch")
	ErrExpired        = errors.New("token expired")
)

// Identity is the set of attributes a token vouches for.
type Identity struct {
	UserID   int64
	Email    string
	FullName string
	Role     domain.Role
}

// Claims describes the JWT payload. The subject is the account email.
type Claims struct {
	UserID   int64       `json:"id"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256 tokens with a process-wide key.
// It is safe for concurrent use; the key is never mutated after construction.
type TokenCodec struct {
	key []byte
	ttl time.Duration
}

// NewTokenCodec derives the signing key from secret.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("signing secret must be at least %d bytes", MinSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &TokenCodec{key: key, ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue signs a token for id, valid from now until now+ttl.
func (tc *TokenCodec) Issue(id Identity, now time.Time) (string, time.Time, error) {
	if !id.Role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue token: %w: %q", domain.ErrUnknownRole, id.Role)
	}
	issuedAt := now.Truncate(time.Second)
	expiresAt := issuedAt.Add(tc.ttl)
	claims := &Claims{
		UserID:   id.UserID,
		FullName: id.FullName,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of tokenStr as of now.
func (tc *TokenCodec) Verify(tokenStr string, now time.Time) (Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithStrictDecoding(),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return tc.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) && signatureUndecodable(parser, tokenStr) {
			return Identity{}, fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
		return Identity{}, classify(err)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrMalformedToken)
	}
	if !claims.Role.Valid() {
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrMalformedToken, claims.Role)
	}

	return Identity{
		UserID:   claims.UserID,
		Email:    claims.Subject,
		FullName: claims.FullName,
		Role:     claims.Role,
	}, nil
}

// signatureUndecodable reports a token whose header and claims parse but
// whose signature segment is not canonical base64url.
func signatureUndecodable(parser *jwt.Parser, tokenStr string) bool {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return false
	}
	if _, _, err := parser.ParseUnverified(tokenStr, &Claims{}); err != nil {
		return false
	}
	_, err := base64.RawURLEncoding.Strict().DecodeString(parts[2])
	return err != nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}
