package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func newTestCodec(t *testing.T) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testSecret, 8*time.Hour)
	require.NoError(t, err)
	return codec
}

func testIdentity() Identity {
	return Identity{UserID: 42, Email: "a@b.com", FullName: "Ana Banana", Role: domain.RoleCoach}
}

func TestNewTokenCodecRejectsWeakConfig(t *testing.T) {
	_, err := NewTokenCodec("short", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenCodec(testSecret, 0)
	assert.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC)

	token, exp, err := codec.Issue(testIdentity(), now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(8*time.Hour), exp)
	assert.Len(t, strings.Split(token, "."), 3)

	for _, at := range []time.Time{now, now.Add(time.Hour), exp.Add(-time.Second)} {
		got, err := codec.Verify(token, at)
		require.NoError(t, err)
		assert.Equal(t, testIdentity(), got)
	}
}

func TestIssueIsDeterministic(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC)

	first, _, err := codec.Issue(testIdentity(), now)
	require.NoError(t, err)
	second, _, err := codec.Issue(testIdentity(), now.Add(300*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIssueEmbedsWireClaims(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	token, _, err := codec.Issue(testIdentity(), now)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Header["alg"])
	assert.Equal(t, "a@b.com", claims["sub"])
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, "Ana Banana", claims["fullName"])
	assert.Equal(t, "COACH", claims["role"])
	assert.Equal(t, float64(now.Unix()), claims["iat"])
	assert.Equal(t, float64(now.Add(8*time.Hour).Unix()), claims["exp"])
}

func TestIssueRejectsUnknownRole(t *testing.T) {
	codec := newTestCodec(t)
	id := testIdentity()
	id.Role = "ROOT"

	_, _, err := codec.Issue(id, time.Now())
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestVerifyExpired(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	token, exp, err := codec.Issue(testIdentity(), now)
	require.NoError(t, err)

	_, err = codec.Verify(token, exp)
	assert.ErrorIs(t, err, ErrExpired)

	_, err = codec.Verify(token, now.Add(codec.TTL()+time.Second))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyDetectsSignatureTampering(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	token, _, err := codec.Issue(testIdentity(), now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := 0; i < len(sig)*8; i++ {
		flipped := append([]byte(nil), sig...)
		flipped[i/8] ^= 1 << (i % 8)
		tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(flipped)

		_, err := codec.Verify(tampered, now)
		require.ErrorIs(t, err, ErrBadSignature, "bit %d", i)
	}
}

func TestVerifyDetectsSignatureCharacterTampering(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	codec := newTestCodec(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	token, _, err := codec.Issue(testIdentity(), now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	sig := parts[2]
	for i := 0; i < len(sig); i++ {
		idx := strings.IndexByte(alphabet, sig[i])
		require.GreaterOrEqual(t, idx, 0)
		for bit := 0; bit < 6; bit++ {
			mutated := []byte(sig)
			mutated[i] = alphabet[idx^(1<<bit)]
			tampered := parts[0] + "." + parts[1] + "." + string(mutated)

			_, err := codec.Verify(tampered, now)
			require.ErrorIs(t, err, ErrBadSignature, "char %d bit %d", i, bit)
		}
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	other, err := NewTokenCodec(strings.Repeat("x", MinSecretLength), time.Hour)
	require.NoError(t, err)
	now := time.Now()

	token, _, err := other.Issue(testIdentity(), now)
	require.NoError(t, err)

	_, err = newTestCodec(t).Verify(token, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	codec := newTestCodec(t)

	for _, raw := range []string{"", "abc", "abc.def", "not.a.jwt", "....", "a.b.c.d"} {
		_, err := codec.Verify(raw, time.Now())
		assert.ErrorIs(t, err, ErrMalformedToken, "input %q", raw)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	codec := newTestCodec(t)
	claims := jwt.MapClaims{"sub": "a@b.com", "role": "COACH", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Verify(token, time.Now())
	assert.Error(t, err)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	codec := newTestCodec(t)
	claims := jwt.MapClaims{"sub": "a@b.com", "role": "COACH"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Verify(token, time.Now())
	assert.ErrorIs(t, err, ErrMalformedToken)
}
