package jwt

import (
	"strings"
	"sync"
	"testing"
	"time"

	"auth-srv/pkg/scope"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-at-least-32-characters!"
	testIssuer = "auth-srv"
)

var adminClaims = scope.Claims{SubjectID: 1, Username: "admin", Email: "admin@example.com"}

// clock is a settable time source shared by a manager under test.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newManager(t *testing.T, secret string, c *clock) scope.Manager {
	t.Helper()
	m, err := New(Config{SecretKey: secret, Issuer: testIssuer, Now: c.Now})
	require.NoError(t, err)
	return m
}

func signRaw(t *testing.T, method gjwt.SigningMethod, claims gjwt.Claims, key interface{}) string {
	t.Helper()
	s, err := gjwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestNewRejectsEmptySecret(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestRoundTrip(t *testing.T) {
	c := newClock()
	m := newManager(t, testSecret, c)

	token, err := m.Issue(adminClaims)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, adminClaims, payload.Claims)
	assert.True(t, c.Now().Equal(payload.IssuedAt))
	assert.True(t, c.Now().Add(time.Hour).Equal(payload.ExpiresAt))
	assert.NotEmpty(t, payload.TokenID)
}

func TestRoundTripTable(t *testing.T) {
	m := newManager(t, testSecret, newClock())
	tests := []scope.Claims{
		{},
		{SubjectID: -7, Username: "ünïcødé", Email: ""},
		{SubjectID: 1 << 53, Username: strings.Repeat("a", 512), Email: "a@b.c"},
	}
	for _, claims := range tests {
		token, err := m.Issue(claims)
		require.NoError(t, err)
		payload, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, claims, payload.Claims)
	}
}

func TestSameInstantTokensBothVerify(t *testing.T) {
	m := newManager(t, testSecret, newClock())

	first, err := m.Issue(adminClaims)
	require.NoError(t, err)
	second, err := m.Issue(adminClaims)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "token ids differ")

	for _, token := range []string{first, second} {
		payload, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, adminClaims, payload.Claims)
	}
}

func TestSignatureMutation(t *testing.T) {
	m := newManager(t, testSecret, newClock())
	token, err := m.Issue(adminClaims)
	require.NoError(t, err)

	sigStart := strings.LastIndex(token, ".") + 1
	for i := sigStart; i < len(token); i++ {
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		mutated := token[:i] + string(replacement) + token[i+1:]

		_, err := m.Verify(mutated)
		assert.ErrorIsf(t, err, scope.ErrInvalidToken, "mutation at %d", i)
	}
}

func TestClaimsTamperingInvalidates(t *testing.T) {
	m := newManager(t, testSecret, newClock())
	token, err := m.Issue(adminClaims)
	require.NoError(t, err)

	other, err := m.Issue(scope.Claims{SubjectID: 2, Username: "eve", Email: "eve@example.com"})
	require.NoError(t, err)

	// Header and signature of one token around the claims of another.
	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	spliced := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = m.Verify(spliced)
	assert.ErrorIs(t, err, scope.ErrInvalidToken)
}

func TestExpiryBoundary(t *testing.T) {
	c := newClock()
	m := newManager(t, testSecret, c)
	token, err := m.Issue(adminClaims)
	require.NoError(t, err)

	c.Advance(time.Hour - time.Second)
	_, err = m.Verify(token)
	require.NoError(t, err, "still valid one second before expiry")

	c.Advance(time.Second)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, scope.ErrTokenExpired, "expired exactly at issuance+1h")
	assert.NotErrorIs(t, err, scope.ErrInvalidToken)

	c.Advance(24 * time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, scope.ErrTokenExpired)
}

func TestExpiryCountsFromIssuedAtSecond(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 2, 3, 4, 5, 900_000_000, time.UTC)}
	m := newManager(t, testSecret, c)
	token, err := m.Issue(adminClaims)
	require.NoError(t, err)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	iat := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, payload.IssuedAt.Equal(iat), "iat is the issuance second")
	assert.Equal(t, scope.TokenExpirationDuration, payload.ExpiresAt.Sub(payload.IssuedAt))

	c.now = iat.Add(scope.TokenExpirationDuration - time.Millisecond)
	_, err = m.Verify(token)
	require.NoError(t, err, "valid until iat+1h")

	c.now = iat.Add(scope.TokenExpirationDuration)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, scope.ErrTokenExpired, "expired at iat+1h")
}

func TestCrossSecretTokensNeverVerify(t *testing.T) {
	c := newClock()
	issuer := newManager(t, "another-secret-key-with-plenty-of-bytes", c)
	verifier := newManager(t, testSecret, c)

	token, err := issuer.Issue(adminClaims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, scope.ErrInvalidToken)

	// Even when it is also expired, a foreign token is invalid rather than expired.
	c.Advance(2 * time.Hour)
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, scope.ErrInvalidToken)
	assert.NotErrorIs(t, err, scope.ErrTokenExpired)
}

func TestVerifyRejects(t *testing.T) {
	c := newClock()
	m := newManager(t, testSecret, c)
	now := c.Now()
	valid := gjwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: gjwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  gjwt.NewNumericDate(now),
	}

	noExp := valid
	noExp.ExpiresAt = nil

	wrongIssuer := valid
	wrongIssuer.Issuer = "someone-else"

	expiredWrongIssuer := wrongIssuer
	expiredWrongIssuer.ExpiresAt = gjwt.NewNumericDate(now.Add(-time.Minute))

	notYet := valid
	notYet.NotBefore = gjwt.NewNumericDate(now.Add(time.Minute))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-real-token"},
		{"two segments", "a.b"},
		{"alg none", signRaw(t, gjwt.SigningMethodNone, &Claims{RegisteredClaims: valid}, gjwt.UnsafeAllowNoneSignatureType)},
		{"hs384 with same secret", signRaw(t, gjwt.SigningMethodHS384, &Claims{RegisteredClaims: valid}, []byte(testSecret))},
		{"missing exp", signRaw(t, gjwt.SigningMethodHS256, &Claims{RegisteredClaims: noExp}, []byte(testSecret))},
		{"wrong issuer", signRaw(t, gjwt.SigningMethodHS256, &Claims{RegisteredClaims: wrongIssuer}, []byte(testSecret))},
		{"expired and wrong issuer", signRaw(t, gjwt.SigningMethodHS256, &Claims{RegisteredClaims: expiredWrongIssuer}, []byte(testSecret))},
		{"not valid yet", signRaw(t, gjwt.SigningMethodHS256, &Claims{RegisteredClaims: notYet}, []byte(testSecret))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, scope.ErrInvalidToken)
			assert.NotErrorIs(t, err, scope.ErrTokenExpired)
		})
	}
}

func TestVerifyConcurrent(t *testing.T) {
	m := newManager(t, testSecret, newClock())
	token, err := m.Issue(adminClaims)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload, err := m.Verify(token)
			if err == nil && payload.Claims != adminClaims {
				err = assert.AnError
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestDefaultTTL(t *testing.T) {
	c := newClock()
	m, err := New(Config{SecretKey: testSecret, Now: c.Now})
	require.NoError(t, err)

	token, err := m.Issue(adminClaims)
	require.NoError(t, err)
	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, scope.TokenExpirationDuration, payload.ExpiresAt.Sub(payload.IssuedAt))
}

func TestCheckSecretStrength(t *testing.T) {
	assert.Error(t, CheckSecretStrength("short"))
	assert.NoError(t, CheckSecretStrength(strings.Repeat("x", MinSecretKeyLen)))
}
