package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/userhub/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "userhub-test"
)

func issue(t *testing.T, g *Generator) string {
	t.Helper()
	tok, err := g.Generate(context.Background(), auth.Principal{Email: "john@example.com", Name: "John Doe"})
	require.NoError(t, err)
	return tok
}

func TestGenerateVerify_RoundTrip(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, time.Hour)

	claims, err := NewVerifier(testSecret, testIssuer).Verify(issue(t, g))
	require.NoError(t, err)

	assert.Equal(t, "john@example.com", claims.Subject)
	assert.Equal(t, "John Doe", claims.Name)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerate_UniqueTokenIDs(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, time.Hour)
	v := NewVerifier(testSecret, testIssuer)

	a, err := v.Verify(issue(t, g))
	require.NoError(t, err)
	b, err := v.Verify(issue(t, g))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestVerify_Rejects(t *testing.T) {
	good := NewGenerator(testSecret, testIssuer, time.Hour)

	expired := NewGenerator(testSecret, testIssuer, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "x", Issuer: testIssuer}})
	noneTok, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		v     *Verifier
	}{
		{"wrong secret", issue(t, good), NewVerifier("other", testIssuer)},
		{"wrong issuer", issue(t, good), NewVerifier(testSecret, "someone-else")},
		{"expired", issue(t, expired), NewVerifier(testSecret, testIssuer)},
		{"alg none", noneTok, NewVerifier(testSecret, testIssuer)},
		{"garbage", "not.a.jwt", NewVerifier(testSecret, testIssuer)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(NewVerifier(testSecret, testIssuer)))
	app.Get("/me", func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalEmail).(string)
		name, _ := c.Locals(LocalName).(string)
		return c.SendString(email + "|" + name)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	tok := issue(t, NewGenerator(testSecret, testIssuer, time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"bearer", "Bearer " + tok, http.StatusOK, "john@example.com|John Doe"},
		{"lowercase scheme", "bearer " + tok, http.StatusOK, "john@example.com|John Doe"},
		{"bare token", tok, http.StatusOK, "john@example.com|John Doe"},
		{"missing", "", http.StatusUnauthorized, "missing Authorization header"},
		{"empty bearer", "Bearer   ", http.StatusUnauthorized, ""},
		{"bad token", "Bearer abc", http.StatusUnauthorized, "invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newProtectedApp().Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}
