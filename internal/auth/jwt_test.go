package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestManager_Validate_Expired(t *testing.T) {
	m := NewManager("test-secret")
	m.ttl = -time.Hour

	token, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestManager_Validate_WrongKey(t *testing.T) {
	token, err := NewManager("secret-a").Generate("user-123")
	require.NoError(t, err)

	_, err = NewManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestManager_Validate_Malformed(t *testing.T) {
	m := NewManager("test-secret")

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Validate(tokenStr)
		assert.Error(t, err, "token %q should not validate", tokenStr)
	}
}

func TestMiddleware(t *testing.T) {
	m := NewManager("test-secret")
	validToken, err := m.Generate("user-123")
	require.NoError(t, err)

	var handlerCalled bool
	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectHandler  bool
	}{
		{name: "valid token", authHeader: "Bearer " + validToken, expectedStatus: http.StatusOK, expectHandler: true},
		{name: "missing header", authHeader: "", expectedStatus: http.StatusUnauthorized},
		{name: "no bearer prefix", authHeader: validToken, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer garbage", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			seenUserID = ""

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			m.Middleware()(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
			if tt.expectHandler {
				assert.Equal(t, "user-123", seenUserID)
			} else {
				assert.Contains(t, w.Body.String(), "error")
			}
		})
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	m := NewManager("test-secret")
	m.ttl = -time.Hour
	expired, err := m.Generate("user-123")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an expired token")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	m.Middleware()(next).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
