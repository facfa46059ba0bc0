package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"changemoney-backend/internal/server/authctx"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T) http.Handler {
	return AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authctx.FromContext(r.Context()) == nil {
			t.Error("admin missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	valid := signToken(t, jwt.MapClaims{
		"sub":        "admin",
		"role":       "admin",
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	wrongType := signToken(t, jwt.MapClaims{
		"sub":        "admin",
		"role":       "admin",
		"token_type": "refresh",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, jwt.MapClaims{
		"sub":        "admin",
		"role":       "admin",
		"token_type": "access",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"wrong token type", "Bearer " + wrongType, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusNoContent},
	}

	h := protectedHandler(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
