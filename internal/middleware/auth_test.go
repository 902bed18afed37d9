// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uniplanner/backend/internal/core"
)

type fakeVerifier struct {
	claims *TokenClaims
	err    error
}

func (f *fakeVerifier) VerifyToken(
	_ context.Context,
	_ string,
) (*TokenClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func TestAuthenticator(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
	}{
		{
			name:       "missing token",
			header:     "",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			verifier: &fakeVerifier{
				err: fmt.Errorf("verify token: %w", core.ErrTokenInvalid),
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			verifier: &fakeVerifier{
				err: fmt.Errorf("verify token: %w", core.ErrTokenExpired),
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			verifier: &fakeVerifier{
				claims: &TokenClaims{UserID: 7, Username: "alice", Role: "user"},
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotRole string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID = GetUserID(r.Context())
				gotRole = GetUserRole(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/classes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Authenticator(tt.verifier)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				if gotID != tt.verifier.claims.UserID {
					t.Errorf("GetUserID() = %d, want %d", gotID, tt.verifier.claims.UserID)
				}
				if gotRole != tt.verifier.claims.Role {
					t.Errorf("GetUserRole() = %q, want %q", gotRole, tt.verifier.claims.Role)
				}
			} else if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("body = %q, want an error payload", rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "admin allowed", role: "admin", wantStatus: http.StatusOK},
		{name: "user forbidden", role: "user", wantStatus: http.StatusForbidden},
		{name: "no role", role: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tt.role != "" {
				ctx := context.WithValue(req.Context(), UserRoleKey, tt.role)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "no header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic abc123", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			if got := ExtractToken(req); got != tt.want {
				t.Errorf("ExtractToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
