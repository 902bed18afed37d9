// AngelaMos | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestJSONError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "unauthorized",
			err:        UnauthorizedError("authorization token required"),
			wantStatus: http.StatusUnauthorized,
			wantError:  "authorization token required",
		},
		{
			name:       "forbidden",
			err:        TokenInvalidError(),
			wantStatus: http.StatusForbidden,
			wantError:  "invalid token",
		},
		{
			name:       "conflict reported as bad request",
			err:        ConflictError("username or email already exists"),
			wantStatus: http.StatusBadRequest,
			wantError:  "username or email already exists",
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("handler: %w", NotFoundError("class")),
			wantStatus: http.StatusNotFound,
			wantError:  "class not found",
		},
		{
			name:       "plain error hides detail",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSONError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, "class deleted successfully")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), `"message":"class deleted successfully"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestFormatValidationError(t *testing.T) {
	type form struct {
		Username string `validate:"required,min=3"`
		Email    string `validate:"required,email"`
		Day      string `validate:"omitempty,oneof=Monday Tuesday"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name  string
		input form
		want  []string
	}{
		{
			name:  "missing fields",
			input: form{},
			want:  []string{"username is required", "email is required"},
		},
		{
			name:  "too short",
			input: form{Username: "ab", Email: "a@b.co"},
			want:  []string{"username must be at least 3 characters"},
		},
		{
			name:  "bad enum",
			input: form{Username: "abc", Email: "a@b.co", Day: "Funday"},
			want:  []string{"day must be one of: Monday Tuesday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if err == nil {
				t.Fatal("expected validation to fail")
			}

			got := FormatValidationError(err)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("FormatValidationError() = %q, want it to contain %q",
						got, want)
				}
			}
		})
	}
}

func TestFormatValidationErrorNonValidator(t *testing.T) {
	if got := FormatValidationError(errors.New("boom")); got != "invalid request" {
		t.Errorf("FormatValidationError() = %q", got)
	}
}
