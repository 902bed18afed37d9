// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/uniplanner/backend/internal/config"
	"github.com/uniplanner/backend/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      strings.Repeat("s", 32),
		TokenExpire: time.Hour,
		Issuer:      "uniplanner",
		Audience:    "uniplanner-api",
	}
}

func TestNewTokenManager(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.JWTConfig
		wantErr bool
	}{
		{name: "valid secret", cfg: testJWTConfig(), wantErr: false},
		{name: "missing secret", cfg: config.JWTConfig{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenManager(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTokenManager() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := manager.Issue(42, "alice", "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := manager.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute

	manager, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := manager.Issue(1, "bob", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = manager.VerifyToken(context.Background(), token)
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("VerifyToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyTokenInvalid(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	otherCfg := testJWTConfig()
	otherCfg.Secret = strings.Repeat("x", 32)
	other, err := NewTokenManager(otherCfg)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := other.Issue(1, "bob", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: token},
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.VerifyToken(context.Background(), tt.token)
			if !errors.Is(err, core.ErrTokenInvalid) {
				t.Fatalf("VerifyToken() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestVerifyTokenWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Issuer = "someone-else"

	other, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := other.Issue(1, "bob", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	manager, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	if _, err := manager.VerifyToken(context.Background(), token); err == nil {
		t.Fatal("VerifyToken() accepted token from wrong issuer")
	}
}
