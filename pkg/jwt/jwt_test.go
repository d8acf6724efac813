package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(7, "alice", "USER", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %s", claims.Username)
	}
	if claims.Role != "USER" {
		t.Errorf("expected role USER, got %s", claims.Role)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject alice, got %s", claims.Subject)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "alice", "USER", "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := ValidateToken(token, "secret-b"); err == nil {
		t.Error("expected error for a token signed with a different secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken(7, "alice", "USER", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("expected error for an expired token")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", "test-secret"); err == nil {
		t.Error("expected error for a malformed token")
	}
}
