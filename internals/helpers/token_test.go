package helper

import (
	"testing"

	"classroom_backend/internals/configs"
)

func TestTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	raw, err := CreateToken(42, "s@example.com", "Student")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := ParseToken(raw)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id, ok := claims["user_id"].(float64); !ok || int(id) != 42 {
		t.Fatalf("user_id claim = %v", claims["user_id"])
	}
	if claims["email"] != "s@example.com" || claims["role"] != "Student" {
		t.Fatalf("claims = %v", claims)
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Fatal("exp claim missing")
	}
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	configs.JWTSecret = "test-secret"
	raw, err := CreateToken(1, "a@example.com", "Teacher")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	configs.JWTSecret = "other-secret"
	if _, err := ParseToken(raw); err == nil {
		t.Fatal("token signed with a different secret parsed successfully")
	}
}
