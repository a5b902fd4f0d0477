package utils

import (
	"testing"

	common_models "go-citizen/internal/common/models"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken("900000000V", common_models.RoleGS)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.NIC != "900000000V" {
		t.Errorf("expected NIC 900000000V, got %q", claims.NIC)
	}
	if claims.Role != common_models.RoleGS {
		t.Errorf("expected role gs, got %q", claims.Role)
	}
	if claims.Subject != "900000000V" {
		t.Errorf("expected subject to carry the NIC, got %q", claims.Subject)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken("900000000V", common_models.RoleCitizen)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected validation to fail after secret rotation")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Birth Certificate", "birth-certificate"},
		{"  Passport  Issue ", "passport-issue"},
		{"NIC/Replacement", "nic-replacement"},
		{"already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
