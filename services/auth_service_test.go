package services_test

import (
	"testing"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/services"
)

func TestPasswordProblems(t *testing.T) {
	auth := services.GetAuthService()

	cases := []struct {
		password string
		problems int
	}{
		{"Secret#2026", 0},
		{"short1!", 1},
		{"longenough!", 1},
		{"longenough1", 1},
		{"abc", 3},
	}
	for _, tc := range cases {
		if got := auth.PasswordProblems(tc.password); len(got) != tc.problems {
			t.Errorf("%q: got %v, want %d problems", tc.password, got, tc.problems)
		}
	}
	if !auth.ValidatePassword("Secret#2026") {
		t.Error("valid password rejected")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	auth := services.GetAuthService()
	hash, err := auth.HashPassword("Secret#2026")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "Secret#2026" {
		t.Fatal("password stored in clear")
	}
	if !auth.VerifyPassword(hash, "Secret#2026") {
		t.Error("correct password rejected")
	}
	if auth.VerifyPassword(hash, "secret#2026") {
		t.Error("wrong password accepted")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	auth := services.GetAuthService()
	if auth.HashToken("abc") != auth.HashToken("abc") {
		t.Fatal("hash must be deterministic")
	}
	if auth.HashToken("abc") == auth.HashToken("abd") {
		t.Fatal("different tokens collided")
	}
}

func TestStaffJWTRoundTrip(t *testing.T) {
	if err := services.InitJWTService("unit-test-secret", time.Hour); err != nil {
		t.Fatal(err)
	}

	token, err := services.GenerateStaffJWT("0190f3a2-7c4e-7b1a-9d2e-5f6a7b8c9d0e", "ops@bestwishes.lk", "deliveryStaff")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := services.VerifyStaffJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "ops@bestwishes.lk" || claims.Role != "deliveryStaff" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := services.VerifyStaffJWT(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}

	if err := services.InitJWTService("another-secret", time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, err := services.VerifyStaffJWT(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestGenerateStaffJWTRequiresClaims(t *testing.T) {
	if _, err := services.GenerateStaffJWT("", "a@b.c", "admin"); err == nil {
		t.Error("empty staff id accepted")
	}
}

func TestInitJWTServiceRejectsEmptySecret(t *testing.T) {
	if err := services.InitJWTService("", time.Hour); err == nil {
		t.Error("empty secret accepted")
	}
}

func TestStaffJWTIsUniquePerIssue(t *testing.T) {
	if err := services.InitJWTService("unit-test-secret", time.Hour); err != nil {
		t.Fatalf("init: %v", err)
	}
	const id = "0190f3a2-7c4e-7b1a-9d2e-5f6a7b8c9d0e"

	first, err := services.GenerateStaffJWT(id, "ops@bestwishes.lk", "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	second, err := services.GenerateStaffJWT(id, "ops@bestwishes.lk", "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if first == second {
		t.Fatal("two tokens issued in the same second are identical")
	}

	claims, err := services.VerifyStaffJWT(first)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ID == "" {
		t.Error("token has no jti")
	}
}
