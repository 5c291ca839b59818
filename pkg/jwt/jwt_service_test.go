package jwt

import (
	"Recipe-Share-Backend/domain"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func testService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "RECIPE-SHARE"}
}

func TestGenerateAndParseTokenUser(t *testing.T) {
	service := testService()

	token := service.GenerateTokenUser("1d8d24f1-4b3c-4a53-b42a-6fd215a3a9a1", "user")
	if token == "" {
		t.Fatal("expected a signed token")
	}

	userID, role, err := service.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "1d8d24f1-4b3c-4a53-b42a-6fd215a3a9a1" {
		t.Errorf("got user id %q", userID)
	}
	if role != "user" {
		t.Errorf("got role %q, want user", role)
	}
}

func TestGetUserIDByExpiredToken(t *testing.T) {
	service := testService()

	claims := jwtUserClaim{
		"1d8d24f1-4b3c-4a53-b42a-6fd215a3a9a1",
		"user",
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(service.secretKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, _, err = service.GetUserIDByToken(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestGetUserIDByForeignToken(t *testing.T) {
	service := testService()
	other := &jwtService{secretKey: "someone-else", issuer: "RECIPE-SHARE"}

	_, _, err := service.GetUserIDByToken(other.GenerateTokenUser("abc", "user"))
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}

	_, _, err = service.GetUserIDByToken("not-a-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}
