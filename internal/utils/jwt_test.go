// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.ExpiresAt == nil {
		t.Error("expected exp claim when duration is set")
	}
}

func TestGenerateJWTToken_NoExpiryByDefault(t *testing.T) {
	token, err := GenerateJWTToken("", 5, 0, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims := token.Token.Claims.(*jwt.RegisteredClaims)
	if claims.ExpiresAt != nil {
		t.Errorf("expected no exp claim, got %v", claims.ExpiresAt)
	}
	if claims.Issuer != "" {
		t.Errorf("expected no iss claim, got %q", claims.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		key      string
	}{
		{"empty key", time.Hour, ""},
		{"negative duration", -time.Second, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, userID, 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
	if parsedToken.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, parsedToken.Issuer)
	}
}

func TestValidateAndParseJWTToken_WithoutExpiry(t *testing.T) {
	key := "secret-key"
	genToken, _ := GenerateJWTToken("", 9, 0, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, "")
	if err != nil {
		t.Fatalf("expected token without exp to be valid, got error: %v", err)
	}
	if parsedToken.UserID != 9 {
		t.Errorf("expected userID 9, got %d", parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, "")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_IssuerIgnoredWhenNotConfigured(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("any-issuer", 3, time.Hour, key)

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, key, ""); err != nil {
		t.Errorf("expected token to be valid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{Subject: strconv.Itoa(1)}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, key, ""); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_RejectsUnsignedToken(t *testing.T) {
	claims := &jwt.RegisteredClaims{Subject: "1"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", ""); err == nil {
		t.Error("expected alg=none token to be rejected")
	}
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{Subject: "alice"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))

	if _, err := ValidateAndParseJWTToken(signed, key, ""); err == nil {
		t.Error("expected error for non-numeric subject")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{Issuer: "iss"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))

	if _, err := ValidateAndParseJWTToken(signed, key, ""); err == nil {
		t.Error("expected error for missing subject")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
