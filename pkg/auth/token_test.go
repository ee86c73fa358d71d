package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/healthtrack-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "healthtrack",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: 7, PhoneNo: "5550001"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	userID, err := claims.UserID()
	if err != nil || userID != 7 {
		t.Fatalf("expected user id 7, got %d (%v)", userID, err)
	}
	if claims.PhoneNo != "5550001" {
		t.Fatalf("expected phoneno claim, got %q", claims.PhoneNo)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected jti to be generated")
	}

	exp := now.Add(cfg.TTL())
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestMintAccessTokenUniquePerCall(t *testing.T) {
	cfg := testConfig()
	now := time.Now()
	payload := AccessTokenPayload{UserID: 1, PhoneNo: "1"}

	first, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	second, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if first == second {
		t.Fatal("tokens minted in the same instant must differ")
	}
}

func TestMintAccessTokenValidatesInput(t *testing.T) {
	cfg := testConfig()
	now := time.Now()

	if _, err := MintAccessToken(config.JWTConfig{Issuer: "x", ExpirationMinutes: 1}, now, AccessTokenPayload{UserID: 1, PhoneNo: "1"}); err == nil {
		t.Fatal("expected missing secret to fail")
	}
	if _, err := MintAccessToken(cfg, now, AccessTokenPayload{PhoneNo: "1"}); err == nil {
		t.Fatal("expected missing user id to fail")
	}
	if _, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: 1, PhoneNo: " "}); err == nil {
		t.Fatal("expected missing phone to fail")
	}
}

func TestParseAccessTokenInvalidSignature(t *testing.T) {
	cfg := testConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, PhoneNo: "1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Secret = "another-secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to fail")
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseAccessToken(cfg, tampered); err == nil {
		t.Fatal("expected tampered token to fail")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := testConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), AccessTokenPayload{UserID: 1, PhoneNo: "1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestParseAccessTokenWrongIssuer(t *testing.T) {
	cfg := testConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, PhoneNo: "1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}

func TestParseAccessTokenRejectsOtherAlgorithms(t *testing.T) {
	cfg := testConfig()
	claims := AccessTokenClaims{
		PhoneNo: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := ParseAccessToken(cfg, unsigned); err == nil {
		t.Fatal("expected alg=none to fail")
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}
	if _, err := ParseAccessToken(cfg, hs512); err == nil {
		t.Fatal("expected HS512 to fail")
	}
}

func TestParseAccessTokenRequiresExpiryAndSubject(t *testing.T) {
	cfg := testConfig()

	noExp := AccessTokenClaims{PhoneNo: "1", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: cfg.Issuer}}
	token, err := jwt.NewWithClaims(jwtSigningMethod, noExp).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected token without exp to fail")
	}

	noSub := AccessTokenClaims{PhoneNo: "1", RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err = jwt.NewWithClaims(jwtSigningMethod, noSub).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected token without subject to fail")
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", strings.Repeat("x.", 3)} {
		if _, err := ParseAccessToken(testConfig(), raw); err == nil {
			t.Fatalf("expected %q to fail", raw)
		}
	}
}
