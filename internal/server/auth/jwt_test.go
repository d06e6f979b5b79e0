package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	subject := "user-123"

	tok, err := GenerateToken(subject, []string{"read:secrets", "write:secrets"}, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	p, err := ParsePrincipal(tok, secret)
	if err != nil {
		t.Fatalf("ParsePrincipal error: %v", err)
	}
	if p.Subject != subject {
		t.Fatalf("subject mismatch: got %q want %q", p.Subject, subject)
	}

	perms := p.Values(common.PermissionsClaimType)
	if len(perms) != 2 || perms[0] != "read:secrets" || perms[1] != "write:secrets" {
		t.Fatalf("unexpected permission claims: %v", perms)
	}
}

func TestParsePrincipal_ScalarPermissionsClaim(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                       "user-1",
		"exp":                       jwt.NewNumericDate(time.Now().Add(time.Hour)),
		common.PermissionsClaimType: "read:secrets,write:secrets,read:names",
	})
	tok, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	p, err := ParsePrincipal(tok, secret)
	if err != nil {
		t.Fatalf("ParsePrincipal error: %v", err)
	}

	perms := p.Values(common.PermissionsClaimType)
	if len(perms) != 1 || perms[0] != "read:secrets,write:secrets,read:names" {
		t.Fatalf("expected the comma-joined claim to survive unchanged, got %v", perms)
	}
}

func TestParsePrincipal_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", nil, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParsePrincipal(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestParsePrincipal_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", nil, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParsePrincipal(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParsePrincipal_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParsePrincipal("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParsePrincipal_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ParsePrincipal(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for missing sub, got %v", err)
	}
}

func TestPrincipal_Values(t *testing.T) {
	t.Parallel()

	p := &Principal{
		Subject: "u",
		Claims: []Claim{
			{Type: "permissions", Value: "read:names"},
			{Type: "scope", Value: "openid"},
			{Type: "permissions", Value: "read:secrets"},
		},
	}

	got := p.Values("permissions")
	if len(got) != 2 || got[0] != "read:names" || got[1] != "read:secrets" {
		t.Fatalf("unexpected values: %v", got)
	}
	if p.Values("missing") != nil {
		t.Fatalf("expected nil for absent claim type")
	}
}
