package application

import (
	"errors"
	"testing"
	"time"

	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func testUser() entities.User {
	return entities.User{
		ID:       42,
		Username: "alice",
		Role:     entities.RoleUser,
		Enabled:  true,
	}
}

func TestIssueValidateRoundTrip(t *testing.T) {
	clock := fixedClock{now: time.Now().UTC()}
	issuer := NewTokenIssuer([]byte("test-signing-key"), time.Hour, clock)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := issuer.Validate(raw)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username %q", claims.Username)
	}
	if claims.Role != entities.RoleUser {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("unexpected user id %d", id)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id claim")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	clock := fixedClock{now: time.Now().UTC().Add(-2 * time.Hour)}
	issuer := NewTokenIssuer([]byte("test-signing-key"), time.Hour, clock)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	_, err = issuer.Validate(raw)
	if !errors.Is(err, domainerrors.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestValidateWrongKey(t *testing.T) {
	clock := fixedClock{now: time.Now().UTC()}
	issuer := NewTokenIssuer([]byte("key-one"), time.Hour, clock)
	other := NewTokenIssuer([]byte("key-two"), time.Hour, clock)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	_, err = other.Validate(raw)
	if !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-signing-key"), time.Hour, fixedClock{now: time.Now().UTC()})
	_, err := issuer.Validate("not-a-token")
	if !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
