package application

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
	"warden/contexts/identity-access/user-service/ports"
)

// IdentityClaims is the signed payload carried between requests. The token is
// the sole carrier of identity; there is no server-side session state.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Username string        `json:"username"`
	Role     entities.Role `json:"role"`
}

// UserID returns the subject claim as the numeric user id.
func (c IdentityClaims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrTokenInvalid
	}
	return id, nil
}

// TokenIssuer signs and validates identity tokens. The signing key is injected
// at construction and read-only afterwards.
type TokenIssuer struct {
	signingKey []byte
	ttl        time.Duration
	clock      ports.Clock
}

func NewTokenIssuer(signingKey []byte, ttl time.Duration, clock ports.Clock) TokenIssuer {
	return TokenIssuer{
		signingKey: signingKey,
		ttl:        ttl,
		clock:      clock,
	}
}

// Issue builds a signed token whose claims are exactly the user's public
// identity: username, subject (user id), and role.
func (t TokenIssuer) Issue(user entities.User) (string, error) {
	now := t.clock.Now()
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Username: user.Username,
		Role:     user.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.signingKey)
}

// Validate verifies signature and expiry and returns the embedded claims.
// Failures collapse to the token error sentinels so the transport layer can
// answer 401 without leaking parser detail.
func (t TokenIssuer) Validate(raw string) (IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrTokenInvalid
		}
		return t.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return IdentityClaims{}, domainerrors.ErrTokenExpired
		}
		return IdentityClaims{}, domainerrors.ErrTokenInvalid
	}
	if !token.Valid || !claims.Role.IsValid() {
		return IdentityClaims{}, domainerrors.ErrTokenInvalid
	}
	return *claims, nil
}
