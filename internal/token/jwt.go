// Package token issues and validates the access tokens ledger participants
// and the policy owner present. HS256 with a shared signing key is enough
// here; how the owner credential is established upstream (single key,
// multi-sig custody) is outside the core.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pbmledger/internal/platform/middleware"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
)

// Claims represents the JWT claims for ledger access tokens.
type Claims struct {
	Identity string `json:"identity"`
	Owner    bool   `json:"owner"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	issuer     string
}

func NewService(signingKey string, issuer string) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

// GenerateAccessToken signs a token for the given participant. Owner tokens
// additionally unlock the administrative surface.
func (s *Service) GenerateAccessToken(identity id.Identity, owner bool, expiresIn time.Duration) (string, error) {
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Identity: identity.String(),
		Owner:    owner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})

	return newToken.SignedString(s.signingKey)
}

// ValidateToken implements middleware.TokenValidator.
func (s *Service) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.Wrap(dErrors.CodeUnauthorized, "invalid token", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	caller, err := id.ParseIdentity(claims.Identity)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token carries no identity")
	}

	return &middleware.TokenClaims{Caller: caller, Owner: claims.Owner}, nil
}
