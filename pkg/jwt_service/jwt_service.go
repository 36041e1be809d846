package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/mindful/internal/api"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
)

const defaultTokenTTL = time.Hour

type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
}

// WithTTL overrides how long issued tokens stay valid.
func (s *JWTService) WithTTL(ttl time.Duration) *JWTService {
	s.ttl = ttl
	return s
}

// GenerateToken issues a session token naming the journal owner.
func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := s.now()
	claims := &api.JWTClaims{
		UserID:   user.ID.String(),
		Username: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Name,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidToken, fmt.Errorf("token parsing error: %w", err))
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
