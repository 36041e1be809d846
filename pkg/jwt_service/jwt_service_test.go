package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
	jwtservice "github.com/limbo/mindful/pkg/jwt_service"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwtservice.New("secret")
	user := &entity.User{ID: uuid.New(), Name: "alice"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseTokenRejects(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "alice"}
	foreign, err := jwtservice.New("other").GenerateToken(user)
	require.NoError(t, err)
	expired, err := jwtservice.New("secret").WithTTL(-time.Minute).GenerateToken(user)
	require.NoError(t, err)

	svc := jwtservice.New("secret")
	for desc, token := range map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": foreign,
		"expired":      expired,
	} {
		t.Run(desc, func(t *testing.T) {
			_, err := svc.ParseToken(token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
