package session_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/pkg/jwt"
	"Go-Shopping-Inventory/pkg/session"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("groceries"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTServiceWithSecret("secret")
	service := session.NewSessionService(string(hash), jwtService)
	require.True(t, service.Enabled())

	res, err := service.Login(context.Background(), domain.LoginRequest{Password: "groceries"})
	require.NoError(t, err)

	_, role, err := jwtService.GetSubjectByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHousehold, role)

	_, err = service.Login(context.Background(), domain.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLoginDisabled(t *testing.T) {
	service := session.NewSessionService("", jwt.NewJWTServiceWithSecret("secret"))
	assert.False(t, service.Enabled())

	_, err := service.Login(context.Background(), domain.LoginRequest{Password: "x"})
	assert.ErrorIs(t, err, domain.ErrAuthDisabled)
}
