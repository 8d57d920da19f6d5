package jwt_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/pkg/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.NewJWTServiceWithSecret("secret")

	token, err := service.GenerateToken("household", domain.RoleHousehold)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, role, err := service.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "household", subject)
	assert.Equal(t, domain.RoleHousehold, role)
}

func TestValidateRejectsForeignToken(t *testing.T) {
	token, err := jwt.NewJWTServiceWithSecret("one").GenerateToken("household", domain.RoleHousehold)
	require.NoError(t, err)

	_, _, err = jwt.NewJWTServiceWithSecret("two").GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = jwt.NewJWTServiceWithSecret("one").GetSubjectByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestEmptySecretSignsAndAcceptsNothing(t *testing.T) {
	service := jwt.NewJWTServiceWithSecret("")

	_, err := service.GenerateToken("household", domain.RoleHousehold)
	assert.ErrorIs(t, err, domain.ErrTokenSecretMissing)

	forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub_id": "household",
		"role":   domain.RoleHousehold,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.ErrorIs(t, err, domain.ErrTokenSecretMissing)

	_, _, err = service.GetSubjectByToken(forged)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
