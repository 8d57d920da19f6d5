package domain

import "errors"

var (
	MessageSuccessLogin = "session started"
	MessageFailedLogin  = "failed to start session"

	ErrAuthDisabled       = errors.New("authentication is not configured")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrTokenSecretMissing = errors.New("token secret is not configured")
)

type (
	LoginRequest struct {
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)
