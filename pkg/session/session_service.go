package session

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/pkg/jwt"
	"context"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

type (
	SessionService interface {
		Enabled() bool
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	sessionService struct {
		passwordHash string
		jwtService   jwt.JWTService
	}
)

// NewSessionService enables password login when passwordHash is a bcrypt
// hash. With an empty hash every route stays open.
func NewSessionService(passwordHash string, jwtService jwt.JWTService) SessionService {
	return &sessionService{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (s *sessionService) Enabled() bool {
	return s.passwordHash != ""
}

func (s *sessionService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if !s.Enabled() {
		return domain.LoginResponse{}, domain.ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		log.Warnw("login rejected", "reason", err)
		return domain.LoginResponse{}, domain.ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken("household", domain.RoleHousehold)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{Token: token}, nil
}
