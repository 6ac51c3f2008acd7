package auth

import (
	"errors"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service exchanges the configured admin credentials for an access token.
type Service struct {
	tokens            *Manager
	adminEmail        string
	adminPasswordHash string
}

func NewService(tokens *Manager, adminEmail, adminPasswordHash string) *Service {
	return &Service{
		tokens:            tokens,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}
}

func (s *Service) Login(email, password string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		return "", ErrInvalidCredentials
	}
	if !CheckPassword(s.adminPasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(s.adminEmail)
}
