package services

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any email/password mismatch;
// the login endpoint never says which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthService authenticates the single store operator account.
// Session issuance itself (the token) stays at the JWT boundary.
type AdminAuthService struct {
	email        string
	passwordHash string
	jwt          *JWTService
}

func NewAdminAuthService(email, passwordHash string, jwtService *JWTService) *AdminAuthService {
	return &AdminAuthService{email: email, passwordHash: passwordHash, jwt: jwtService}
}

// Login checks the credentials against the configured operator account
// and returns a signed admin token.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	if email != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAdminJWT(email)
	if err != nil {
		log.Printf("[auth] failed to issue admin token: %v", err)
		return "", err
	}
	return token, nil
}
