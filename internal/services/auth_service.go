package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin-panel authentication: credential checks and
// signed session tokens.
type AuthService interface {
	// Login validates credentials and returns the admin plus a signed
	// session token. Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (*models.Admin, string, error)

	// VerifyToken validates a session token and returns the admin identity
	// it was issued for. Satisfies middleware.TokenVerifier.
	VerifyToken(token string) (adminID string, adminEmail string, err error)

	// TokenTTL reports how long issued tokens stay valid, for cookie expiry.
	TokenTTL() time.Duration
}

type adminClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	repo   repository.AdminRepository
	secret []byte
	ttl    time.Duration
	log    *logger.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(repo repository.AdminRepository, jwtSecret string, ttl time.Duration, log *logger.Logger) AuthService {
	return &authService{
		repo:   repo,
		secret: []byte(jwtSecret),
		ttl:    ttl,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up admin", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		s.log.Warn("Login attempt for unknown admin", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("Login attempt with wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(admin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.log.Info("Admin logged in", map[string]interface{}{
		"admin_id": admin.ID,
		"email":    admin.Email,
	})

	return admin, token, nil
}

func (s *authService) issueToken(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := adminClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) VerifyToken(token string) (string, string, error) {
	var claims adminClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return "", "", errors.New("invalid token")
	}
	return claims.AdminID, claims.Email, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.ttl
}
