package auth

import (
	"time"

	"go.uber.org/zap"

	"gashadrift/models"
	"gashadrift/utils"
)

// AuthService issues in-memory sessions. Credentials are accepted but never
// checked against any store: both operations always succeed once the
// simulated processing delay elapses.
type AuthService interface {
	SignIn(req models.SignInRequest, role models.Role) (*models.AuthSession, error)
	Register(req models.RegisterRequest) (*models.AuthSession, error)
}

// DefaultAuthService implements AuthService. The delays model the original
// storefront's fixed sign-in and registration timers; tests set them to
// zero.
type DefaultAuthService struct {
	SignInDelay   time.Duration
	RegisterDelay time.Duration
	TokenTTL      time.Duration
}

func (s *DefaultAuthService) SignIn(req models.SignInRequest, role models.Role) (*models.AuthSession, error) {
	if s.SignInDelay > 0 {
		time.Sleep(s.SignInDelay)
	}

	token, err := utils.GenerateToken(req.Name, role, s.tokenTTL())
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("session issued",
		zap.String("name", req.Name),
		zap.String("role", string(role)),
	)
	return &models.AuthSession{Token: token, Role: role, Name: req.Name}, nil
}

func (s *DefaultAuthService) Register(req models.RegisterRequest) (*models.AuthSession, error) {
	if s.RegisterDelay > 0 {
		time.Sleep(s.RegisterDelay)
	}

	// Nothing is persisted; registration simply opens a user session.
	token, err := utils.GenerateToken(req.Name, models.RoleUser, s.tokenTTL())
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("account registered",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
	)
	return &models.AuthSession{Token: token, Role: models.RoleUser, Name: req.Name}, nil
}

func (s *DefaultAuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}
