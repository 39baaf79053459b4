// Package auth logs the admin in against the backend and keeps the bearer
// token in local storage. When the backend cannot be reached, the configured
// admin credentials are accepted instead.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agencysite/internal/api"
	"agencysite/internal/core"
)

// LocalTokenPrefix marks tokens issued by the local credential check.
const LocalTokenPrefix = "local-"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
	Local bool   `json:"local"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type Service struct {
	client      *api.Client
	credentials core.AdminConfig
	logger      *zap.Logger
}

func NewService(client *api.Client, credentials core.AdminConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, credentials: credentials, logger: logger}
}

// Login exchanges credentials for a token and stores it. A backend rejection
// is ErrInvalidCredentials; an unreachable backend falls back to the local
// credential check.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)

	var resp loginResponse
	err := s.client.Post(ctx, "/admin/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)

	switch {
	case err == nil:
		token := resp.Token
		if token == "" {
			token = resp.AccessToken
		}
		if token == "" {
			return Session{}, errors.New("login response carried no token")
		}
		if resp.User.Email == "" {
			resp.User.Email = email
		}
		if err := s.client.SetToken(ctx, token); err != nil {
			return Session{}, fmt.Errorf("failed to store token: %w", err)
		}
		s.logger.Info("Admin logged in", zap.String("email", resp.User.Email))
		return Session{Token: token, User: resp.User}, nil

	case isRejection(err):
		return Session{}, ErrInvalidCredentials

	case api.IsUnavailable(err):
		s.logger.Warn("Backend unavailable, checking local credentials", zap.Error(err))
		return s.localLogin(ctx, email, password)
	}

	return Session{}, fmt.Errorf("login failed: %w", err)
}

func (s *Service) localLogin(ctx context.Context, email, password string) (Session, error) {
	if s.credentials.Email == "" || s.credentials.Password == "" {
		return Session{}, ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(s.credentials.Email)))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password))
	if emailOK&passwordOK != 1 {
		return Session{}, ErrInvalidCredentials
	}

	token := LocalTokenPrefix + uuid.NewString()
	if err := s.client.SetToken(ctx, token); err != nil {
		return Session{}, fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.Info("Admin logged in with local credentials", zap.String("email", s.credentials.Email))
	return Session{Token: token, User: s.localUser(), Local: true}, nil
}

// Logout tells the backend (best effort) and always clears the stored token.
func (s *Service) Logout(ctx context.Context) error {
	token := s.client.Token(ctx)
	if token != "" && !strings.HasPrefix(token, LocalTokenPrefix) {
		if err := s.client.Post(ctx, "/admin/logout", nil, nil); err != nil {
			s.logger.Warn("Backend logout failed", zap.Error(err))
		}
	}

	if err := s.client.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Me returns the logged-in admin.
func (s *Service) Me(ctx context.Context) (User, error) {
	token := s.client.Token(ctx)
	if token == "" {
		return User{}, ErrNotAuthenticated
	}
	if strings.HasPrefix(token, LocalTokenPrefix) {
		return s.localUser(), nil
	}

	var user User
	if err := s.client.Get(ctx, "/admin/me", &user); err != nil {
		if isRejection(err) {
			return User{}, ErrNotAuthenticated
		}
		return User{}, fmt.Errorf("failed to fetch admin profile: %w", err)
	}
	return user, nil
}

// Verify reports whether token matches the stored admin token.
func (s *Service) Verify(ctx context.Context, token string) bool {
	stored := s.client.Token(ctx)
	if stored == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}

// IsAuthenticated only checks that a token is stored.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.client.HasToken(ctx)
}

func (s *Service) localUser() User {
	return User{Email: s.credentials.Email, Name: "Admin"}
}

func isRejection(err error) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity:
		return true
	}
	return false
}
