package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

var _ input.AuthUseCase = (*AuthService)(nil)

// tokenBytes is the entropy of a session token before encoding.
const tokenBytes = 32

type AuthService struct {
	credentials output.CredentialSource
	sessions    output.SessionStore
	newToken    func() (string, error)
}

func NewAuthService(credentials output.CredentialSource, sessions output.SessionStore) *AuthService {
	return &AuthService{
		credentials: credentials,
		sessions:    sessions,
		newToken:    randomToken,
	}
}

// Login checks username/password against freshly loaded credentials and
// opens a session on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	creds, err := s.credentials.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if !creds.Verify(username, password) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	session := &entities.Session{
		Token:           token,
		TeacherUsername: username,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// Logout is idempotent: unknown or empty tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) CurrentTeacher(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	session, ok := s.sessions.FindByToken(ctx, token)
	if !ok {
		return "", false
	}
	return session.TeacherUsername, true
}

func (s *AuthService) Status(ctx context.Context, token string) input.AuthStatus {
	username, ok := s.CurrentTeacher(ctx, token)
	return input.AuthStatus{Authenticated: ok, Username: username}
}

// randomToken returns 32 random bytes as unpadded URL-safe base64.
func randomToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
