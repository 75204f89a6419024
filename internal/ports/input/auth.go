package input

import (
	"context"

	"mergington/internal/domain/entities"
)

// AuthStatus is the read-only view of a session token.
type AuthStatus struct {
	Authenticated bool
	Username      string
}

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*entities.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentTeacher(ctx context.Context, token string) (string, bool)
	Status(ctx context.Context, token string) AuthStatus
}
