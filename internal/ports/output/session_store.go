package output

import (
	"context"

	"mergington/internal/domain/entities"
)

type SessionStore interface {
	Save(ctx context.Context, session *entities.Session) error
	FindByToken(ctx context.Context, token string) (*entities.Session, bool)
	Delete(ctx context.Context, token string) error
}
