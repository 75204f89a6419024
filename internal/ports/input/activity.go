package input

import (
	"context"

	"mergington/internal/domain/entities"
)

type ActivityUseCase interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	GetActivity(ctx context.Context, name string) (*entities.Activity, error)
	Signup(ctx context.Context, name, email, teacher string) error
	Unregister(ctx context.Context, name, email, teacher string) error
}
