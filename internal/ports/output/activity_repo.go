package output

import (
	"context"

	"mergington/internal/domain/entities"
)

// ActivityRepository owns the activity directory. Mutations are applied
// atomically per call: Update runs fn under the repository's write lock.
type ActivityRepository interface {
	FindAll(ctx context.Context) ([]entities.Activity, error)
	FindByName(ctx context.Context, name string) (*entities.Activity, error)
	Update(ctx context.Context, name string, fn func(a *entities.Activity) error) error
}
