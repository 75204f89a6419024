package memory

import (
	"context"
	"sync"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

var _ output.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository keeps the activity directory in process memory.
// Reads return copies; writes go through Update under the lock.
type ActivityRepository struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*entities.Activity
}

// NewActivityRepository seeds a repository with activities, keeping their order.
func NewActivityRepository(seed []entities.Activity) *ActivityRepository {
	r := &ActivityRepository{
		order:      make([]string, 0, len(seed)),
		activities: make(map[string]*entities.Activity, len(seed)),
	}
	for _, a := range seed {
		if _, ok := r.activities[a.Name]; ok {
			continue
		}
		c := a.Clone()
		r.order = append(r.order, a.Name)
		r.activities[a.Name] = &c
	}
	return r
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Activity, len(r.order))
	for i, name := range r.order {
		out[i] = r.activities[name].Clone()
	}
	return out, nil
}

func (r *ActivityRepository) FindByName(ctx context.Context, name string) (*entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	c := a.Clone()
	return &c, nil
}

// Update applies fn to the named activity. When fn fails the activity is left
// untouched.
func (r *ActivityRepository) Update(ctx context.Context, name string, fn func(a *entities.Activity) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	draft := a.Clone()
	if err := fn(&draft); err != nil {
		return err
	}
	*a = draft
	return nil
}
