package application

import (
	"context"
	"fmt"

	"mergington/internal/domain/entities"
	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

var _ input.ActivityUseCase = (*ActivityService)(nil)

type ActivityService struct {
	activityRepo output.ActivityRepository
	notifier     output.RosterNotifier
}

func NewActivityService(
	activityRepo output.ActivityRepository,
	notifier output.RosterNotifier,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		notifier:     notifier,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	activities, err := s.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, name string) (*entities.Activity, error) {
	return s.activityRepo.FindByName(ctx, name)
}

// Signup adds email to the activity roster. Capacity is not checked.
func (s *ActivityService) Signup(ctx context.Context, name, email, teacher string) error {
	change := output.RosterChange{Activity: name, Email: email, Teacher: teacher}
	err := s.activityRepo.Update(ctx, name, func(a *entities.Activity) error {
		if err := a.AddParticipant(email); err != nil {
			return err
		}
		change.Participants, change.MaxParticipants = len(a.Participants), a.MaxParticipants
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(ctx, change)
	return nil
}

func (s *ActivityService) Unregister(ctx context.Context, name, email, teacher string) error {
	change := output.RosterChange{Activity: name, Email: email, Teacher: teacher, Removed: true}
	err := s.activityRepo.Update(ctx, name, func(a *entities.Activity) error {
		if err := a.RemoveParticipant(email); err != nil {
			return err
		}
		change.Participants, change.MaxParticipants = len(a.Participants), a.MaxParticipants
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(ctx, change)
	return nil
}

func (s *ActivityService) notify(ctx context.Context, change output.RosterChange) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(context.WithoutCancel(ctx), change)
}
