package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
)

func newTestRepo() *ActivityRepository {
	return NewActivityRepository([]entities.Activity{
		{Name: "Chess Club", MaxParticipants: 12, Participants: []string{"michael@mergington.edu", "daniel@mergington.edu"}},
		{Name: "Art Club", MaxParticipants: 15, Participants: []string{}},
	})
}

func TestActivityRepository_FindAll_ReturnsCopiesInOrder(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	all, err := r.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Chess Club" || all[1].Name != "Art Club" {
		t.Fatalf("unexpected activities: %+v", all)
	}

	all[0].Participants[0] = "mutated@mergington.edu"
	again, _ := r.FindByName(ctx, "Chess Club")
	if again.Participants[0] != "michael@mergington.edu" {
		t.Error("FindAll must return copies")
	}
}

func TestActivityRepository_FindByName_Unknown(t *testing.T) {
	r := newTestRepo()

	_, err := r.FindByName(context.Background(), "Underwater Basket Weaving")

	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestActivityRepository_Update_FailureLeavesActivityUntouched(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	err := r.Update(ctx, "Chess Club", func(a *entities.Activity) error {
		a.Participants = append(a.Participants, "half@mergington.edu")
		return domain.ErrAlreadySignedUp
	})

	if !errors.Is(err, domain.ErrAlreadySignedUp) {
		t.Fatalf("expected fn error to be returned, got %v", err)
	}
	a, _ := r.FindByName(ctx, "Chess Club")
	if len(a.Participants) != 2 {
		t.Errorf("failed update must not be applied, got %+v", a.Participants)
	}
}

func TestActivityRepository_Update_UnknownActivity(t *testing.T) {
	r := newTestRepo()
	called := false

	err := r.Update(context.Background(), "Nope", func(a *entities.Activity) error {
		called = true
		return nil
	})

	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
	if called {
		t.Error("fn must not run for an unknown activity")
	}
}

func TestActivityRepository_ConcurrentSignups(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i%25)
			_ = r.Update(ctx, "Art Club", func(a *entities.Activity) error {
				return a.AddParticipant(email)
			})
		}(i)
	}
	wg.Wait()

	a, _ := r.FindByName(ctx, "Art Club")
	if len(a.Participants) != 25 {
		t.Errorf("expected 25 unique participants, got %d", len(a.Participants))
	}
}

func TestSessionStore_SaveFindDelete(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	_ = s.Save(ctx, &entities.Session{Token: "tok", TeacherUsername: "mrodriguez"})
	got, ok := s.FindByToken(ctx, "tok")
	if !ok || got.TeacherUsername != "mrodriguez" {
		t.Fatalf("expected session for tok, got %+v ok=%v", got, ok)
	}

	_ = s.Delete(ctx, "tok")
	_ = s.Delete(ctx, "tok")
	if _, ok := s.FindByToken(ctx, "tok"); ok {
		t.Error("session must be gone after delete")
	}
}
