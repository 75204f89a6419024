package memory

import (
	"strings"
	"testing"
)

func TestDefaultActivities_LoadsCatalogueInOrder(t *testing.T) {
	activities, err := DefaultActivities()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activities) != 9 {
		t.Fatalf("expected 9 activities, got %d", len(activities))
	}
	if activities[0].Name != "Chess Club" || activities[8].Name != "Debate Team" {
		t.Errorf("unexpected order: first=%s last=%s", activities[0].Name, activities[8].Name)
	}
	chess := activities[0]
	if chess.MaxParticipants != 12 || len(chess.Participants) != 2 {
		t.Errorf("unexpected chess club: %+v", chess)
	}
}

func TestParseSeed_RejectsDuplicateNames(t *testing.T) {
	data := []byte(`
[[activities]]
name = "Chess Club"

[[activities]]
name = "Chess Club"
`)
	_, err := ParseSeed(data)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestParseSeed_DropsDuplicateParticipants(t *testing.T) {
	data := []byte(`
[[activities]]
name = "Art Club"
participants = ["a@mergington.edu", "a@mergington.edu", "b@mergington.edu"]
`)
	activities, err := ParseSeed(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := activities[0].Participants; len(got) != 2 || got[1] != "b@mergington.edu" {
		t.Errorf("unexpected participants: %+v", got)
	}
}

func TestParseSeed_RejectsMissingName(t *testing.T) {
	if _, err := ParseSeed([]byte("[[activities]]\ndescription = \"x\"\n")); err == nil {
		t.Fatal("expected error for activity without name")
	}
}
