package memory

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"mergington/internal/domain/entities"
)

//go:embed activities.toml
var defaultSeed []byte

type seedFile struct {
	Activities []seedActivity `toml:"activities"`
}

type seedActivity struct {
	Name            string   `toml:"name"`
	Description     string   `toml:"description"`
	Schedule        string   `toml:"schedule"`
	MaxParticipants int      `toml:"max_participants"`
	Participants    []string `toml:"participants"`
}

// DefaultActivities returns the built-in activity catalogue.
func DefaultActivities() ([]entities.Activity, error) {
	return ParseSeed(defaultSeed)
}

// ParseSeed decodes a TOML activity catalogue. Names must be unique and
// non-empty; duplicate participants within an activity are dropped.
func ParseSeed(data []byte) ([]entities.Activity, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse activity seed: %w", err)
	}
	seen := make(map[string]bool, len(f.Activities))
	out := make([]entities.Activity, 0, len(f.Activities))
	for i, sa := range f.Activities {
		if sa.Name == "" {
			return nil, fmt.Errorf("parse activity seed: activity #%d has no name", i+1)
		}
		if seen[sa.Name] {
			return nil, fmt.Errorf("parse activity seed: duplicate activity %q", sa.Name)
		}
		seen[sa.Name] = true
		a := entities.Activity{
			Name:            sa.Name,
			Description:     sa.Description,
			Schedule:        sa.Schedule,
			MaxParticipants: sa.MaxParticipants,
			Participants:    []string{},
		}
		for _, p := range sa.Participants {
			_ = a.AddParticipant(p)
		}
		out = append(out, a)
	}
	return out, nil
}
