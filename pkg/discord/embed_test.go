package discord

import (
	"testing"
	"time"
)

func TestFormatPlaces(t *testing.T) {
	cases := []struct {
		max, count int
		want       string
	}{
		{12, 3, "3/12"},
		{0, 4, "4 (unlimited)"},
		{1, 2, "2/1 ⚠️"},
	}
	for _, c := range cases {
		if got := FormatPlaces(c.max, c.count); got != c.want {
			t.Errorf("FormatPlaces(%d, %d) = %q, want %q", c.max, c.count, got, c.want)
		}
	}
}

func TestBuildRosterEmbed(t *testing.T) {
	at := time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

	e := BuildRosterEmbed("Chess Club", "desc", true, 1, 12, at)

	if e.Title != "🏫 Chess Club" || e.Color != ColorUnregister || e.Description != "desc" {
		t.Errorf("unexpected embed: %+v", e)
	}
	if len(e.Fields) != 1 || e.Fields[0].Value != "1/12" {
		t.Errorf("unexpected fields: %+v", e.Fields)
	}
	if e.Timestamp != "2026-10-17T15:30:00Z" {
		t.Errorf("unexpected timestamp: %s", e.Timestamp)
	}
}
