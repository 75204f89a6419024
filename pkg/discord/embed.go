package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	ColorSignup     = 0x2ecc71
	ColorUnregister = 0xe74c3c
)

// FormatPlaces renders the roster size against the advisory capacity.
// A roster above capacity is shown as such; capacity is never enforced.
func FormatPlaces(maxParticipants, count int) string {
	if maxParticipants <= 0 {
		return fmt.Sprintf("%d (unlimited)", count)
	}
	if count > maxParticipants {
		return fmt.Sprintf("%d/%d ⚠️", count, maxParticipants)
	}
	return fmt.Sprintf("%d/%d", count, maxParticipants)
}

// BuildRosterEmbed builds the message posted after a signup or unregister.
func BuildRosterEmbed(activity, description string, removed bool, count, maxParticipants int, at time.Time) *discordgo.MessageEmbed {
	color := ColorSignup
	if removed {
		color = ColorUnregister
	}
	return &discordgo.MessageEmbed{
		Title:       "🏫 " + activity,
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Places", Value: FormatPlaces(maxParticipants, count), Inline: true},
		},
		Timestamp: at.Format(time.RFC3339),
	}
}
