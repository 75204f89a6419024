package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"

	"mergington/internal/infrastructure/i18n"
	"mergington/internal/ports/output"
	embeds "mergington/pkg/discord"
)

type recordingSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (r *recordingSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.channelID = channelID
	r.embeds = append(r.embeds, embed)
	return &discordgo.Message{}, r.err
}

func TestNotifier_Signup(t *testing.T) {
	sender := &recordingSender{}
	n := newNotifier(sender, "123456", i18n.NewTranslator("en"), "en", false)

	n.Notify(context.Background(), output.RosterChange{
		Activity:        "Chess Club",
		Email:           "x@mergington.edu",
		Teacher:         "mchen",
		Participants:    3,
		MaxParticipants: 12,
	})

	if sender.channelID != "123456" || len(sender.embeds) != 1 {
		t.Fatalf("expected one embed on channel 123456, got %d on %q", len(sender.embeds), sender.channelID)
	}
	e := sender.embeds[0]
	if e.Title != "🏫 Chess Club" || e.Color != embeds.ColorSignup {
		t.Errorf("unexpected embed: %+v", e)
	}
	if len(e.Fields) != 1 || e.Fields[0].Value != "3/12" {
		t.Errorf("unexpected fields: %+v", e.Fields)
	}
	if e.Description != "mchen signed up x@mergington.edu for Chess Club" {
		t.Errorf("unexpected description: %q", e.Description)
	}
}

func TestNotifier_Unregister(t *testing.T) {
	sender := &recordingSender{}
	n := newNotifier(sender, "123456", i18n.NewTranslator("en"), "en", false)

	n.Notify(context.Background(), output.RosterChange{Activity: "Art Club", Email: "y@mergington.edu", Teacher: "mrodriguez", Removed: true})

	if got := sender.embeds[0]; got.Color != embeds.ColorUnregister || got.Description != "mrodriguez unregistered y@mergington.edu from Art Club" {
		t.Errorf("unexpected embed: %+v", got)
	}
}

func TestNotifier_SendErrorIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("rate limited")}
	n := newNotifier(sender, "1", i18n.NewTranslator("en"), "en", false)

	n.Notify(context.Background(), output.RosterChange{Activity: "Math Club"})

	if len(sender.embeds) != 1 {
		t.Error("expected the send to be attempted")
	}
}
