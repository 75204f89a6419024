package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"mergington/internal/ports/output"
	embeds "mergington/pkg/discord"
)

const notifyTimeout = 10 * time.Second

// ChannelSender is the part of *discordgo.Session the notifier uses.
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ output.RosterNotifier = (*Notifier)(nil)

// Notifier posts roster changes to a Discord channel. Sends happen in the
// background; failures are logged.
type Notifier struct {
	sender     ChannelSender
	channelID  string
	translator output.T
	locale     string
	async      bool
}

// NewNotifier opens a REST-only Discord session for token. The gateway is
// never opened: the notifier only posts messages.
func NewNotifier(token, channelID string, translator output.T, locale string) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return newNotifier(s, channelID, translator, locale, true), nil
}

func newNotifier(sender ChannelSender, channelID string, translator output.T, locale string, async bool) *Notifier {
	return &Notifier{
		sender:     sender,
		channelID:  channelID,
		translator: translator,
		locale:     locale,
		async:      async,
	}
}

func (n *Notifier) Notify(ctx context.Context, change output.RosterChange) {
	if !n.async {
		n.send(ctx, change)
		return
	}
	go n.send(ctx, change)
}

func (n *Notifier) send(ctx context.Context, change output.RosterChange) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, n.embed(change), discordgo.WithContext(ctx)); err != nil {
		log.Printf("⚠️ discord: roster notification failed (activity=%s): %v", change.Activity, err)
	}
}

func (n *Notifier) embed(change output.RosterChange) *discordgo.MessageEmbed {
	key := "discord_signup"
	if change.Removed {
		key = "discord_unregister"
	}
	description := n.translator.T(n.locale, key, map[string]any{
		"Teacher":  change.Teacher,
		"Email":    change.Email,
		"Activity": change.Activity,
	})
	return embeds.BuildRosterEmbed(change.Activity, description, change.Removed, change.Participants, change.MaxParticipants, time.Now())
}

// NoopNotifier drops every change. Used when Discord is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, output.RosterChange) {}
