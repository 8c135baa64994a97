package events

import (
	"strings"

	"quotepal/internal/config"
	"quotepal/internal/quotes"

	"github.com/bwmarrin/discordgo"
)

// CommandPrefix is the literal text a message must start with to get a quote.
const CommandPrefix = "!printquote"

// OnMessageCreate handles message events. The only recognized command is
// the quote prefix; everything else is ignored silently.
func OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, cfg *config.Config, catalog quotes.Catalog) {
	var selfID string
	if s.State != nil && s.State.User != nil {
		selfID = s.State.User.ID
	}

	if !ShouldReply(m.Author.ID, selfID, m.Content) {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, catalog.Random()); err != nil {
		cfg.Logger.Errorf("Error sending quote to channel %s: %v", m.ChannelID, err)
	}
}

// ShouldReply reports whether a message should trigger a quote reply:
// not authored by the bot itself, and starting with the command prefix
// (case-insensitive).
func ShouldReply(authorID, selfID, content string) bool {
	if authorID == selfID {
		return false
	}
	return strings.HasPrefix(strings.ToLower(content), CommandPrefix)
}
