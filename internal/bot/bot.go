package bot

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"quotepal/internal/config"
	"quotepal/internal/events"
	"quotepal/internal/quotes"
	"quotepal/internal/scheduler"
)

// Bot represents the Discord bot
type Bot struct {
	session   *discordgo.Session
	config    *config.Config
	catalog   quotes.Catalog
	scheduler *scheduler.Scheduler
}

// New creates a new Bot instance
func New(cfg *config.Config) (*Bot, error) {
	// Create Discord session
	session, err := discordgo.New("Bot " + cfg.GetBotToken())
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Load the quote catalog once at startup. Load failures degrade to
	// fallback replies rather than preventing startup.
	catalog := quotes.Load(cfg.GetQuotesPath(), cfg.Logger)

	bot := &Bot{
		session: session,
		config:  cfg,
		catalog: catalog,
	}

	// Set intents - we need guild, message, message content, and direct message intents
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent | discordgo.IntentDirectMessages

	// Add event handlers
	session.AddHandler(bot.onReady)

	// Wrapped with anonymous function to pass config and catalog
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		events.OnMessageCreate(s, m, cfg, catalog)
	})

	return bot, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	// Open connection
	err := b.session.Open()
	if err != nil {
		return fmt.Errorf("error opening Discord connection: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.config.Logger.Warn("error closing Discord session:", err)
		}
	}()

	if err := b.session.UpdateGameStatus(0, "Judging your taste in quotes"); err != nil {
		b.config.Logger.Warn("error updating bot status:", err)
	}

	// Create scheduler and register recurring tasks
	b.scheduler = scheduler.NewScheduler(b.config)

	if err := b.scheduler.RegisterFunc("@hourly", "log-rotation", func() error {
		return b.config.RotateAndPruneLogs()
	}); err != nil {
		b.config.Logger.Errorf("Failed to register log rotation: %v", err)
	}

	if err := b.scheduler.RegisterFunc("@hourly", "status-rotation", func() error {
		return b.session.UpdateGameStatus(0, b.randomStatus())
	}); err != nil {
		b.config.Logger.Errorf("Failed to register status rotation: %v", err)
	}

	b.scheduler.Start()
	defer b.scheduler.Stop()

	b.config.Logger.Info("QuotePal bot is now running. Press CTRL+C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

// onReady handles the ready event
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.config.Logger.Infof("Logged in as: %s#%s, who is definitely judging you.", r.User.Username, r.User.Discriminator)
}

func (b *Bot) randomStatus() string {
	randomStuff := []string{
		"Dispensing snark on demand",
		"Have you tried turning it off and on again?",
		"Use !printquote for wisdom",
		"Rereading quotes.json...",
		"0118 999 881 999 119 725 3",
		"Judging you quietly...",
	}

	return randomStuff[rand.IntN(len(randomStuff))]
}
