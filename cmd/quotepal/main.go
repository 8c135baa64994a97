package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc"

	"quotepal/internal/bot"
	"quotepal/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprint(os.Stderr, heredoc.Doc(`
			QuotePal needs configuration before it can judge anyone.

			Set QUOTEPAL_BOT_TOKEN in the environment, or put bot_token in a
			config.yaml next to the binary. Optional keys:

			  quotes_path  path to the quotes JSON file (default ./quotes.json)
			  log_dir      directory for log files (default ./logs)
		`))
		log.Fatal("Failed to load configuration:", err)
	}

	// Create and start bot
	quoteBot, err := bot.New(cfg)
	if err != nil {
		log.Fatal("Failed to create bot:", err)
	}

	if err := quoteBot.Start(); err != nil {
		log.Fatal("Failed to start bot:", err)
	}
}
