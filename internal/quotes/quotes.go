package quotes

import (
	"encoding/json"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
)

// Category names expected in the quotes file.
const (
	CategorySnark   = "snark"
	CategoryITCrowd = "it_crowd"
)

// SnarkWeight is the probability that a draw comes from the snark category.
const SnarkWeight = 0.75

// Fallback replies used when a category is empty or missing.
const (
	SnarkFallback   = "Your JSON is empty. Shame."
	ITCrowdFallback = "Where are the quotes, Roy?"
)

// Catalog maps a category name to its ordered list of quotes.
// It is loaded once at startup and never mutated afterwards.
type Catalog map[string][]string

// Load reads and parses the quotes file. On a read or parse failure it
// logs a diagnostic and returns a degraded catalog with both categories
// present and empty, so the bot can keep running on fallback replies.
func Load(path string, logger *log.Logger) Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("%s is missing. Congrats. (%v)", path, err)
		return emptyCatalog()
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		logger.Warnf("%s is invalid JSON. Impressive. (%v)", path, err)
		return emptyCatalog()
	}

	return c
}

func emptyCatalog() Catalog {
	return Catalog{
		CategorySnark:   {},
		CategoryITCrowd: {},
	}
}

// Pick selects a quote using roll to choose the category: rolls below
// SnarkWeight draw uniformly from snark, everything else from it_crowd.
// An empty or missing category yields that branch's fallback reply.
func (c Catalog) Pick(roll float64) string {
	if roll < SnarkWeight {
		return pickFrom(c[CategorySnark], SnarkFallback)
	}
	return pickFrom(c[CategoryITCrowd], ITCrowdFallback)
}

// Random draws a quote with the default category weighting.
func (c Catalog) Random() string {
	return c.Pick(rand.Float64())
}

func pickFrom(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[rand.IntN(len(list))]
}
