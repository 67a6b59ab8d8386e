package classifier

import (
	"log/slog"
	"strings"

	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/model"
)

// Classifier determines which vendor dialect produced a log by scanning for
// signature substrings from the registered profiles.
type Classifier struct {
	profiles []*profile.Profile
	log      *slog.Logger
}

// New creates a Classifier over the given profiles. Scan order is line order
// first, then profile order within a line.
func New(profiles []*profile.Profile, log *slog.Logger) *Classifier {
	if log == nil {
		log = slog.Default()
	}
	return &Classifier{profiles: profiles, log: log}
}

// Classify scans the text for vendor signatures. The first signature
// encountered wins; signatures of other vendors appearing later (a
// concatenated or malformed capture) are reported at debug level but do not
// change the verdict. Returns VendorUnknown when nothing matches.
func (c *Classifier) Classify(text string) model.Vendor {
	first := model.VendorUnknown
	seen := make(map[model.Vendor]bool)

	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		for _, p := range c.profiles {
			for _, sig := range p.Signatures {
				if strings.Contains(line, sig) {
					if first == model.VendorUnknown {
						first = p.Vendor
					}
					seen[p.Vendor] = true
					break
				}
			}
		}
	}

	if len(seen) > 1 {
		c.log.Debug("multiple vendor signatures in one log", "picked", first)
	}
	return first
}
