package engine

import "github.com/junyi-w/patrol/internal/engine/profile"

// deviceName extracts the device's configured name from its CLI prompt or
// identity display output. The source file name stands in when nothing
// matches so the report row stays traceable.
func deviceName(text string, p *profile.Profile, fallback string) string {
	for _, re := range p.PromptREs {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return fallback
}

func serialNumber(text string, p *profile.Profile) string {
	if m := p.SerialRE.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
