// Package hardware extracts CPU and memory utilization from classified
// inspection logs. Extraction is best-effort per field: a missed or
// unparseable pattern leaves its field nil and the others still extract.
package hardware

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/model"
)

// Extract applies the profile's hardware pattern set to the whole text.
func Extract(text string, p *profile.Profile, log *slog.Logger) model.HardwareMetrics {
	if log == nil {
		log = slog.Default()
	}
	var m model.HardwareMetrics
	extractCPU(text, p, &m, log)
	extractMemory(text, p, &m, log)
	return m
}

func extractCPU(text string, p *profile.Profile, m *model.HardwareMetrics, log *slog.Logger) {
	for _, re := range p.CPUBlockREs {
		g := re.FindStringSubmatch(text)
		if g == nil {
			continue
		}
		m.CPUUsagePercent = parseField(g[1], "cpu usage", log)
		if len(g) > 2 {
			m.CPUMaxPercent = parseField(g[2], "cpu max", log)
		}
		return
	}

	if p.CPUIntervalRE == nil {
		return
	}
	// Comware prints one line per sampling interval; usage is the calmest
	// interval and max the busiest.
	var lo, hi float64
	found := false
	for _, g := range p.CPUIntervalRE.FindAllStringSubmatch(text, -1) {
		v, err := parseNumber(g[1])
		if err != nil {
			log.Debug("unparseable cpu interval value", "value", g[1])
			continue
		}
		if !found || v < lo {
			lo = v
		}
		if !found || v > hi {
			hi = v
		}
		found = true
	}
	if found {
		m.CPUUsagePercent = &lo
		m.CPUMaxPercent = &hi
	}
}

func extractMemory(text string, p *profile.Profile, m *model.HardwareMetrics, log *slog.Logger) {
	for _, re := range p.MemPercentREs {
		if g := re.FindStringSubmatch(text); g != nil {
			m.MemoryUsagePercent = parseField(g[1], "memory usage", log)
			break
		}
	}
	if p.MemUsedBytesRE != nil {
		if g := p.MemUsedBytesRE.FindStringSubmatch(text); g != nil {
			if v, err := parseNumber(g[1]); err != nil {
				log.Debug("unparseable memory used value", "value", g[1])
			} else {
				kb := int64(v) / 1024
				m.MemoryUsedKB = &kb
			}
		}
	}
	if p.MemTableRE != nil {
		if g := p.MemTableRE.FindStringSubmatch(text); g != nil {
			total, terr := parseNumber(g[1])
			used, uerr := parseNumber(g[2])
			if terr != nil || uerr != nil {
				log.Debug("unparseable memory table row", "total", g[1], "used", g[2])
				return
			}
			if total > 0 && used > 0 {
				pct := math.Round(used/total*100*100) / 100
				kb := int64(used)
				m.MemoryUsagePercent = &pct
				m.MemoryUsedKB = &kb
			}
		}
	}
}

func parseField(s, field string, log *slog.Logger) *float64 {
	v, err := parseNumber(s)
	if err != nil {
		log.Debug("unparseable "+field+" value", "value", s)
		return nil
	}
	return &v
}

// parseNumber tolerates thousands separators and a trailing percent sign.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSuffix(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), "%")
	return strconv.ParseFloat(s, 64)
}
