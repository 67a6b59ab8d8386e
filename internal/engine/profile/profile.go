// Package profile defines the per-vendor pattern sets the extraction engine
// runs with. A profile is selected once per log, so vendor branching stays out
// of the extractors and adding a dialect means adding one table here.
package profile

import (
	"regexp"

	"github.com/junyi-w/patrol/internal/model"
)

// Profile bundles one vendor dialect: the signatures that identify it plus
// the patterns the identity, hardware and optical extractors apply.
//
// Hardware patterns come in two shapes. CPUBlockREs capture usage (and
// optionally max) directly from a utilization block; CPUIntervalRE matches
// repeated "N% in last ..." lines whose occurrences are aggregated. A profile
// sets whichever shape its dialect prints and leaves the other nil. Memory
// works the same way: direct percentage patterns or a total/used table row.
type Profile struct {
	Vendor     model.Vendor
	Signatures []string // lowercase substrings unique to the dialect's output

	PromptREs []*regexp.Regexp // device identity, tried in order; group 1 is the name
	SerialRE  *regexp.Regexp

	CPUBlockREs   []*regexp.Regexp // group 1 usage %, optional group 2 max %
	CPUIntervalRE *regexp.Regexp   // group 1 usage % per sampling interval

	MemPercentREs  []*regexp.Regexp // group 1 used %
	MemUsedBytesRE *regexp.Regexp   // group 1 used bytes
	MemTableRE     *regexp.Regexp   // groups 1..3: total, used, free (kB)

	// Optical value-line patterns, tried in order; group 1 is the dBm value.
	TxLineREs []*regexp.Regexp
	RxLineREs []*regexp.Regexp
}

// Patterns shared between dialects. Device prompts wrap the configured name
// in [] or <>; inspection captures in this fleet use SD-JN-*/SD-JY-* names.
var (
	promptBracketRE = regexp.MustCompile(`(?i)[\[<](SD-(?:JN|JY)-[^\]>]+)[\]>]`)
	deviceNameRE    = regexp.MustCompile(`(?i)Device\s+Name\s*:\s*(\S+)`)
	systemNameRE    = regexp.MustCompile(`(?i)System\s+Name\s*:\s*(\S+)`)

	txPowerLineRE = regexp.MustCompile(`(?i)(?:Current\s+)?(?:TX\s*Power|TxPower)(?:\s*\(dBm\))?\s*[:=]?\s*(-?\d+(?:\.\d+)?)`)
	rxPowerLineRE = regexp.MustCompile(`(?i)(?:Current\s+)?(?:RX\s*Power|RxPower)(?:\s*\(dBm\))?\s*[:=]?\s*(-?\d+(?:\.\d+)?)`)
)

// Huawei VRP dialect.
var Huawei = &Profile{
	Vendor:     model.VendorHuawei,
	Signatures: []string{"huawei"},
	PromptREs:  []*regexp.Regexp{promptBracketRE, deviceNameRE, systemNameRE},
	SerialRE:   regexp.MustCompile(`BarCode=(\S+)`),
	CPUBlockREs: []*regexp.Regexp{
		// Control-plane block takes precedence over the plain summary.
		regexp.MustCompile(`(?i)Control Plane[\s\S]*?CPU Usage:\s*([\d.,]+)%\s*Max:\s*([\d.,]+)%`),
		regexp.MustCompile(`(?i)CPU Usage\s*:\s*([\d.,]+)%\s*Max\s*:\s*([\d.,]+)%`),
		regexp.MustCompile(`(?i)CPU Usage\s*:\s*([\d.,]+)%`),
	},
	MemPercentREs: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Memory Using Percentage Is:\s*([\d.,]+)%`),
		regexp.MustCompile(`(?i)Memory Usage\s*:\s*([\d.,]+)%`),
	},
	MemUsedBytesRE: regexp.MustCompile(`(?i)Total Memory Used Is:\s*([\d,]+)\s*bytes`),
	TxLineREs:      []*regexp.Regexp{txPowerLineRE},
	RxLineREs:      []*regexp.Regexp{rxPowerLineRE},
}

// H3C Comware dialect.
var H3C = &Profile{
	Vendor:        model.VendorH3C,
	Signatures:    []string{"h3c", "new h3c technologies"},
	PromptREs:     []*regexp.Regexp{promptBracketRE, deviceNameRE, systemNameRE},
	SerialRE:      regexp.MustCompile(`(?i)DEVICE_SERIAL_NUMBER\s*:\s*(\S+)`),
	CPUIntervalRE: regexp.MustCompile(`(\d+)% in last\s+(\d+)\s+(seconds?|minutes?)`),
	MemTableRE:    regexp.MustCompile(`Mem:\s*([\d,]+)\s*([\d,]+)\s*([\d,]+)`),
	TxLineREs: []*regexp.Regexp{
		txPowerLineRE,
		regexp.MustCompile(`(?i)TX\s*power\s*\(dBm\)\s*(-?\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\bTX\s*[:=]\s*(-?\d+(?:\.\d+)?)`),
	},
	RxLineREs: []*regexp.Regexp{
		rxPowerLineRE,
		regexp.MustCompile(`(?i)RX\s*power\s*\(dBm\)\s*(-?\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\bRX\s*[:=]\s*(-?\d+(?:\.\d+)?)`),
	},
}

// All returns profiles in classification scan order.
func All() []*Profile {
	return []*Profile{Huawei, H3C}
}

// ByVendor finds the profile for a classified vendor.
func ByVendor(profiles []*Profile, v model.Vendor) (*Profile, bool) {
	for _, p := range profiles {
		if p.Vendor == v {
			return p, true
		}
	}
	return nil, false
}
