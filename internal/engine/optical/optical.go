// Package optical parses transceiver diagnostic sections of inspection logs
// into per-port TX/RX power readings.
//
// A log is split into segments at each transceiver display command; within a
// segment a line-oriented state machine tracks the current port, its status
// markers and the diagnostic value region. Ports are emitted in the order
// they appear, one reading per port, with nil power values wherever the
// source printed a placeholder or nothing at all.
package optical

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/model"
)

// Transceiver power outside this window is sensor garbage, not a reading.
const (
	minPowerDBm = -50
	maxPowerDBm = 10
)

var (
	// Section boundaries: the display commands that precede diagnostic
	// output, plus the screen-length toggle operators run alongside them.
	commandRE = regexp.MustCompile(`(?i)(?:display\s+transceiver\s+(?:diagnosis\s+interface(?:\s+detail)?|verbose)|undo\s+screen-length\s+disable)`)

	// Physical interface token: word prefix, then slot/port digits joined by
	// / or - (GigabitEthernet0/1, XGE1/0/49, Ten-GigabitEthernet1/0/1:1).
	portRE = regexp.MustCompile(`(?:^|\s)(?:[Pp]ort\s+|[Ii]nterface\s+)?([A-Za-z\-]+(?:Ethernet)?\d+(?:[/\-]\d+)+[A-Za-z0-9/\-]*)`)

	nonOpticalRE   = regexp.MustCompile(`(?i)valid\s+only\s+(?:on|for)\s+optical\s+interface\.?`)
	absentRE       = regexp.MustCompile(`(?i)transceiver\s+(?:is\s+)?absent\.?`)
	notSupportedRE = regexp.MustCompile(`(?i)transceiver\s+(?:does\s+not\s+support|not\s+supported|unsupported)`)
	copperRE       = regexp.MustCompile(`(?i)Transfer\s+Distance\(m\)\s*:\s*(?:\d+\s*)?\(\s*copper\s*\)`)

	diagStartRE  = regexp.MustCompile(`(?i)^Current diagnostic parameters:`)
	alarmStartRE = regexp.MustCompile(`(?i)^Alarm thresholds:`)
	statusRE     = regexp.MustCompile(`(?i)status\s+(normal|abnormal)`)

	// Last-resort value form for dialect variants the profile patterns miss.
	fallbackPowerRE = regexp.MustCompile(`(?i)(TX|RX)\s*Power\s*[:=]?\s*(-?\d+(?:\.\d+)?)`)

	columnSplitRE = regexp.MustCompile(`\s{2,}`)
)

// Extract returns one reading per port encountered in the log's transceiver
// sections, in source order. Logs without a transceiver command yield nil.
func Extract(text string, p *profile.Profile, log *slog.Logger) []model.OpticalReading {
	if log == nil {
		log = slog.Default()
	}
	lines := strings.Split(text, "\n")
	segments := segment(lines)
	var readings []model.OpticalReading
	for _, seg := range segments {
		readings = append(readings, parseSegment(seg, p, log)...)
	}
	return readings
}

// segment slices lines into chunks starting at each transceiver command.
// Text before the first command carries no diagnostics and is discarded.
func segment(lines []string) [][]string {
	var starts []int
	for i, line := range lines {
		if commandRE.MatchString(line) {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return nil
	}
	starts = append(starts, len(lines))
	segs := make([][]string, 0, len(starts)-1)
	for i := 0; i+1 < len(starts); i++ {
		segs = append(segs, lines[starts[i]:starts[i+1]])
	}
	return segs
}

func parseSegment(lines []string, p *profile.Profile, log *slog.Logger) []model.OpticalReading {
	var out []model.OpticalReading
	var cur *model.OpticalReading
	optical := false // cleared by status markers so their noise lines are skipped
	inAlarm := false // alarm-threshold rows repeat the power labels with limit values
	tableArmed := false
	txCol, rxCol := -1, -1

	flush := func() {
		if cur != nil {
			log.Debug("port reading", "port", cur.Port, "tx", cur.TxPowerDBm, "rx", cur.RxPowerDBm, "status", cur.Status)
			out = append(out, *cur)
		}
		cur = nil
		optical = false
		inAlarm = false
		tableArmed = false
		txCol, rxCol = -1, -1
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := portRE.FindStringSubmatch(line); m != nil {
			// A command echo naming the interface opens the same port the
			// following block header repeats; keep the one reading.
			if cur == nil || cur.Port != m[1] {
				flush()
				cur = &model.OpticalReading{Port: m[1]}
			}
			optical = true
			tableArmed = false
			// Table-style rows carry values on the port line itself.
			scanPowerLine(line, cur, p, log)
			continue
		}
		if cur == nil {
			continue
		}

		if nonOpticalRE.MatchString(line) {
			cur.Status = model.StatusNonOptical
			optical = false
			continue
		}
		if absentRE.MatchString(line) {
			cur.Status = model.StatusAbsent
			optical = false
			continue
		}
		if notSupportedRE.MatchString(line) {
			cur.Status = model.StatusNotSupported
			optical = false
			continue
		}
		if copperRE.MatchString(line) {
			cur.Status = model.StatusCopper
			optical = false
			continue
		}
		if !optical {
			continue
		}

		if diagStartRE.MatchString(line) {
			inAlarm = false
			continue
		}
		if alarmStartRE.MatchString(line) {
			inAlarm = true
			tableArmed = false
			continue
		}
		// Status can share a line with power values, so no continue here.
		if m := statusRE.FindStringSubmatch(line); m != nil {
			cur.Status = strings.ToLower(m[1])
		}
		if inAlarm {
			continue
		}

		if isTableHeader(line) {
			txCol, rxCol = headerColumns(line)
			tableArmed = txCol >= 0 || rxCol >= 0
			continue
		}
		if tableArmed {
			cols := columnSplitRE.Split(line, -1)
			if rxCol >= 0 && rxCol < len(cols) {
				setPower(&cur.RxPowerDBm, cols[rxCol], cur.Port, "rx", log)
			}
			if txCol >= 0 && txCol < len(cols) {
				setPower(&cur.TxPowerDBm, cols[txCol], cur.Port, "tx", log)
			}
			tableArmed = false
			continue
		}

		scanPowerLine(line, cur, p, log)
	}
	flush()
	return out
}

// isTableHeader detects the verbose multi-column layout header.
func isTableHeader(line string) bool {
	return strings.Contains(line, "Temp.") &&
		strings.Contains(line, "Voltage") &&
		strings.Contains(line, "RX power") &&
		strings.Contains(line, "TX power")
}

func headerColumns(line string) (txCol, rxCol int) {
	txCol, rxCol = -1, -1
	for i, h := range columnSplitRE.Split(line, -1) {
		if strings.Contains(h, "TX power") {
			txCol = i
		}
		if strings.Contains(h, "RX power") {
			rxCol = i
		}
	}
	return txCol, rxCol
}

func scanPowerLine(line string, r *model.OpticalReading, p *profile.Profile, log *slog.Logger) {
	for _, re := range p.TxLineREs {
		if m := re.FindStringSubmatch(line); m != nil {
			setPower(&r.TxPowerDBm, m[1], r.Port, "tx", log)
			break
		}
	}
	for _, re := range p.RxLineREs {
		if m := re.FindStringSubmatch(line); m != nil {
			setPower(&r.RxPowerDBm, m[1], r.Port, "rx", log)
			break
		}
	}
	if r.TxPowerDBm == nil || r.RxPowerDBm == nil {
		if m := fallbackPowerRE.FindStringSubmatch(line); m != nil {
			side := strings.ToLower(m[1])
			if side == "tx" && r.TxPowerDBm == nil {
				setPower(&r.TxPowerDBm, m[2], r.Port, "tx", log)
			}
			if side == "rx" && r.RxPowerDBm == nil {
				setPower(&r.RxPowerDBm, m[2], r.Port, "rx", log)
			}
		}
	}
}

// setPower parses a candidate dBm value. Placeholders and readings outside
// the plausible window leave the field unchanged.
func setPower(dst **float64, s, port, side string, log *slog.Logger) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		log.Debug("unparseable power value", "port", port, "side", side, "value", s)
		return
	}
	if v < minPowerDBm || v > maxPowerDBm {
		log.Debug("power value out of range", "port", port, "side", side, "value", v)
		return
	}
	*dst = &v
}
