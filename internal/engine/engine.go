// Package engine turns raw inspection logs into device records: classify the
// vendor dialect, then run the profile's identity, hardware and optical
// extractors over the text.
package engine

import (
	"log/slog"
	"path/filepath"

	"github.com/junyi-w/patrol/internal/engine/classifier"
	"github.com/junyi-w/patrol/internal/engine/hardware"
	"github.com/junyi-w/patrol/internal/engine/optical"
	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/model"
)

// Engine holds the vendor profiles and processes one log at a time. It
// carries no state across logs; Process is a pure function of its input.
type Engine struct {
	classifier *classifier.Classifier
	profiles   []*profile.Profile
	log        *slog.Logger
}

// New creates an Engine over the given profiles.
func New(profiles []*profile.Profile, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		classifier: classifier.New(profiles, log),
		profiles:   profiles,
		log:        log,
	}
}

// Process turns one raw log into its device record. Every input produces
// exactly one record: unknown vendors and unreadable files yield rows with
// empty fields rather than dropping the file.
func (e *Engine) Process(raw model.RawLog) model.DeviceRecord {
	rec := model.DeviceRecord{
		SourceFile: filepath.Base(raw.Path),
		Zone:       raw.Zone,
		Vendor:     model.VendorUnknown,
	}
	if raw.ReadErr != nil {
		rec.ReadErr = raw.ReadErr.Error()
		return rec
	}

	rec.Vendor = e.classifier.Classify(raw.Text)
	p, ok := profile.ByVendor(e.profiles, rec.Vendor)
	if !ok {
		e.log.Debug("no vendor signature, skipping extraction", "file", rec.SourceFile)
		return rec
	}

	rec.Device = deviceName(raw.Text, p, rec.SourceFile)
	rec.Serial = serialNumber(raw.Text, p)
	rec.Hardware = hardware.Extract(raw.Text, p, e.log)
	rec.Optical = optical.Extract(raw.Text, p, e.log)
	return rec
}

// ProcessBatch processes raw logs in order, one record per log.
func (e *Engine) ProcessBatch(raws []model.RawLog) []model.DeviceRecord {
	recs := make([]model.DeviceRecord, 0, len(raws))
	for _, raw := range raws {
		recs = append(recs, e.Process(raw))
	}
	return recs
}
