// Package walker discovers inspection logs on disk and feeds them to the
// pipeline as RawLog values. Logs are collected into two zone directories
// under one root: <root>/internal and <root>/external.
package walker

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/junyi-w/patrol/internal/model"
	"github.com/junyi-w/patrol/internal/reader"
)

// Walker reads every *.log under the zone directories of its root.
type Walker struct {
	root string
	log  *slog.Logger
}

// New creates a Walker rooted at dir.
func New(dir string, log *slog.Logger) *Walker {
	if log == nil {
		log = slog.Default()
	}
	return &Walker{root: dir, log: log}
}

// Walk returns RawLogs for both zones in sorted path order. Missing zone
// directories are created so the operator can drop logs in for the next run.
// Unreadable files are returned with ReadErr set, never silently skipped.
func (w *Walker) Walk() ([]model.RawLog, error) {
	var raws []model.RawLog
	for _, zone := range []model.Zone{model.ZoneInternal, model.ZoneExternal} {
		dir := filepath.Join(w.root, string(zone))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("walker: ensure %s: %w", dir, err)
		}
		paths, err := filepath.Glob(filepath.Join(dir, "*.log"))
		if err != nil {
			return nil, fmt.Errorf("walker: glob %s: %w", dir, err)
		}
		sort.Strings(paths)
		for _, p := range paths {
			raws = append(raws, w.read(p, zone))
		}
	}
	return raws, nil
}

func (w *Walker) read(path string, zone model.Zone) model.RawLog {
	raw := model.RawLog{Path: path, Zone: zone}
	data, err := os.ReadFile(path)
	if err != nil {
		w.log.Warn("unreadable log file", "path", path, "err", err)
		raw.ReadErr = err
		return raw
	}
	text, err := reader.Decode(data)
	if err != nil {
		w.log.Warn("undecodable log file", "path", path, "err", err)
		raw.ReadErr = err
		return raw
	}
	raw.Text = text
	return raw
}
