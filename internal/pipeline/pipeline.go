// Package pipeline wires the walker, engine and report sink together.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/junyi-w/patrol/internal/engine"
	"github.com/junyi-w/patrol/internal/report"
	"github.com/junyi-w/patrol/internal/walker"
)

// Pipeline runs one full extraction pass over the log directory.
type Pipeline struct {
	walker *walker.Walker
	engine *engine.Engine
	sink   report.Sink
	log    *slog.Logger
}

// New creates a Pipeline from the given components.
func New(w *walker.Walker, eng *engine.Engine, sink report.Sink, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{walker: w, engine: eng, sink: sink, log: log}
}

// Run processes every discovered log in stable order and hands one record per
// log to the sink. Returns the number of records produced; zero logs is not
// an error, the caller decides what to tell the operator.
func (p *Pipeline) Run() (int, error) {
	raws, err := p.walker.Walk()
	if err != nil {
		return 0, fmt.Errorf("pipeline walk: %w", err)
	}

	for _, raw := range raws {
		rec := p.engine.Process(raw)
		p.log.Debug("processed log", "file", rec.SourceFile, "vendor", rec.Vendor, "ports", len(rec.Optical))
		if err := p.sink.Write(rec); err != nil {
			return 0, fmt.Errorf("pipeline sink: %w", err)
		}
	}
	return len(raws), nil
}
