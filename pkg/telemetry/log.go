package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/QAddict/ruix/pkg/view"
)

// LogObserver logs every region update pass.
type LogObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogObserver logs passes at debug level. A nil logger uses
// slog.Default().
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy logging at level.
func (o *LogObserver) WithLevel(level slog.Level) *LogObserver {
	c := *o
	c.level = level
	return &c
}

// RenderStarted implements view.Observer.
func (o *LogObserver) RenderStarted(info view.RegionInfo) func(view.RenderStats) {
	if !o.logger.Enabled(context.Background(), o.level) {
		return nil
	}
	start := time.Now()
	return func(s view.RenderStats) {
		o.logger.Log(context.Background(), o.level, "render pass",
			"region", regionName(info),
			"strategy", info.Strategy.String(),
			"items", s.Items,
			"created", s.Created,
			"reused", s.Reused,
			"moved", s.Moved,
			"removed", s.Removed,
			"evicted", s.Evicted,
			"duration", time.Since(start),
		)
	}
}

type multi []view.Observer

// Multi combines observers. Nil observers are dropped.
func Multi(observers ...view.Observer) view.Observer {
	var m multi
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

// RenderStarted implements view.Observer.
func (m multi) RenderStarted(info view.RegionInfo) func(view.RenderStats) {
	var done []func(view.RenderStats)
	for _, o := range m {
		if fn := o.RenderStarted(info); fn != nil {
			done = append(done, fn)
		}
	}
	if len(done) == 0 {
		return nil
	}
	return func(s view.RenderStats) {
		for _, fn := range done {
			fn(s)
		}
	}
}
