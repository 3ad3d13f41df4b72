package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/view"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

// keyedRegion renders three items, then reorders and shrinks them.
func keyedRegion(obs view.Observer) {
	doc := memdom.NewDocument()
	items := model.NewState([]any{1, 2, 3})
	view.Each(doc, items, nil,
		view.WithKey(func(v any) any { return v }),
		view.WithName("books"),
		view.WithObserver(obs))
	items.Set([]any{3, 1, 2})
	items.Set([]any{3})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	keyedRegion(m)

	if got := counterValue(t, m.passes.WithLabelValues("books", "keyed")); got != 3 {
		t.Errorf("render_passes_total = %v, want 3", got)
	}
	tests := []struct {
		op   string
		want float64
	}{
		{"created", 3},
		{"reused", 4},
		{"moved", 1},
		{"removed", 2},
		{"evicted", 2},
	}
	for _, tt := range tests {
		if got := counterValue(t, m.nodes.WithLabelValues("books", tt.op)); got != tt.want {
			t.Errorf("nodes_total{op=%q} = %v, want %v", tt.op, got, tt.want)
		}
	}
	if got := gaugeValue(t, m.cached.WithLabelValues("books")); got != 1 {
		t.Errorf("cache_entries = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, name := range []string{
		"ruix_view_render_passes_total",
		"ruix_view_render_duration_seconds",
		"ruix_view_nodes_total",
		"ruix_view_cache_entries",
	} {
		if !names[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

type recordedSpan struct {
	name  string
	attrs []attribute.KeyValue
}

type recordingTracer struct {
	noop.Tracer
	spans *[]recordedSpan
}

func (r recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	*r.spans = append(*r.spans, recordedSpan{name: name, attrs: cfg.Attributes()})
	return r.Tracer.Start(ctx, name, opts...)
}

type recordingProvider struct {
	noop.TracerProvider
	spans []recordedSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{spans: &p.spans}
}

func TestTracing(t *testing.T) {
	p := &recordingProvider{}
	keyedRegion(NewTracing(WithTracerProvider(p)))

	if len(p.spans) != 3 {
		t.Fatalf("spans = %d, want 3", len(p.spans))
	}
	span := p.spans[0]
	if span.name != "ruix.render" {
		t.Errorf("span name = %q, want %q", span.name, "ruix.render")
	}
	want := []attribute.KeyValue{
		attribute.String("ruix.region", "books"),
		attribute.String("ruix.strategy", "keyed"),
	}
	if len(span.attrs) != len(want) || span.attrs[0] != want[0] || span.attrs[1] != want[1] {
		t.Errorf("span attributes = %v, want %v", span.attrs, want)
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	keyedRegion(NewLogObserver(logger))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("logged %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"msg=\"render pass\"", "region=books", "strategy=keyed", "removed=2", "evicted=2"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("last line %q does not contain %q", lines[2], want)
		}
	}
}

func TestLogObserverDisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	o := NewLogObserver(logger)
	if fn := o.RenderStarted(view.RegionInfo{Name: "x"}); fn != nil {
		t.Error("RenderStarted returned a callback for a disabled level")
	}
	if fn := o.WithLevel(slog.LevelInfo).RenderStarted(view.RegionInfo{Name: "x"}); fn == nil {
		t.Error("RenderStarted returned nil for an enabled level")
	}
}

func TestMulti(t *testing.T) {
	var calls []string
	obs := func(name string) view.Observer {
		return view.ObserverFunc(func(view.RegionInfo) func(view.RenderStats) {
			calls = append(calls, name+" start")
			return func(view.RenderStats) { calls = append(calls, name+" done") }
		})
	}
	m := Multi(obs("a"), nil, obs("b"))
	m.RenderStarted(view.RegionInfo{})(view.RenderStats{})

	want := "a start,b start,a done,b done"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
}
