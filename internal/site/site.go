// Package site renders the landing page and the features section with
// logging, metrics and tracing around each render.
package site

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/moklet-dev/twibbon/app"
	"github.com/moklet-dev/twibbon/app/components/features"
	"github.com/moklet-dev/twibbon/internal/config"
	"github.com/moklet-dev/twibbon/internal/errors"
	"github.com/moklet-dev/twibbon/internal/telemetry"
	"github.com/moklet-dev/twibbon/pkg/render"
)

// Render targets, used as metric labels and span names.
const (
	TargetPage    = "page"
	TargetSection = "section"
)

// Builder renders the site. It is safe for concurrent use.
type Builder struct {
	cfg         *config.Config
	renderer    *render.Renderer
	metrics     *Metrics
	tracer      trace.Tracer
	logger      *slog.Logger
	sectionOpts []features.Option
}

// Option configures a Builder.
type Option func(*Builder)

// WithMetrics records renders into m.
func WithMetrics(m *Metrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithTracer sets the tracer. Defaults to the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(b *Builder) { b.tracer = t }
}

// WithSectionOptions passes options through to the features section.
func WithSectionOptions(opts ...features.Option) Option {
	return func(b *Builder) { b.sectionOpts = append(b.sectionOpts, opts...) }
}

// New creates a Builder for cfg.
func New(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.tracer == nil {
		b.tracer = telemetry.Tracer()
	}
	b.renderer = render.NewRenderer(render.RendererConfig{Pretty: cfg.Render.Pretty})
	return b
}

// Section writes the features section fragment to w.
func (b *Builder) Section(ctx context.Context, w io.Writer) error {
	return b.run(ctx, TargetSection, w, func(buf *bytes.Buffer) error {
		return b.renderer.RenderToWriter(buf, features.Section(b.sectionOpts...))
	})
}

// Page writes the full document to w.
func (b *Builder) Page(ctx context.Context, w io.Writer, rt app.Runtime) error {
	return b.run(ctx, TargetPage, w, func(buf *bytes.Buffer) error {
		return b.renderer.RenderPage(buf, app.Page(b.cfg, rt, b.sectionOpts...))
	})
}

// PageBytes renders the full document into memory.
func (b *Builder) PageBytes(ctx context.Context, rt app.Runtime) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Page(ctx, &buf, rt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// run renders into a buffer first so a failed render never leaves a
// truncated document on w.
func (b *Builder) run(ctx context.Context, target string, w io.Writer, fn func(*bytes.Buffer) error) error {
	_, span := b.tracer.Start(ctx, "render."+target, trace.WithAttributes(
		attribute.String("render.target", target),
		attribute.Bool("render.pretty", b.cfg.Render.Pretty),
	))
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := fn(&buf)
	elapsed := time.Since(start)
	b.metrics.observe(target, elapsed.Seconds(), buf.Len(), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.Error("render failed", "target", target, "error", err)
		return errors.FromError(err, errors.CodeRender)
	}
	span.SetAttributes(attribute.Int("render.bytes", buf.Len()))
	b.logger.Debug("rendered", "target", target, "bytes", buf.Len(), "duration", elapsed)

	if _, err := buf.WriteTo(w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.Error("write failed", "target", target, "error", err)
		return errors.FromError(err, errors.CodeWriteOutput)
	}
	return nil
}
