package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type datasetKey struct{}

// WithDataset tags ctx with the dataset being processed. Loggers built with
// DatasetExtractor add it to every record logged under ctx.
func WithDataset(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, datasetKey{}, name)
}

// DatasetFromContext returns the dataset set by WithDataset.
func DatasetFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(datasetKey{}).(string)
	return name, ok && name != ""
}

// DatasetExtractor adds the WithDataset value as a "dataset" attribute.
func DatasetExtractor(ctx context.Context) (slog.Attr, bool) {
	name, ok := DatasetFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return Dataset(name), true
}

// LogHandlerDecorator runs the context extractors on every record before
// passing it on.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}
