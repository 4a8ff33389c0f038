package ports

import "context"

// SpanConfig carries options applied when starting a span.
type SpanConfig struct {
	// Attributes set at span start.
	Attributes map[string]any
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// RecordError attaches an error to the span.
	RecordError(err error)
	// SetAttribute sets a key/value attribute on the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around the phases of a synchronization.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
