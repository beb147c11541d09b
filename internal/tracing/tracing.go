package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/openresp/responses-go")

// RequestInfo carries the request attributes recorded on a span.
type RequestInfo struct {
	ModelID         string
	MaxOutputTokens *uint32
	Temperature     *float64
	TopP            *float64
}

// Span wraps an otel span for one call to the responses endpoint.
type Span struct {
	info      RequestInfo
	startTime time.Time

	inputTokens  *int
	outputTokens *int
	// Time to first event, in seconds
	timeToFirstEvent *float64

	span trace.Span
}

// Start opens a span for the given operation ("create" or "stream").
func Start(ctx context.Context, method string, info RequestInfo) (context.Context, *Span) {
	spanCtx, otelSpan := tracer.Start(ctx, "responses."+method)
	return spanCtx, &Span{
		info:      info,
		startTime: time.Now(),
		span:      otelSpan,
	}
}

// OnFirstEvent records the time to the first streamed event. Later calls
// are ignored.
func (s *Span) OnFirstEvent() {
	if s.timeToFirstEvent == nil {
		seconds := time.Since(s.startTime).Seconds()
		s.timeToFirstEvent = &seconds
	}
}

// OnUsage records token usage once it is known.
func (s *Span) OnUsage(inputTokens, outputTokens int) {
	s.inputTokens = &inputTokens
	s.outputTokens = &outputTokens
}

func (s *Span) OnError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *Span) OnEnd() {
	s.span.SetAttributes(
		attribute.String("gen_ai.operation.name", "generate_content"),
		attribute.String("gen_ai.provider.name", "openai"),
		attribute.String("gen_ai.request.model", s.info.ModelID),
	)

	if s.inputTokens != nil {
		s.span.SetAttributes(attribute.Int("gen_ai.usage.input_tokens", *s.inputTokens))
	}
	if s.outputTokens != nil {
		s.span.SetAttributes(attribute.Int("gen_ai.usage.output_tokens", *s.outputTokens))
	}
	if s.timeToFirstEvent != nil {
		s.span.SetAttributes(attribute.Float64("gen_ai.server.time_to_first_token", *s.timeToFirstEvent))
	}
	if s.info.MaxOutputTokens != nil {
		s.span.SetAttributes(attribute.Int64("gen_ai.request.max_tokens", int64(*s.info.MaxOutputTokens)))
	}
	if s.info.Temperature != nil {
		s.span.SetAttributes(attribute.Float64("gen_ai.request.temperature", *s.info.Temperature))
	}
	if s.info.TopP != nil {
		s.span.SetAttributes(attribute.Float64("gen_ai.request.top_p", *s.info.TopP))
	}

	s.span.End()
}
