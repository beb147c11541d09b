package responses

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openresp/responses-go/internal/clientutils"
	"github.com/openresp/responses-go/internal/tracing"
	"github.com/openresp/responses-go/utils/ptr"
	"github.com/openresp/responses-go/utils/stream"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Client posts requests to the responses endpoint.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	headers map[string]string
}

// ClientOptions represents configuration options for the client.
type ClientOptions struct {
	BaseURL    string
	APIKey     string
	Headers    map[string]string
	HTTPClient *http.Client
}

func NewClient(options ClientOptions) *Client {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	headers := map[string]string{}
	for k, v := range options.Headers {
		headers[k] = v
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: baseURL,
		client:  client,
		headers: headers,
	}
}

func (c *Client) requestHeaders() map[string]string {
	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", c.apiKey),
	}

	for k, v := range c.headers {
		headers[k] = v
	}

	return headers
}

func requestInfo(request *Request) tracing.RequestInfo {
	return tracing.RequestInfo{
		ModelID:         request.Model,
		MaxOutputTokens: request.MaxOutputTokens,
		Temperature:     request.Temperature,
		TopP:            request.TopP,
	}
}

// mapClientError converts a transport-layer failure into a typed error:
// a rejected document keeps its status and body, an undecodable success
// body is a decode error, everything else is a transport error.
func mapClientError(err error) error {
	var statusErr *clientutils.StatusError
	if errors.As(err, &statusErr) {
		return NewStatusCodeError(statusErr.Code, statusErr.Body)
	}
	var decodeErr *clientutils.DecodeError
	if errors.As(err, &decodeErr) {
		return NewDecodeError("response document", decodeErr.Err)
	}
	return NewTransportError(err)
}

// Create sends the request on the synchronous path and returns the
// decoded response document.
func (c *Client) Create(ctx context.Context, request *Request) (*Response, error) {
	ctx, span := tracing.Start(ctx, "create", requestInfo(request))
	defer span.OnEnd()

	params := *request
	params.Stream = ptr.To(false)

	response, err := clientutils.DoJSON[Response](ctx, c.client, clientutils.JSONRequestConfig{
		URL:     fmt.Sprintf("%s/responses", c.baseURL),
		Body:    &params,
		Headers: c.requestHeaders(),
	})
	if err != nil {
		mapped := mapClientError(err)
		span.OnError(mapped)
		return nil, mapped
	}

	if response.Usage != nil {
		span.OnUsage(response.Usage.InputTokens, response.Usage.OutputTokens)
	}
	return response, nil
}

// Stream sends the request on the streaming path and returns a lazy,
// forward-only sequence of decoded events, finite until the terminal
// event. Events are delivered in the order the server sent them.
func (c *Client) Stream(ctx context.Context, request *Request) (*stream.Stream[StreamEvent], error) {
	ctx, span := tracing.Start(ctx, "stream", requestInfo(request))

	sseStream, err := clientutils.DoSSE(ctx, c.client, clientutils.SSERequestConfig{
		URL:     fmt.Sprintf("%s/responses", c.baseURL),
		Body:    request.ForStreaming(),
		Headers: c.requestHeaders(),
	})
	if err != nil {
		mapped := mapClientError(err)
		span.OnError(mapped)
		span.OnEnd()
		return nil, mapped
	}

	eventCh := make(chan StreamEvent)
	errCh := make(chan error, 1)

	go func() {
		defer close(eventCh)
		defer close(errCh)
		defer sseStream.Close()
		defer span.OnEnd()

		for sseStream.Scanner.Next() {
			sseEvent := sseStream.Scanner.Current()
			if sseEvent.Data == "" || sseEvent.Data == "[DONE]" {
				continue
			}

			event, err := DecodeStreamEvent([]byte(sseEvent.Data))
			if err != nil {
				span.OnError(err)
				errCh <- err
				return
			}
			span.OnFirstEvent()

			if event.Completed != nil && event.Completed.Response.Usage != nil {
				usage := event.Completed.Response.Usage
				span.OnUsage(usage.InputTokens, usage.OutputTokens)
			}

			eventCh <- *event
		}

		if err := sseStream.Scanner.Err(); err != nil {
			mapped := NewTransportError(err)
			span.OnError(mapped)
			errCh <- mapped
		}
	}()

	return stream.New(eventCh, errCh), nil
}
