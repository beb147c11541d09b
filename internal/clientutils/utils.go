package clientutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/openresp/responses-go/internal/sse"
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Code, e.Body)
}

// DecodeError reports a success response whose body could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to unmarshal response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// JSONRequestConfig holds configuration for JSON requests
type JSONRequestConfig struct {
	URL     string
	Headers map[string]string
	Body    any
}

// SSERequestConfig holds configuration for SSE requests
type SSERequestConfig struct {
	URL     string
	Headers map[string]string
	Body    any
}

// DoJSON performs a JSON POST request and unmarshals the response
func DoJSON[T any](ctx context.Context, client *http.Client, config JSONRequestConfig) (*T, error) {
	reqBody, err := json.Marshal(config.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", config.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var result T
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &result, nil
}

// SSEStream represents a server-sent event stream
type SSEStream struct {
	Response *http.Response
	Scanner  *sse.Scanner
}

// Close closes the SSE stream
func (s *SSEStream) Close() error {
	return s.Response.Body.Close()
}

// DoSSE performs a streaming SSE POST request and returns a stream
func DoSSE(ctx context.Context, client *http.Client, config SSERequestConfig) (*SSEStream, error) {
	reqBody, err := json.Marshal(config.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", config.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	return &SSEStream{
		Response: resp,
		Scanner:  sse.NewScanner(resp.Body),
	}, nil
}
