package responses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != ModelGPT4o {
			t.Errorf("model = %q", req.Model)
		}
		if req.Stream == nil || *req.Stream {
			t.Errorf("synchronous path must send stream=false, got %v", req.Stream)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "resp_1",
			"object": "response",
			"created_at": 1741476542,
			"status": "completed",
			"model": "gpt-4o",
			"output": [{
				"type": "message",
				"id": "msg_1",
				"role": "assistant",
				"status": "completed",
				"content": [{"type": "output_text", "text": "Hello!", "annotations": []}]
			}],
			"usage": {
				"input_tokens": 5,
				"input_tokens_details": {"cached_tokens": 0},
				"output_tokens": 3,
				"output_tokens_details": {"reasoning_tokens": 0},
				"total_tokens": 8
			}
		}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	resp, err := client.Create(context.Background(), NewRequest(ModelGPT4o, NewTextInput("hi")))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.ID != "resp_1" {
		t.Fatalf("ID = %q", resp.ID)
	}
	if got := resp.OutputText(); got != "Hello!" {
		t.Fatalf("OutputText() = %q", got)
	}
}

func TestClientCreateStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limited"}}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.Create(context.Background(), NewRequest(ModelGPT4o, NewTextInput("hi")))
	if err == nil {
		t.Fatal("expected error for 429 response")
	}

	var respErr *Error
	if !errors.As(err, &respErr) {
		t.Fatalf("error type = %T", err)
	}
	if respErr.Kind != StatusCode || respErr.Status != http.StatusTooManyRequests {
		t.Fatalf("error = %+v", respErr)
	}
}

func TestClientCreateDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"output": `)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.Create(context.Background(), NewRequest(ModelGPT4o, NewTextInput("hi")))
	if err == nil {
		t.Fatal("expected error for truncated body")
	}

	var respErr *Error
	if !errors.As(err, &respErr) || respErr.Kind != Decode {
		t.Fatalf("error = %v", err)
	}
}

func TestClientStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Stream == nil || !*req.Stream {
			t.Errorf("streaming path must send stream=true, got %v", req.Stream)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		events := []string{
			`{"type":"response.created","sequence_number":0,"response":{"id":"resp_1","object":"response","created_at":1,"status":"in_progress","model":"gpt-4o","output":[]}}`,
			`{"type":"response.output_item.added","sequence_number":1,"output_index":0,"item":{"type":"message","id":"msg_1","role":"assistant","status":"in_progress","content":[]}}`,
			`{"type":"response.content_part.added","sequence_number":2,"item_id":"msg_1","output_index":0,"content_index":0,"part":{"type":"output_text","text":"","annotations":[]}}`,
			`{"type":"response.output_text.delta","sequence_number":3,"item_id":"msg_1","output_index":0,"content_index":0,"delta":"He"}`,
			`{"type":"response.output_text.delta","sequence_number":4,"item_id":"msg_1","output_index":0,"content_index":0,"delta":"llo"}`,
			`{"type":"response.output_text.done","sequence_number":5,"item_id":"msg_1","output_index":0,"content_index":0,"text":"Hello"}`,
			`{"type":"response.content_part.done","sequence_number":6,"item_id":"msg_1","output_index":0,"content_index":0,"part":{"type":"output_text","text":"Hello","annotations":[]}}`,
			`{"type":"response.completed","sequence_number":7,"response":{"id":"resp_1","object":"response","created_at":1,"status":"completed","model":"gpt-4o","output":[]}}`,
		}
		for _, event := range events {
			fmt.Fprintf(w, "data: %s\n\n", event)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	events, err := client.Stream(context.Background(), NewRequest(ModelGPT4o, NewTextInput("hi")))
	if err != nil {
		t.Fatalf("Stream returned error: %v", err)
	}

	acc := NewStreamAccumulator()
	count := 0
	for events.Next() {
		event := events.Current()
		count++
		if err := acc.AddEvent(&event); err != nil {
			t.Fatalf("AddEvent returned error: %v", err)
		}
	}
	if err := events.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	if count != 8 {
		t.Fatalf("event count = %d", count)
	}

	resp, err := acc.Response()
	if err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
	if got := resp.OutputText(); got != "Hello" {
		t.Fatalf("OutputText() = %q", got)
	}
}

func TestClientStreamUnknownEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"type\":\"response.telepathy.delta\",\"sequence_number\":0}\n\n")
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	events, err := client.Stream(context.Background(), NewRequest(ModelGPT4o, NewTextInput("hi")))
	if err != nil {
		t.Fatalf("Stream returned error: %v", err)
	}

	for events.Next() {
	}
	if events.Err() == nil {
		t.Fatal("expected decode error for unknown event name")
	}
}

func TestClientStreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "bad key"}}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "wrong"})

	_, err := client.Stream(context.Background(), NewRequest(ModelGPT4o, NewTextInput("hi")))
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var respErr *Error
	if !errors.As(err, &respErr) || respErr.Kind != StatusCode {
		t.Fatalf("error = %v", err)
	}
}
