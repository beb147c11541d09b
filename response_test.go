package responses

import (
	"testing"
)

const responseFixture = `{
	"id": "resp_123",
	"object": "response",
	"created_at": 1741476542,
	"status": "completed",
	"model": "gpt-4o",
	"output": [
		{
			"type": "reasoning",
			"id": "rs_1",
			"summary": [{"type": "summary_text", "text": "thinking"}]
		},
		{
			"type": "message",
			"id": "msg_1",
			"role": "assistant",
			"status": "completed",
			"content": [
				{"type": "output_text", "text": "Hello, ", "annotations": []},
				{"type": "refusal", "refusal": "nope"},
				{"type": "output_text", "text": "world.", "annotations": []}
			]
		}
	],
	"usage": {
		"input_tokens": 12,
		"input_tokens_details": {"cached_tokens": 4},
		"output_tokens": 30,
		"output_tokens_details": {"reasoning_tokens": 10},
		"total_tokens": 42
	},
	"metadata": {}
}`

func TestDecodeResponse(t *testing.T) {
	resp, err := DecodeResponse([]byte(responseFixture))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}

	if resp.ID != "resp_123" {
		t.Fatalf("ID = %q", resp.ID)
	}
	if resp.Status != ResponseStatusCompleted {
		t.Fatalf("status = %q", resp.Status)
	}
	if len(resp.Output) != 2 {
		t.Fatalf("output items = %d", len(resp.Output))
	}
	if resp.Output[0].ReasoningItem == nil {
		t.Fatalf("first item should be reasoning, got %+v", resp.Output[0])
	}

	msg, err := resp.Output[1].AsMessage()
	if err != nil {
		t.Fatalf("AsMessage returned error: %v", err)
	}
	if msg.Status != StatusCompleted {
		t.Fatalf("message status = %q", msg.Status)
	}
}

func TestResponseOutputText(t *testing.T) {
	resp, err := DecodeResponse([]byte(responseFixture))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}
	// Refusal content and non-message items are skipped.
	if got := resp.OutputText(); got != "Hello, world." {
		t.Fatalf("OutputText() = %q", got)
	}
}

func TestResponseUsage(t *testing.T) {
	resp, err := DecodeResponse([]byte(responseFixture))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}

	u := resp.Usage
	if u == nil {
		t.Fatal("usage missing")
	}
	if u.InputTokens != 12 || u.OutputTokens != 30 || u.TotalTokens != 42 {
		t.Fatalf("usage = %+v", u)
	}
	if u.InputTokensDetails.CachedTokens != 4 {
		t.Fatalf("cached tokens = %d", u.InputTokensDetails.CachedTokens)
	}
	if u.OutputTokensDetails.ReasoningTokens != 10 {
		t.Fatalf("reasoning tokens = %d", u.OutputTokensDetails.ReasoningTokens)
	}
}

func TestDecodeResponseError(t *testing.T) {
	if _, err := DecodeResponse([]byte(`{"output": "not a list"`)); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestDecodeResponseFailed(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{
		"id": "resp_9",
		"object": "response",
		"created_at": 1741476542,
		"status": "failed",
		"model": "gpt-4o",
		"output": [],
		"error": {"code": "server_error", "message": "boom"}
	}`))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}
	if resp.Status != ResponseStatusFailed {
		t.Fatalf("status = %q", resp.Status)
	}
	if resp.Error == nil || resp.Error.Code != "server_error" {
		t.Fatalf("error = %+v", resp.Error)
	}
}
