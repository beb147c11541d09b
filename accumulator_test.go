package responses

import (
	"testing"

	"github.com/openresp/responses-go/utils/ptr"
)

func emptyStreamResponse(status ResponseStatus) Response {
	return Response{
		ID:        "resp_1",
		Object:    "response",
		CreatedAt: 1741476542,
		Status:    status,
		Model:     ModelGPT4o,
	}
}

func messageAddedEvent(itemID string, outputIndex int) *StreamEvent {
	return &StreamEvent{OutputItemAdded: &OutputItemAddedEvent{
		Item: OutputItem{OutputMessageItem: &OutputMessageItem{
			ID:   itemID,
			Role: RoleAssistant,
		}},
		OutputIndex: outputIndex,
	}}
}

func feed(t *testing.T, acc *StreamAccumulator, events ...*StreamEvent) {
	t.Helper()
	for _, event := range events {
		if err := acc.AddEvent(event); err != nil {
			t.Fatalf("AddEvent(%s) returned error: %v", event.Type(), err)
		}
	}
}

func TestAccumulatorAssemblesText(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
		&StreamEvent{ContentPartAdded: &ContentPartAddedEvent{
			ItemID: "msg_1", Part: NewOutputTextContent(""),
		}},
		&StreamEvent{OutputTextDelta: &OutputTextDeltaEvent{ItemID: "msg_1", Delta: "He"}},
		&StreamEvent{OutputTextDelta: &OutputTextDeltaEvent{ItemID: "msg_1", Delta: "llo"}},
		&StreamEvent{OutputTextDone: &OutputTextDoneEvent{ItemID: "msg_1", Text: "Hello"}},
		&StreamEvent{ContentPartDone: &ContentPartDoneEvent{
			ItemID: "msg_1", Part: NewOutputTextContent("Hello"),
		}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: emptyStreamResponse(ResponseStatusCompleted)}},
	)

	if !acc.IsTerminal() {
		t.Fatal("accumulator should be terminal after response.completed")
	}

	resp, err := acc.Response()
	if err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
	if got := resp.OutputText(); got != "Hello" {
		t.Fatalf("OutputText() = %q, want %q", got, "Hello")
	}
}

func TestAccumulatorDoneValueWins(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
		&StreamEvent{ContentPartAdded: &ContentPartAddedEvent{
			ItemID: "msg_1", Part: NewOutputTextContent(""),
		}},
		&StreamEvent{OutputTextDelta: &OutputTextDeltaEvent{ItemID: "msg_1", Delta: "He"}},
		// The done text disagrees with the concatenated deltas; it wins.
		&StreamEvent{OutputTextDone: &OutputTextDoneEvent{ItemID: "msg_1", Text: "Hello world"}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: emptyStreamResponse(ResponseStatusCompleted)}},
	)

	resp, err := acc.Response()
	if err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
	if got := resp.OutputText(); got != "Hello world" {
		t.Fatalf("OutputText() = %q, want %q", got, "Hello world")
	}
}

func TestAccumulatorTerminalPayloadIsSourceOfTruth(t *testing.T) {
	acc := NewStreamAccumulator()

	final := emptyStreamResponse(ResponseStatusCompleted)
	final.Output = []OutputItem{{OutputMessageItem: &OutputMessageItem{
		ID:      "msg_1",
		Role:    RoleAssistant,
		Status:  StatusCompleted,
		Content: []OutputContent{NewOutputTextContent("authoritative")},
	}}}

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
		&StreamEvent{ContentPartAdded: &ContentPartAddedEvent{
			ItemID: "msg_1", Part: NewOutputTextContent(""),
		}},
		&StreamEvent{OutputTextDelta: &OutputTextDeltaEvent{ItemID: "msg_1", Delta: "accumulated"}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: final}},
	)

	resp, err := acc.Response()
	if err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
	if got := resp.OutputText(); got != "authoritative" {
		t.Fatalf("OutputText() = %q, want the terminal payload text", got)
	}
}

func TestAccumulatorFunctionCallArguments(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		&StreamEvent{OutputItemAdded: &OutputItemAddedEvent{
			Item: OutputItem{FunctionToolCallItem: &FunctionToolCallItem{
				ID:     ptr.To("fc_1"),
				CallID: "call_1",
				Name:   "get_weather",
			}},
			OutputIndex: 0,
		}},
		&StreamEvent{FunctionCallArgumentsDelta: &FunctionCallArgumentsDeltaEvent{ItemID: "fc_1", Delta: `{"city":`}},
		&StreamEvent{FunctionCallArgumentsDelta: &FunctionCallArgumentsDeltaEvent{ItemID: "fc_1", Delta: `"Hanoi"}`}},
		&StreamEvent{FunctionCallArgumentsDone: &FunctionCallArgumentsDoneEvent{ItemID: "fc_1", Arguments: `{"city":"Hanoi"}`}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: emptyStreamResponse(ResponseStatusCompleted)}},
	)

	resp, err := acc.Response()
	if err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
	call, err := resp.Output[0].AsFunctionToolCall()
	if err != nil {
		t.Fatalf("AsFunctionToolCall returned error: %v", err)
	}
	if call.Arguments != `{"city":"Hanoi"}` {
		t.Fatalf("arguments = %q", call.Arguments)
	}
}

func TestAccumulatorReasoningSummary(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		&StreamEvent{OutputItemAdded: &OutputItemAddedEvent{
			Item:        OutputItem{ReasoningItem: &ReasoningItem{ID: "rs_1"}},
			OutputIndex: 0,
		}},
		&StreamEvent{ReasoningSummaryPartAdded: &ReasoningSummaryPartAddedEvent{ItemID: "rs_1", SummaryIndex: 0}},
		&StreamEvent{ReasoningSummaryTextDelta: &ReasoningSummaryTextDeltaEvent{ItemID: "rs_1", SummaryIndex: 0, Delta: "step "}},
		&StreamEvent{ReasoningSummaryTextDelta: &ReasoningSummaryTextDeltaEvent{ItemID: "rs_1", SummaryIndex: 0, Delta: "one"}},
		&StreamEvent{ReasoningSummaryPartDone: &ReasoningSummaryPartDoneEvent{
			ItemID: "rs_1", SummaryIndex: 0, Part: NewSummaryText("step one"),
		}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: emptyStreamResponse(ResponseStatusCompleted)}},
	)

	resp, err := acc.Response()
	if err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
	reasoning := resp.Output[0].ReasoningItem
	if reasoning == nil {
		t.Fatalf("output = %+v", resp.Output)
	}
	if len(reasoning.Summary) != 1 || reasoning.Summary[0].Text != "step one" {
		t.Fatalf("summary = %+v", reasoning.Summary)
	}
}

func TestAccumulatorDuplicateAdded(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
		&StreamEvent{ContentPartAdded: &ContentPartAddedEvent{
			ItemID: "msg_1", Part: NewOutputTextContent(""),
		}},
	)

	err := acc.AddEvent(&StreamEvent{ContentPartAdded: &ContentPartAddedEvent{
		ItemID: "msg_1", Part: NewOutputTextContent(""),
	}})
	if err == nil {
		t.Fatal("expected error for duplicate content_part.added")
	}
}

func TestAccumulatorDeltaBeforeAdded(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
	)

	err := acc.AddEvent(&StreamEvent{OutputTextDelta: &OutputTextDeltaEvent{ItemID: "msg_1", Delta: "He"}})
	if err == nil {
		t.Fatal("expected error for delta before content_part.added")
	}
}

func TestAccumulatorDeltaAfterDone(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
		&StreamEvent{ContentPartAdded: &ContentPartAddedEvent{
			ItemID: "msg_1", Part: NewOutputTextContent(""),
		}},
		&StreamEvent{ContentPartDone: &ContentPartDoneEvent{
			ItemID: "msg_1", Part: NewOutputTextContent("done"),
		}},
	)

	err := acc.AddEvent(&StreamEvent{OutputTextDelta: &OutputTextDeltaEvent{ItemID: "msg_1", Delta: "late"}})
	if err == nil {
		t.Fatal("expected error for delta after content_part.done")
	}
}

func TestAccumulatorDuplicateOutputItem(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		messageAddedEvent("msg_1", 0),
	)

	if err := acc.AddEvent(messageAddedEvent("msg_2", 0)); err == nil {
		t.Fatal("expected error for duplicate output index")
	}
}

func TestAccumulatorEventAfterTerminal(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: emptyStreamResponse(ResponseStatusCompleted)}},
	)

	if err := acc.AddEvent(messageAddedEvent("msg_1", 0)); err == nil {
		t.Fatal("expected error for event after the terminal event")
	}
}

func TestAccumulatorDuplicateCreated(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc, &StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}})

	if err := acc.AddEvent(&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}}); err == nil {
		t.Fatal("expected error for duplicate response.created")
	}
}

func TestAccumulatorResponseBeforeTerminal(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc, &StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}})

	if _, err := acc.Response(); err == nil {
		t.Fatal("expected error before a terminal event")
	}
}

func TestAccumulatorErrorEvent(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		&StreamEvent{Error: &ErrorEvent{Code: ptr.To("rate_limit_exceeded"), Message: "slow down"}},
	)

	if !acc.IsTerminal() {
		t.Fatal("error event must terminate the stream")
	}
	if _, err := acc.Response(); err == nil {
		t.Fatal("expected error when the stream terminated with an error event")
	}
}

func TestAccumulatorProgressEventsAreNoOps(t *testing.T) {
	acc := NewStreamAccumulator()

	feed(t, acc,
		&StreamEvent{Created: &ResponseCreatedEvent{Response: emptyStreamResponse(ResponseStatusInProgress)}},
		&StreamEvent{WebSearchCallInProgress: &WebSearchCallInProgressEvent{ItemID: "ws_1"}},
		&StreamEvent{WebSearchCallSearching: &WebSearchCallSearchingEvent{ItemID: "ws_1"}},
		&StreamEvent{WebSearchCallCompleted: &WebSearchCallCompletedEvent{ItemID: "ws_1"}},
		&StreamEvent{Completed: &ResponseCompletedEvent{Response: emptyStreamResponse(ResponseStatusCompleted)}},
	)

	if _, err := acc.Response(); err != nil {
		t.Fatalf("Response returned error: %v", err)
	}
}

func TestAccumulatorEmptyEvent(t *testing.T) {
	acc := NewStreamAccumulator()
	if err := acc.AddEvent(&StreamEvent{}); err == nil {
		t.Fatal("expected error for an empty event")
	}
}
