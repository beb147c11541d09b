package responses

import (
	"encoding/json"
)

// An error returned by the model while generating a response.
type ResponseError struct {
	// The error code for the response.
	Code string `json:"code"`

	// A human-readable description of the error.
	Message string `json:"message"`
}

// Details about why a response is incomplete.
type IncompleteDetails struct {
	// The reason why the response is incomplete.
	Reason string `json:"reason"`
}

// A detailed breakdown of the input tokens.
type InputTokensDetails struct {
	// The number of tokens that were retrieved from the cache.
	CachedTokens int `json:"cached_tokens"`
}

// A detailed breakdown of the output tokens.
type OutputTokensDetails struct {
	// The number of reasoning tokens.
	ReasoningTokens int `json:"reasoning_tokens"`
}

// Usage represents token usage details including input tokens, output
// tokens, a breakdown of output tokens, and the total tokens used.
type Usage struct {
	// The number of input tokens.
	InputTokens int `json:"input_tokens"`

	// A detailed breakdown of the input tokens.
	InputTokensDetails InputTokensDetails `json:"input_tokens_details"`

	// The number of output tokens.
	OutputTokens int `json:"output_tokens"`

	// A detailed breakdown of the output tokens.
	OutputTokensDetails OutputTokensDetails `json:"output_tokens_details"`

	// The total number of tokens used.
	TotalTokens int `json:"total_tokens"`
}

// Response is the document returned by the responses endpoint: a flat
// mirror of the request shape plus identity, status, output, and usage.
type Response struct {
	// Unique identifier for this response.
	ID string `json:"id"`

	// The object type of this resource. Always `response`.
	Object string `json:"object"`

	// Unix timestamp (in seconds) of when this response was created.
	CreatedAt float64 `json:"created_at"`

	// The status of the response generation.
	Status ResponseStatus `json:"status"`

	// An error object returned when the model fails to generate a response.
	Error *ResponseError `json:"error,omitempty"`

	// Details about why the response is incomplete.
	IncompleteDetails *IncompleteDetails `json:"incomplete_details,omitempty"`

	// A system (or developer) message inserted into the model's context.
	Instructions *string `json:"instructions,omitempty"`

	// An upper bound for the number of tokens generated for this response.
	MaxOutputTokens *uint32 `json:"max_output_tokens,omitempty"`

	// Model ID used to generate the response.
	Model string `json:"model"`

	// An array of content items generated by the model.
	Output []OutputItem `json:"output"`

	// Whether the model was allowed to run tool calls in parallel.
	ParallelToolCalls *bool `json:"parallel_tool_calls,omitempty"`

	// The unique ID of the previous response to the model.
	PreviousResponseID *string `json:"previous_response_id,omitempty"`

	// Configuration options for reasoning models.
	Reasoning *Reasoning `json:"reasoning,omitempty"`

	// The latency tier used for processing the request.
	ServiceTier *ServiceTier `json:"service_tier,omitempty"`

	// Whether the generated model response is stored for later retrieval.
	Store *bool `json:"store,omitempty"`

	// The sampling temperature used.
	Temperature *float64 `json:"temperature,omitempty"`

	// Configuration options for a text response from the model.
	Text *TextConfig `json:"text,omitempty"`

	// How the model selected which tool (or tools) to use.
	ToolChoice *ToolChoice `json:"tool_choice,omitempty"`

	// An array of tools the model may call while generating a response.
	Tools []Tool `json:"tools,omitempty"`

	// The nucleus sampling parameter used.
	TopP *float64 `json:"top_p,omitempty"`

	// The truncation strategy used.
	Truncation *Truncation `json:"truncation,omitempty"`

	// Token usage details for the request and response.
	Usage *Usage `json:"usage,omitempty"`

	// The end-user identifier attached to the request.
	User *string `json:"user,omitempty"`

	// The metadata attached to the request.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// OutputText concatenates all output_text content of all output
// messages, the aggregate text of the response.
func (r *Response) OutputText() string {
	var text string
	for _, item := range r.Output {
		if item.OutputMessageItem == nil {
			continue
		}
		for _, content := range item.OutputMessageItem.Content {
			if content.OutputText != nil {
				text += content.OutputText.Text
			}
		}
	}
	return text
}

// DecodeResponse decodes one response document from its JSON wire form.
func DecodeResponse(data []byte) (*Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, NewDecodeError("response document", err)
	}
	return &r, nil
}
