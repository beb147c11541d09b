package responses

import (
	"encoding/json"
)

// Request is the document posted to the responses endpoint. Unset
// optional fields are omitted from the wire form entirely, never emitted
// as null. Scalar setters replace the prior value; AddTool and AddInclude
// append.
type Request struct {
	// Model ID used to generate the response, like `gpt-4o` or `o3`.
	Model string `json:"model"`

	// Text, image, or file inputs to the model, used to generate a response.
	Input Input `json:"input"`

	// Specify additional output data to include in the model response.
	Include []Include `json:"include,omitempty"`

	// A system (or developer) message inserted into the model's context.
	Instructions *string `json:"instructions,omitempty"`

	// An upper bound for the number of tokens that can be generated for a
	// response, including visible output tokens and reasoning tokens.
	MaxOutputTokens *uint32 `json:"max_output_tokens,omitempty"`

	// Set of 16 key-value pairs that can be attached to an object, useful
	// for storing additional information in a structured format.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Whether to allow the model to run tool calls in parallel.
	ParallelToolCalls *bool `json:"parallel_tool_calls,omitempty"`

	// The unique ID of the previous response to the model. Use this to
	// create multi-turn conversations.
	PreviousResponseID *string `json:"previous_response_id,omitempty"`

	// Configuration options for reasoning models.
	Reasoning *Reasoning `json:"reasoning,omitempty"`

	// The latency tier to use for processing the request.
	ServiceTier *ServiceTier `json:"service_tier,omitempty"`

	// Whether to store the generated model response for later retrieval via
	// API.
	Store *bool `json:"store,omitempty"`

	// If set to true, the model response data will be streamed to the client
	// as it is generated using server-sent events.
	Stream *bool `json:"stream,omitempty"`

	// What sampling temperature to use, between 0 and 2.
	Temperature *float64 `json:"temperature,omitempty"`

	// Configuration options for a text response from the model.
	Text *TextConfig `json:"text,omitempty"`

	// How the model should select which tool (or tools) to use when
	// generating a response.
	ToolChoice *ToolChoice `json:"tool_choice,omitempty"`

	// An array of tools the model may call while generating a response.
	Tools []Tool `json:"tools,omitempty"`

	// An alternative to sampling with temperature, called nucleus sampling.
	TopP *float64 `json:"top_p,omitempty"`

	// The truncation strategy to use for the model response.
	Truncation *Truncation `json:"truncation,omitempty"`

	// A unique identifier representing your end-user, which can help OpenAI
	// to monitor and detect abuse.
	User *string `json:"user,omitempty"`
}

// NewRequest creates a request for the given model and input.
func NewRequest(model string, input Input) *Request {
	return &Request{Model: model, Input: input}
}

func (r *Request) SetInstructions(instructions string) *Request {
	r.Instructions = &instructions
	return r
}

func (r *Request) SetMaxOutputTokens(n uint32) *Request {
	r.MaxOutputTokens = &n
	return r
}

// SetMetadata replaces the metadata map.
func (r *Request) SetMetadata(metadata map[string]string) *Request {
	r.Metadata = metadata
	return r
}

// PutMetadata sets a single metadata key.
func (r *Request) PutMetadata(key, value string) *Request {
	if r.Metadata == nil {
		r.Metadata = make(map[string]string)
	}
	r.Metadata[key] = value
	return r
}

func (r *Request) SetParallelToolCalls(v bool) *Request {
	r.ParallelToolCalls = &v
	return r
}

func (r *Request) SetPreviousResponseID(id string) *Request {
	r.PreviousResponseID = &id
	return r
}

func (r *Request) SetReasoning(reasoning Reasoning) *Request {
	r.Reasoning = &reasoning
	return r
}

func (r *Request) SetServiceTier(tier ServiceTier) *Request {
	r.ServiceTier = &tier
	return r
}

func (r *Request) SetStore(v bool) *Request {
	r.Store = &v
	return r
}

func (r *Request) SetTemperature(v float64) *Request {
	r.Temperature = &v
	return r
}

func (r *Request) SetText(text TextConfig) *Request {
	r.Text = &text
	return r
}

func (r *Request) SetToolChoice(choice ToolChoice) *Request {
	r.ToolChoice = &choice
	return r
}

func (r *Request) SetTopP(v float64) *Request {
	r.TopP = &v
	return r
}

func (r *Request) SetTruncation(t Truncation) *Request {
	r.Truncation = &t
	return r
}

func (r *Request) SetUser(user string) *Request {
	r.User = &user
	return r
}

// AddTool appends a tool to the tool list. The remote API treats tools as
// a cumulative list, so repeated calls build it up in order.
func (r *Request) AddTool(tool Tool) *Request {
	r.Tools = append(r.Tools, tool)
	return r
}

// AddInclude appends an include directive.
func (r *Request) AddInclude(include Include) *Request {
	r.Include = append(r.Include, include)
	return r
}

// ForStreaming returns a shallow copy of the request with the stream flag
// set, leaving the receiver untouched.
func (r *Request) ForStreaming() *Request {
	next := *r
	stream := true
	next.Stream = &stream
	return &next
}

// ToWire encodes the request to its JSON wire form.
func (r *Request) ToWire() ([]byte, error) {
	return json.Marshal(r)
}
