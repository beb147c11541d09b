package responses

import (
	"encoding/json"
	"fmt"
)

// An event that is emitted when a response is created.
type ResponseCreatedEvent struct {
	// The response that was created.
	Response Response `json:"response"`

	// The sequence number for this event.
	SequenceNumber int `json:"sequence_number"`
}

// Emitted when the response is in progress.
type ResponseInProgressEvent struct {
	Response       Response `json:"response"`
	SequenceNumber int      `json:"sequence_number"`
}

// Emitted when the model response is complete.
type ResponseCompletedEvent struct {
	// Properties of the completed response.
	Response       Response `json:"response"`
	SequenceNumber int      `json:"sequence_number"`
}

// Emitted when a response fails.
type ResponseFailedEvent struct {
	Response       Response `json:"response"`
	SequenceNumber int      `json:"sequence_number"`
}

// Emitted when a response finishes as incomplete.
type ResponseIncompleteEvent struct {
	Response       Response `json:"response"`
	SequenceNumber int      `json:"sequence_number"`
}

// Emitted when a new output item is added.
type OutputItemAddedEvent struct {
	// The output item that was added.
	Item OutputItem `json:"item"`

	// The index of the output item that was added.
	OutputIndex int `json:"output_index"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when an output item is marked done.
type OutputItemDoneEvent struct {
	// The output item that was marked done.
	Item OutputItem `json:"item"`

	// The index of the output item that was marked done.
	OutputIndex int `json:"output_index"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when a new content part is added.
type ContentPartAddedEvent struct {
	// The index of the content part that was added.
	ContentIndex int `json:"content_index"`

	// The ID of the output item that the content part was added to.
	ItemID string `json:"item_id"`

	// The index of the output item that the content part was added to.
	OutputIndex int `json:"output_index"`

	// The content part that was added.
	Part OutputContent `json:"part"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when a content part is done.
type ContentPartDoneEvent struct {
	ContentIndex int    `json:"content_index"`
	ItemID       string `json:"item_id"`
	OutputIndex  int    `json:"output_index"`

	// The content part that is done.
	Part OutputContent `json:"part"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when there is an additional text delta.
type OutputTextDeltaEvent struct {
	ContentIndex int `json:"content_index"`

	// The text delta that was added.
	Delta string `json:"delta"`

	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when text content is finalized.
type OutputTextDoneEvent struct {
	ContentIndex   int    `json:"content_index"`
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`

	// The text content that is finalized.
	Text string `json:"text"`
}

// Emitted when an annotation is added to output text content.
type OutputTextAnnotationAddedEvent struct {
	// The annotation object being added.
	Annotation Annotation `json:"annotation"`

	// The index of the annotation within the content part.
	AnnotationIndex int `json:"annotation_index"`

	ContentIndex   int    `json:"content_index"`
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when there is a partial refusal text.
type RefusalDeltaEvent struct {
	ContentIndex int `json:"content_index"`

	// The refusal text that is added.
	Delta string `json:"delta"`

	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when refusal text is finalized.
type RefusalDoneEvent struct {
	ContentIndex int    `json:"content_index"`
	ItemID       string `json:"item_id"`
	OutputIndex  int    `json:"output_index"`

	// The refusal text that is finalized.
	Refusal string `json:"refusal"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when there is a partial function-call arguments delta.
type FunctionCallArgumentsDeltaEvent struct {
	// The function-call arguments delta that is added.
	Delta string `json:"delta"`

	// The ID of the output item that the delta was added to.
	ItemID string `json:"item_id"`

	// The index of the output item that the delta was added to.
	OutputIndex int `json:"output_index"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when function-call arguments are finalized.
type FunctionCallArgumentsDoneEvent struct {
	// The function-call arguments.
	Arguments string `json:"arguments"`

	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a file search call is initiated.
type FileSearchCallInProgressEvent struct {
	// The ID of the output item that the file search call is initiated.
	ItemID string `json:"item_id"`

	// The index of the output item that the file search call is initiated.
	OutputIndex int `json:"output_index"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when a file search is currently searching.
type FileSearchCallSearchingEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a file search call is completed (results found).
type FileSearchCallCompletedEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a web search call is initiated.
type WebSearchCallInProgressEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a web search call is executing.
type WebSearchCallSearchingEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a web search call is completed.
type WebSearchCallCompletedEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a new reasoning summary part is added.
type ReasoningSummaryPartAddedEvent struct {
	// The ID of the item this summary part is associated with.
	ItemID string `json:"item_id"`

	// The index of the output item this summary part is associated with.
	OutputIndex int `json:"output_index"`

	// The summary part that was added.
	Part SummaryText `json:"part"`

	SequenceNumber int `json:"sequence_number"`

	// The index of the summary part within the reasoning summary.
	SummaryIndex int `json:"summary_index"`
}

// Emitted when a reasoning summary part is completed.
type ReasoningSummaryPartDoneEvent struct {
	ItemID      string `json:"item_id"`
	OutputIndex int    `json:"output_index"`

	// The completed summary part.
	Part SummaryText `json:"part"`

	SequenceNumber int `json:"sequence_number"`
	SummaryIndex   int `json:"summary_index"`
}

// Emitted when a delta is added to a reasoning summary text.
type ReasoningSummaryTextDeltaEvent struct {
	// The text delta that was added to the summary.
	Delta string `json:"delta"`

	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
	SummaryIndex   int    `json:"summary_index"`
}

// Emitted when a reasoning summary text is completed.
type ReasoningSummaryTextDoneEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
	SummaryIndex   int    `json:"summary_index"`

	// The full text of the completed reasoning summary.
	Text string `json:"text"`
}

// Emitted when an image generation tool call is in progress.
type ImageGenerationCallInProgressEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when an image generation tool call is actively generating an
// image.
type ImageGenerationCallGeneratingEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when a partial image is available during image generation
// streaming.
type ImageGenerationCallPartialImageEvent struct {
	ItemID      string `json:"item_id"`
	OutputIndex int    `json:"output_index"`

	// Base64-encoded partial image data, suitable for rendering as an
	// image.
	PartialImageB64 string `json:"partial_image_b64"`

	// 0-based index for the partial image.
	PartialImageIndex int `json:"partial_image_index"`

	SequenceNumber int `json:"sequence_number"`
}

// Emitted when an image generation tool call has completed and the final
// image is available.
type ImageGenerationCallCompletedEvent struct {
	ItemID         string `json:"item_id"`
	OutputIndex    int    `json:"output_index"`
	SequenceNumber int    `json:"sequence_number"`
}

// Emitted when an error occurs. Terminal for the whole stream.
type ErrorEvent struct {
	// The error code.
	Code *string `json:"code"`

	// The error message.
	Message string `json:"message"`

	// The error parameter.
	Param *string `json:"param"`

	SequenceNumber int `json:"sequence_number"`
}

// StreamEvent is one server-sent event of a streaming response, tagged by
// the event-name string (e.g. `response.output_text.delta`). Exactly one
// field is set.
type StreamEvent struct {
	Created                         *ResponseCreatedEvent                 `json:"-"`
	InProgress                      *ResponseInProgressEvent              `json:"-"`
	Completed                       *ResponseCompletedEvent               `json:"-"`
	Failed                          *ResponseFailedEvent                  `json:"-"`
	Incomplete                      *ResponseIncompleteEvent              `json:"-"`
	OutputItemAdded                 *OutputItemAddedEvent                 `json:"-"`
	OutputItemDone                  *OutputItemDoneEvent                  `json:"-"`
	ContentPartAdded                *ContentPartAddedEvent                `json:"-"`
	ContentPartDone                 *ContentPartDoneEvent                 `json:"-"`
	OutputTextDelta                 *OutputTextDeltaEvent                 `json:"-"`
	OutputTextDone                  *OutputTextDoneEvent                  `json:"-"`
	OutputTextAnnotationAdded       *OutputTextAnnotationAddedEvent       `json:"-"`
	RefusalDelta                    *RefusalDeltaEvent                    `json:"-"`
	RefusalDone                     *RefusalDoneEvent                     `json:"-"`
	FunctionCallArgumentsDelta      *FunctionCallArgumentsDeltaEvent      `json:"-"`
	FunctionCallArgumentsDone       *FunctionCallArgumentsDoneEvent       `json:"-"`
	FileSearchCallInProgress        *FileSearchCallInProgressEvent        `json:"-"`
	FileSearchCallSearching         *FileSearchCallSearchingEvent         `json:"-"`
	FileSearchCallCompleted         *FileSearchCallCompletedEvent         `json:"-"`
	WebSearchCallInProgress         *WebSearchCallInProgressEvent         `json:"-"`
	WebSearchCallSearching          *WebSearchCallSearchingEvent          `json:"-"`
	WebSearchCallCompleted          *WebSearchCallCompletedEvent          `json:"-"`
	ReasoningSummaryPartAdded       *ReasoningSummaryPartAddedEvent       `json:"-"`
	ReasoningSummaryPartDone        *ReasoningSummaryPartDoneEvent        `json:"-"`
	ReasoningSummaryTextDelta       *ReasoningSummaryTextDeltaEvent       `json:"-"`
	ReasoningSummaryTextDone        *ReasoningSummaryTextDoneEvent        `json:"-"`
	ImageGenerationCallInProgress   *ImageGenerationCallInProgressEvent   `json:"-"`
	ImageGenerationCallGenerating   *ImageGenerationCallGeneratingEvent   `json:"-"`
	ImageGenerationCallPartialImage *ImageGenerationCallPartialImageEvent `json:"-"`
	ImageGenerationCallCompleted    *ImageGenerationCallCompletedEvent    `json:"-"`
	Error                           *ErrorEvent                           `json:"-"`
}

// Type returns the event-name discriminant of the set variant, or ""
// when empty.
func (e StreamEvent) Type() string {
	switch {
	case e.Created != nil:
		return "response.created"
	case e.InProgress != nil:
		return "response.in_progress"
	case e.Completed != nil:
		return "response.completed"
	case e.Failed != nil:
		return "response.failed"
	case e.Incomplete != nil:
		return "response.incomplete"
	case e.OutputItemAdded != nil:
		return "response.output_item.added"
	case e.OutputItemDone != nil:
		return "response.output_item.done"
	case e.ContentPartAdded != nil:
		return "response.content_part.added"
	case e.ContentPartDone != nil:
		return "response.content_part.done"
	case e.OutputTextDelta != nil:
		return "response.output_text.delta"
	case e.OutputTextDone != nil:
		return "response.output_text.done"
	case e.OutputTextAnnotationAdded != nil:
		return "response.output_text.annotation.added"
	case e.RefusalDelta != nil:
		return "response.refusal.delta"
	case e.RefusalDone != nil:
		return "response.refusal.done"
	case e.FunctionCallArgumentsDelta != nil:
		return "response.function_call_arguments.delta"
	case e.FunctionCallArgumentsDone != nil:
		return "response.function_call_arguments.done"
	case e.FileSearchCallInProgress != nil:
		return "response.file_search_call.in_progress"
	case e.FileSearchCallSearching != nil:
		return "response.file_search_call.searching"
	case e.FileSearchCallCompleted != nil:
		return "response.file_search_call.completed"
	case e.WebSearchCallInProgress != nil:
		return "response.web_search_call.in_progress"
	case e.WebSearchCallSearching != nil:
		return "response.web_search_call.searching"
	case e.WebSearchCallCompleted != nil:
		return "response.web_search_call.completed"
	case e.ReasoningSummaryPartAdded != nil:
		return "response.reasoning_summary_part.added"
	case e.ReasoningSummaryPartDone != nil:
		return "response.reasoning_summary_part.done"
	case e.ReasoningSummaryTextDelta != nil:
		return "response.reasoning_summary_text.delta"
	case e.ReasoningSummaryTextDone != nil:
		return "response.reasoning_summary_text.done"
	case e.ImageGenerationCallInProgress != nil:
		return "response.image_generation_call.in_progress"
	case e.ImageGenerationCallGenerating != nil:
		return "response.image_generation_call.generating"
	case e.ImageGenerationCallPartialImage != nil:
		return "response.image_generation_call.partial_image"
	case e.ImageGenerationCallCompleted != nil:
		return "response.image_generation_call.completed"
	case e.Error != nil:
		return "error"
	}
	return ""
}

// payload returns the set variant as an untyped value for encoding.
func (e StreamEvent) payload() any {
	switch {
	case e.Created != nil:
		return e.Created
	case e.InProgress != nil:
		return e.InProgress
	case e.Completed != nil:
		return e.Completed
	case e.Failed != nil:
		return e.Failed
	case e.Incomplete != nil:
		return e.Incomplete
	case e.OutputItemAdded != nil:
		return e.OutputItemAdded
	case e.OutputItemDone != nil:
		return e.OutputItemDone
	case e.ContentPartAdded != nil:
		return e.ContentPartAdded
	case e.ContentPartDone != nil:
		return e.ContentPartDone
	case e.OutputTextDelta != nil:
		return e.OutputTextDelta
	case e.OutputTextDone != nil:
		return e.OutputTextDone
	case e.OutputTextAnnotationAdded != nil:
		return e.OutputTextAnnotationAdded
	case e.RefusalDelta != nil:
		return e.RefusalDelta
	case e.RefusalDone != nil:
		return e.RefusalDone
	case e.FunctionCallArgumentsDelta != nil:
		return e.FunctionCallArgumentsDelta
	case e.FunctionCallArgumentsDone != nil:
		return e.FunctionCallArgumentsDone
	case e.FileSearchCallInProgress != nil:
		return e.FileSearchCallInProgress
	case e.FileSearchCallSearching != nil:
		return e.FileSearchCallSearching
	case e.FileSearchCallCompleted != nil:
		return e.FileSearchCallCompleted
	case e.WebSearchCallInProgress != nil:
		return e.WebSearchCallInProgress
	case e.WebSearchCallSearching != nil:
		return e.WebSearchCallSearching
	case e.WebSearchCallCompleted != nil:
		return e.WebSearchCallCompleted
	case e.ReasoningSummaryPartAdded != nil:
		return e.ReasoningSummaryPartAdded
	case e.ReasoningSummaryPartDone != nil:
		return e.ReasoningSummaryPartDone
	case e.ReasoningSummaryTextDelta != nil:
		return e.ReasoningSummaryTextDelta
	case e.ReasoningSummaryTextDone != nil:
		return e.ReasoningSummaryTextDone
	case e.ImageGenerationCallInProgress != nil:
		return e.ImageGenerationCallInProgress
	case e.ImageGenerationCallGenerating != nil:
		return e.ImageGenerationCallGenerating
	case e.ImageGenerationCallPartialImage != nil:
		return e.ImageGenerationCallPartialImage
	case e.ImageGenerationCallCompleted != nil:
		return e.ImageGenerationCallCompleted
	case e.Error != nil:
		return e.Error
	}
	return nil
}

func (e StreamEvent) MarshalJSON() ([]byte, error) {
	payload := e.payload()
	if payload == nil {
		return nil, fmt.Errorf("StreamEvent has no content")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	// Splice the discriminant into the payload object.
	tag, err := json.Marshal(struct {
		Type string `json:"type"`
	}{Type: e.Type()})
	if err != nil {
		return nil, err
	}
	if string(body) == "{}" {
		return tag, nil
	}
	merged := append(tag[:len(tag)-1], ',')
	merged = append(merged, body[1:]...)
	return merged, nil
}

func (e *StreamEvent) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "response.created":
		e.Created = &ResponseCreatedEvent{}
		return json.Unmarshal(data, e.Created)
	case "response.in_progress":
		e.InProgress = &ResponseInProgressEvent{}
		return json.Unmarshal(data, e.InProgress)
	case "response.completed":
		e.Completed = &ResponseCompletedEvent{}
		return json.Unmarshal(data, e.Completed)
	case "response.failed":
		e.Failed = &ResponseFailedEvent{}
		return json.Unmarshal(data, e.Failed)
	case "response.incomplete":
		e.Incomplete = &ResponseIncompleteEvent{}
		return json.Unmarshal(data, e.Incomplete)
	case "response.output_item.added":
		e.OutputItemAdded = &OutputItemAddedEvent{}
		return json.Unmarshal(data, e.OutputItemAdded)
	case "response.output_item.done":
		e.OutputItemDone = &OutputItemDoneEvent{}
		return json.Unmarshal(data, e.OutputItemDone)
	case "response.content_part.added":
		e.ContentPartAdded = &ContentPartAddedEvent{}
		return json.Unmarshal(data, e.ContentPartAdded)
	case "response.content_part.done":
		e.ContentPartDone = &ContentPartDoneEvent{}
		return json.Unmarshal(data, e.ContentPartDone)
	case "response.output_text.delta":
		e.OutputTextDelta = &OutputTextDeltaEvent{}
		return json.Unmarshal(data, e.OutputTextDelta)
	case "response.output_text.done":
		e.OutputTextDone = &OutputTextDoneEvent{}
		return json.Unmarshal(data, e.OutputTextDone)
	case "response.output_text.annotation.added":
		e.OutputTextAnnotationAdded = &OutputTextAnnotationAddedEvent{}
		return json.Unmarshal(data, e.OutputTextAnnotationAdded)
	case "response.refusal.delta":
		e.RefusalDelta = &RefusalDeltaEvent{}
		return json.Unmarshal(data, e.RefusalDelta)
	case "response.refusal.done":
		e.RefusalDone = &RefusalDoneEvent{}
		return json.Unmarshal(data, e.RefusalDone)
	case "response.function_call_arguments.delta":
		e.FunctionCallArgumentsDelta = &FunctionCallArgumentsDeltaEvent{}
		return json.Unmarshal(data, e.FunctionCallArgumentsDelta)
	case "response.function_call_arguments.done":
		e.FunctionCallArgumentsDone = &FunctionCallArgumentsDoneEvent{}
		return json.Unmarshal(data, e.FunctionCallArgumentsDone)
	case "response.file_search_call.in_progress":
		e.FileSearchCallInProgress = &FileSearchCallInProgressEvent{}
		return json.Unmarshal(data, e.FileSearchCallInProgress)
	case "response.file_search_call.searching":
		e.FileSearchCallSearching = &FileSearchCallSearchingEvent{}
		return json.Unmarshal(data, e.FileSearchCallSearching)
	case "response.file_search_call.completed":
		e.FileSearchCallCompleted = &FileSearchCallCompletedEvent{}
		return json.Unmarshal(data, e.FileSearchCallCompleted)
	case "response.web_search_call.in_progress":
		e.WebSearchCallInProgress = &WebSearchCallInProgressEvent{}
		return json.Unmarshal(data, e.WebSearchCallInProgress)
	case "response.web_search_call.searching":
		e.WebSearchCallSearching = &WebSearchCallSearchingEvent{}
		return json.Unmarshal(data, e.WebSearchCallSearching)
	case "response.web_search_call.completed":
		e.WebSearchCallCompleted = &WebSearchCallCompletedEvent{}
		return json.Unmarshal(data, e.WebSearchCallCompleted)
	case "response.reasoning_summary_part.added":
		e.ReasoningSummaryPartAdded = &ReasoningSummaryPartAddedEvent{}
		return json.Unmarshal(data, e.ReasoningSummaryPartAdded)
	case "response.reasoning_summary_part.done":
		e.ReasoningSummaryPartDone = &ReasoningSummaryPartDoneEvent{}
		return json.Unmarshal(data, e.ReasoningSummaryPartDone)
	case "response.reasoning_summary_text.delta":
		e.ReasoningSummaryTextDelta = &ReasoningSummaryTextDeltaEvent{}
		return json.Unmarshal(data, e.ReasoningSummaryTextDelta)
	case "response.reasoning_summary_text.done":
		e.ReasoningSummaryTextDone = &ReasoningSummaryTextDoneEvent{}
		return json.Unmarshal(data, e.ReasoningSummaryTextDone)
	case "response.image_generation_call.in_progress":
		e.ImageGenerationCallInProgress = &ImageGenerationCallInProgressEvent{}
		return json.Unmarshal(data, e.ImageGenerationCallInProgress)
	case "response.image_generation_call.generating":
		e.ImageGenerationCallGenerating = &ImageGenerationCallGeneratingEvent{}
		return json.Unmarshal(data, e.ImageGenerationCallGenerating)
	case "response.image_generation_call.partial_image":
		e.ImageGenerationCallPartialImage = &ImageGenerationCallPartialImageEvent{}
		return json.Unmarshal(data, e.ImageGenerationCallPartialImage)
	case "response.image_generation_call.completed":
		e.ImageGenerationCallCompleted = &ImageGenerationCallCompletedEvent{}
		return json.Unmarshal(data, e.ImageGenerationCallCompleted)
	case "error":
		e.Error = &ErrorEvent{}
		return json.Unmarshal(data, e.Error)
	default:
		return fmt.Errorf("unknown StreamEvent type: %s", temp.Type)
	}
}

// DecodeStreamEvent decodes one event record from its JSON wire form.
// Unknown event names fail decode; a silently dropped event would corrupt
// any accumulator consuming the stream.
func DecodeStreamEvent(data []byte) (*StreamEvent, error) {
	var e StreamEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, NewDecodeError("stream event", err)
	}
	return &e, nil
}
