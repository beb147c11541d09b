package responses

import (
	"encoding/json"
	"fmt"
)

// A click action.
type ClickAction struct {
	// The mouse button pressed during the click.
	Button ComputerButton `json:"button"`

	// The x-coordinate where the click occurred.
	X int `json:"x"`

	// The y-coordinate where the click occurred.
	Y int `json:"y"`
}

// A double click action.
type DoubleClickAction struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// An x/y coordinate pair.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// A drag action along a path of coordinates.
type DragAction struct {
	// The path of the drag action, an array of coordinates.
	Path []Coordinate `json:"path"`
}

// A collection of keypresses the model would like to perform.
type KeyPressAction struct {
	// The combination of keys the model is requesting to be pressed.
	Keys []string `json:"keys"`
}

// A mouse move action.
type MoveAction struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// A screenshot action.
type ScreenshotAction struct{}

// A scroll action.
type ScrollAction struct {
	// The horizontal scroll distance.
	ScrollX int `json:"scroll_x"`

	// The vertical scroll distance.
	ScrollY int `json:"scroll_y"`

	X int `json:"x"`
	Y int `json:"y"`
}

// An action to type in text.
type TypeAction struct {
	// The text to type.
	Text string `json:"text"`
}

// A wait action.
type WaitAction struct{}

// ComputerAction is one action of a computer tool call, tagged by `type`.
type ComputerAction struct {
	*ClickAction       `json:"-"`
	*DoubleClickAction `json:"-"`
	*DragAction        `json:"-"`
	*KeyPressAction    `json:"-"`
	*MoveAction        `json:"-"`
	*ScreenshotAction  `json:"-"`
	*ScrollAction      `json:"-"`
	*TypeAction        `json:"-"`
	*WaitAction        `json:"-"`
}

// NewClickAction creates a click action, validating the button name.
func NewClickAction(button string, x, y int) (ComputerAction, error) {
	b, err := ParseComputerButton(button)
	if err != nil {
		return ComputerAction{}, err
	}
	return ComputerAction{ClickAction: &ClickAction{Button: b, X: x, Y: y}}, nil
}

func (a ComputerAction) Type() string {
	switch {
	case a.ClickAction != nil:
		return "click"
	case a.DoubleClickAction != nil:
		return "double_click"
	case a.DragAction != nil:
		return "drag"
	case a.KeyPressAction != nil:
		return "keypress"
	case a.MoveAction != nil:
		return "move"
	case a.ScreenshotAction != nil:
		return "screenshot"
	case a.ScrollAction != nil:
		return "scroll"
	case a.TypeAction != nil:
		return "type"
	case a.WaitAction != nil:
		return "wait"
	}
	return ""
}

func (a ComputerAction) MarshalJSON() ([]byte, error) {
	if a.ClickAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ClickAction
		}{
			Type:        "click",
			ClickAction: a.ClickAction,
		})
	}
	if a.DoubleClickAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*DoubleClickAction
		}{
			Type:              "double_click",
			DoubleClickAction: a.DoubleClickAction,
		})
	}
	if a.DragAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*DragAction
		}{
			Type:       "drag",
			DragAction: a.DragAction,
		})
	}
	if a.KeyPressAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*KeyPressAction
		}{
			Type:           "keypress",
			KeyPressAction: a.KeyPressAction,
		})
	}
	if a.MoveAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*MoveAction
		}{
			Type:       "move",
			MoveAction: a.MoveAction,
		})
	}
	if a.ScreenshotAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "screenshot"})
	}
	if a.ScrollAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ScrollAction
		}{
			Type:         "scroll",
			ScrollAction: a.ScrollAction,
		})
	}
	if a.TypeAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*TypeAction
		}{
			Type:       "type",
			TypeAction: a.TypeAction,
		})
	}
	if a.WaitAction != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "wait"})
	}
	return nil, fmt.Errorf("ComputerAction has no content")
}

func (a *ComputerAction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "click":
		var c ClickAction
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		if _, err := ParseComputerButton(string(c.Button)); err != nil {
			return err
		}
		a.ClickAction = &c
	case "double_click":
		var d DoubleClickAction
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		a.DoubleClickAction = &d
	case "drag":
		var d DragAction
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		a.DragAction = &d
	case "keypress":
		var k KeyPressAction
		if err := json.Unmarshal(data, &k); err != nil {
			return err
		}
		a.KeyPressAction = &k
	case "move":
		var m MoveAction
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		a.MoveAction = &m
	case "screenshot":
		a.ScreenshotAction = &ScreenshotAction{}
	case "scroll":
		var s ScrollAction
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.ScrollAction = &s
	case "type":
		var t TypeAction
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		a.TypeAction = &t
	case "wait":
		a.WaitAction = &WaitAction{}
	default:
		return fmt.Errorf("unknown ComputerAction type: %s", temp.Type)
	}

	return nil
}

// A safety check for a computer call. Pending checks are reported by the
// model on a `computer_call`; the caller acknowledges them on the paired
// `computer_call_output`. The two lists are correlated by the caller.
type SafetyCheck struct {
	// The ID of the safety check.
	ID string `json:"id"`

	// The type of the safety check.
	Code *string `json:"code,omitempty"`

	// Details about the safety check.
	Message *string `json:"message,omitempty"`
}

// A message input to the model with a role indicating instruction
// following hierarchy.
type InputMessageItem struct {
	// A list of one or many input items to the model, containing different
	// content types.
	Content []Content `json:"content"`

	// The role of the message input. One of `user`, `system`, or
	// `developer`. Assistant turns are represented as output messages,
	// never input messages.
	Role Role `json:"role"`

	// The status of the item. Populated when items are returned via API.
	Status *Status `json:"status,omitempty"`
}

// An output message from the model.
type OutputMessageItem struct {
	// The content of the output message.
	Content []OutputContent `json:"content"`

	// The unique ID of the output message.
	ID string `json:"id"`

	// The role of the output message. Always `assistant`.
	Role Role `json:"role"`

	// The status of the message input.
	Status Status `json:"status"`
}

// A single result of a file search.
type FileSearchResult struct {
	// Set of key-value pairs attached to the file.
	Attributes map[string]any `json:"attributes,omitempty"`

	// The unique ID of the file.
	FileID *string `json:"file_id,omitempty"`

	// The name of the file.
	Filename *string `json:"filename,omitempty"`

	// The relevance score of the file, from 0 to 1.
	Score *float64 `json:"score,omitempty"`

	// The text that was retrieved from the file.
	Text *string `json:"text,omitempty"`
}

// The results of a file search tool call.
type FileSearchToolCallItem struct {
	// The unique ID of the file search tool call.
	ID string `json:"id"`

	// The queries used to search for files.
	Queries []string `json:"queries"`

	// The status of the file search tool call.
	Status string `json:"status"`

	// The results of the file search tool call.
	Results []FileSearchResult `json:"results,omitempty"`
}

// A tool call to a computer use tool.
type ComputerToolCallItem struct {
	// The action of the computer call.
	Action ComputerAction `json:"action"`

	// An identifier used when responding to the tool call with output.
	CallID string `json:"call_id"`

	// The unique ID of the computer call.
	ID string `json:"id"`

	// The pending safety checks for the computer call.
	PendingSafetyChecks []SafetyCheck `json:"pending_safety_checks"`

	// The status of the item.
	Status Status `json:"status"`
}

// A computer screenshot image used with the computer use tool.
type ComputerScreenshot struct {
	// Always `computer_screenshot`.
	Type string `json:"type"`

	// The identifier of an uploaded file that contains the screenshot.
	FileID *string `json:"file_id,omitempty"`

	// The URL of the screenshot image.
	ImageURL *string `json:"image_url,omitempty"`
}

// The output of a computer tool call.
type ComputerToolCallOutputItem struct {
	// The ID of the computer tool call that produced the output.
	CallID string `json:"call_id"`

	// A computer screenshot image used with the computer use tool.
	Output ComputerScreenshot `json:"output"`

	// The safety checks reported by the API that have been acknowledged by
	// the developer.
	AcknowledgedSafetyChecks []SafetyCheck `json:"acknowledged_safety_checks,omitempty"`

	// The ID of the computer tool call output.
	ID *string `json:"id,omitempty"`

	// The status of the item.
	Status *Status `json:"status,omitempty"`
}

// The results of a web search tool call.
type WebSearchToolCallItem struct {
	// The unique ID of the web search tool call.
	ID string `json:"id"`

	// The status of the web search tool call.
	Status string `json:"status"`
}

// A tool call to run a function.
type FunctionToolCallItem struct {
	// A JSON string of the arguments to pass to the function.
	Arguments string `json:"arguments"`

	// An identifier used when responding to the tool call with output.
	CallID string `json:"call_id"`

	// The name of the function to run.
	Name string `json:"name"`

	// The unique ID of the function tool call.
	ID *string `json:"id,omitempty"`

	// The status of the item.
	Status *Status `json:"status,omitempty"`
}

// The output of a function tool call.
type FunctionToolCallOutputItem struct {
	// The unique ID of the function tool call generated by the model.
	CallID string `json:"call_id"`

	// A JSON string of the output of the function tool call.
	Output string `json:"output"`

	// The unique ID of the function tool call output. Populated when this
	// item is returned via API.
	ID *string `json:"id,omitempty"`

	// The status of the item.
	Status *Status `json:"status,omitempty"`
}

// A short summary of the reasoning used by the model.
type SummaryText struct {
	// A summary of the reasoning output from the model so far.
	Text string `json:"text"`

	// Always `summary_text`.
	Type string `json:"type"`
}

func NewSummaryText(text string) SummaryText {
	return SummaryText{Text: text, Type: "summary_text"}
}

// A description of the chain of thought used by a reasoning model while
// generating a response.
type ReasoningItem struct {
	// The unique identifier of the reasoning content.
	ID string `json:"id"`

	// Reasoning summary content.
	Summary []SummaryText `json:"summary"`

	// The encrypted content of the reasoning item. Opaque to this model;
	// populated when a response is generated with
	// `reasoning.encrypted_content` in the `include` parameter.
	EncryptedContent *string `json:"encrypted_content,omitempty"`

	// The status of the item.
	Status *Status `json:"status,omitempty"`
}

// An image generation request made by the model.
type ImageGenerationCallItem struct {
	// The unique ID of the image generation call.
	ID string `json:"id"`

	// The generated image encoded in base64.
	Result *string `json:"result,omitempty"`

	// The status of the image generation call.
	Status string `json:"status"`
}

// An internal identifier for an item to reference.
type ItemReference struct {
	// The ID of the item to reference.
	ID string `json:"id"`
}

// Item is one entry in a structured conversation or trace, tagged by
// `type`. Records tagged `message` are disambiguated by role: assistant
// messages decode as output messages, everything else as input messages.
type Item struct {
	*InputMessageItem           `json:"-"`
	*OutputMessageItem          `json:"-"`
	*FileSearchToolCallItem     `json:"-"`
	*ComputerToolCallItem       `json:"-"`
	*ComputerToolCallOutputItem `json:"-"`
	*WebSearchToolCallItem      `json:"-"`
	*FunctionToolCallItem       `json:"-"`
	*FunctionToolCallOutputItem `json:"-"`
	*ReasoningItem              `json:"-"`
	*ItemReference              `json:"-"`
}

// NewInputMessageItem creates an input message. The role must be one of
// `user`, `system`, or `developer`; assistant turns use output messages.
func NewInputMessageItem(role string, content []Content) (Item, error) {
	r, err := ParseRole(role)
	if err != nil {
		return Item{}, err
	}
	if r == RoleAssistant {
		return Item{}, NewInvalidInputError("role", `"assistant" is not compatible with an input message`)
	}
	return Item{InputMessageItem: &InputMessageItem{Content: content, Role: r}}, nil
}

// NewFunctionToolCallOutputItem creates the output record for a function
// tool call.
func NewFunctionToolCallOutputItem(callID, output string) (Item, error) {
	if callID == "" {
		return Item{}, NewInvalidInputError("call_id", "must not be empty")
	}
	return Item{FunctionToolCallOutputItem: &FunctionToolCallOutputItem{CallID: callID, Output: output}}, nil
}

// NewComputerToolCallOutputItem creates the output record for a computer
// tool call, carrying the screenshot taken after the action.
func NewComputerToolCallOutputItem(callID string, output ComputerScreenshot) (Item, error) {
	if callID == "" {
		return Item{}, NewInvalidInputError("call_id", "must not be empty")
	}
	output.Type = "computer_screenshot"
	return Item{ComputerToolCallOutputItem: &ComputerToolCallOutputItem{CallID: callID, Output: output}}, nil
}

func NewItemReference(id string) (Item, error) {
	if id == "" {
		return Item{}, NewInvalidInputError("id", "must not be empty")
	}
	return Item{ItemReference: &ItemReference{ID: id}}, nil
}

// Type returns the wire discriminant of the set variant, or "" when empty.
func (i Item) Type() string {
	switch {
	case i.InputMessageItem != nil, i.OutputMessageItem != nil:
		return "message"
	case i.FileSearchToolCallItem != nil:
		return "file_search_call"
	case i.ComputerToolCallItem != nil:
		return "computer_call"
	case i.ComputerToolCallOutputItem != nil:
		return "computer_call_output"
	case i.WebSearchToolCallItem != nil:
		return "web_search_call"
	case i.FunctionToolCallItem != nil:
		return "function_call"
	case i.FunctionToolCallOutputItem != nil:
		return "function_call_output"
	case i.ReasoningItem != nil:
		return "reasoning"
	case i.ItemReference != nil:
		return "item_reference"
	}
	return ""
}

func (i Item) AsInputMessage() (*InputMessageItem, error) {
	if i.InputMessageItem == nil {
		return nil, NewWrongVariantError("Item", "message", i.Type())
	}
	return i.InputMessageItem, nil
}

func (i Item) AsOutputMessage() (*OutputMessageItem, error) {
	if i.OutputMessageItem == nil {
		return nil, NewWrongVariantError("Item", "message", i.Type())
	}
	return i.OutputMessageItem, nil
}

func (i Item) AsFunctionToolCall() (*FunctionToolCallItem, error) {
	if i.FunctionToolCallItem == nil {
		return nil, NewWrongVariantError("Item", "function_call", i.Type())
	}
	return i.FunctionToolCallItem, nil
}

func (i Item) AsReasoning() (*ReasoningItem, error) {
	if i.ReasoningItem == nil {
		return nil, NewWrongVariantError("Item", "reasoning", i.Type())
	}
	return i.ReasoningItem, nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	if i.InputMessageItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*InputMessageItem
		}{
			Type:             "message",
			InputMessageItem: i.InputMessageItem,
		})
	}
	if i.OutputMessageItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*OutputMessageItem
		}{
			Type:              "message",
			OutputMessageItem: i.OutputMessageItem,
		})
	}
	if i.FileSearchToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FileSearchToolCallItem
		}{
			Type:                   "file_search_call",
			FileSearchToolCallItem: i.FileSearchToolCallItem,
		})
	}
	if i.ComputerToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ComputerToolCallItem
		}{
			Type:                 "computer_call",
			ComputerToolCallItem: i.ComputerToolCallItem,
		})
	}
	if i.ComputerToolCallOutputItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ComputerToolCallOutputItem
		}{
			Type:                       "computer_call_output",
			ComputerToolCallOutputItem: i.ComputerToolCallOutputItem,
		})
	}
	if i.WebSearchToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*WebSearchToolCallItem
		}{
			Type:                  "web_search_call",
			WebSearchToolCallItem: i.WebSearchToolCallItem,
		})
	}
	if i.FunctionToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FunctionToolCallItem
		}{
			Type:                 "function_call",
			FunctionToolCallItem: i.FunctionToolCallItem,
		})
	}
	if i.FunctionToolCallOutputItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FunctionToolCallOutputItem
		}{
			Type:                       "function_call_output",
			FunctionToolCallOutputItem: i.FunctionToolCallOutputItem,
		})
	}
	if i.ReasoningItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ReasoningItem
		}{
			Type:          "reasoning",
			ReasoningItem: i.ReasoningItem,
		})
	}
	if i.ItemReference != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ItemReference
		}{
			Type:          "item_reference",
			ItemReference: i.ItemReference,
		})
	}
	return nil, fmt.Errorf("Item has no content")
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
		Role string `json:"role"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "message":
		if temp.Role == string(RoleAssistant) {
			var o OutputMessageItem
			if err := json.Unmarshal(data, &o); err != nil {
				return err
			}
			i.OutputMessageItem = &o
		} else {
			var m InputMessageItem
			if err := json.Unmarshal(data, &m); err != nil {
				return err
			}
			if _, err := ParseRole(string(m.Role)); err != nil {
				return err
			}
			i.InputMessageItem = &m
		}
	case "file_search_call":
		var f FileSearchToolCallItem
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		i.FileSearchToolCallItem = &f
	case "computer_call":
		var c ComputerToolCallItem
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		i.ComputerToolCallItem = &c
	case "computer_call_output":
		var c ComputerToolCallOutputItem
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		i.ComputerToolCallOutputItem = &c
	case "web_search_call":
		var w WebSearchToolCallItem
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		i.WebSearchToolCallItem = &w
	case "function_call":
		var f FunctionToolCallItem
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		i.FunctionToolCallItem = &f
	case "function_call_output":
		var f FunctionToolCallOutputItem
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		i.FunctionToolCallOutputItem = &f
	case "reasoning":
		var r ReasoningItem
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		i.ReasoningItem = &r
	case "item_reference":
		var r ItemReference
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		i.ItemReference = &r
	default:
		return fmt.Errorf("unknown Item type: %s", temp.Type)
	}

	return nil
}

// OutputItem is one entry of a response's output list, tagged by `type`.
type OutputItem struct {
	*OutputMessageItem       `json:"-"`
	*FileSearchToolCallItem  `json:"-"`
	*ComputerToolCallItem    `json:"-"`
	*WebSearchToolCallItem   `json:"-"`
	*FunctionToolCallItem    `json:"-"`
	*ImageGenerationCallItem `json:"-"`
	*ReasoningItem           `json:"-"`
}

func (o OutputItem) Type() string {
	switch {
	case o.OutputMessageItem != nil:
		return "message"
	case o.FileSearchToolCallItem != nil:
		return "file_search_call"
	case o.ComputerToolCallItem != nil:
		return "computer_call"
	case o.WebSearchToolCallItem != nil:
		return "web_search_call"
	case o.FunctionToolCallItem != nil:
		return "function_call"
	case o.ImageGenerationCallItem != nil:
		return "image_generation_call"
	case o.ReasoningItem != nil:
		return "reasoning"
	}
	return ""
}

func (o OutputItem) AsMessage() (*OutputMessageItem, error) {
	if o.OutputMessageItem == nil {
		return nil, NewWrongVariantError("OutputItem", "message", o.Type())
	}
	return o.OutputMessageItem, nil
}

func (o OutputItem) AsFunctionToolCall() (*FunctionToolCallItem, error) {
	if o.FunctionToolCallItem == nil {
		return nil, NewWrongVariantError("OutputItem", "function_call", o.Type())
	}
	return o.FunctionToolCallItem, nil
}

func (o OutputItem) MarshalJSON() ([]byte, error) {
	if o.OutputMessageItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*OutputMessageItem
		}{
			Type:              "message",
			OutputMessageItem: o.OutputMessageItem,
		})
	}
	if o.FileSearchToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FileSearchToolCallItem
		}{
			Type:                   "file_search_call",
			FileSearchToolCallItem: o.FileSearchToolCallItem,
		})
	}
	if o.ComputerToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ComputerToolCallItem
		}{
			Type:                 "computer_call",
			ComputerToolCallItem: o.ComputerToolCallItem,
		})
	}
	if o.WebSearchToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*WebSearchToolCallItem
		}{
			Type:                  "web_search_call",
			WebSearchToolCallItem: o.WebSearchToolCallItem,
		})
	}
	if o.FunctionToolCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FunctionToolCallItem
		}{
			Type:                 "function_call",
			FunctionToolCallItem: o.FunctionToolCallItem,
		})
	}
	if o.ImageGenerationCallItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ImageGenerationCallItem
		}{
			Type:                    "image_generation_call",
			ImageGenerationCallItem: o.ImageGenerationCallItem,
		})
	}
	if o.ReasoningItem != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ReasoningItem
		}{
			Type:          "reasoning",
			ReasoningItem: o.ReasoningItem,
		})
	}
	return nil, fmt.Errorf("OutputItem has no content")
}

func (o *OutputItem) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "message":
		var m OutputMessageItem
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		o.OutputMessageItem = &m
	case "file_search_call":
		var f FileSearchToolCallItem
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		o.FileSearchToolCallItem = &f
	case "computer_call":
		var c ComputerToolCallItem
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		o.ComputerToolCallItem = &c
	case "web_search_call":
		var w WebSearchToolCallItem
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		o.WebSearchToolCallItem = &w
	case "function_call":
		var f FunctionToolCallItem
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		o.FunctionToolCallItem = &f
	case "image_generation_call":
		var i ImageGenerationCallItem
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		o.ImageGenerationCallItem = &i
	case "reasoning":
		var r ReasoningItem
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		o.ReasoningItem = &r
	default:
		return fmt.Errorf("unknown OutputItem type: %s", temp.Type)
	}

	return nil
}
