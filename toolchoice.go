package responses

import (
	"encoding/json"
	"fmt"
)

// Forces the model to call a built-in tool.
type HostedToolChoice struct {
	// The type of hosted tool the model should use.
	Type HostedToolType `json:"type"`
}

// Forces the model to call a specific function.
type FunctionToolChoice struct {
	// The name of the function to call.
	Name string `json:"name"`
}

// ToolChoice controls which (if any) tool is called by the model: a mode
// string, a hosted tool, or a specific function. On the wire a mode is a
// bare string while the other variants are objects tagged by `type`; the
// decoder tries the bare string before the object shapes.
type ToolChoice struct {
	Mode     *ToolChoiceMode     `json:"-"`
	Hosted   *HostedToolChoice   `json:"-"`
	Function *FunctionToolChoice `json:"-"`
}

func NewToolChoiceMode(mode string) (ToolChoice, error) {
	m, err := ParseToolChoiceMode(mode)
	if err != nil {
		return ToolChoice{}, err
	}
	return ToolChoice{Mode: &m}, nil
}

func NewHostedToolChoice(toolType string) (ToolChoice, error) {
	t, err := ParseHostedToolType(toolType)
	if err != nil {
		return ToolChoice{}, err
	}
	return ToolChoice{Hosted: &HostedToolChoice{Type: t}}, nil
}

func NewFunctionToolChoice(name string) (ToolChoice, error) {
	if name == "" {
		return ToolChoice{}, NewInvalidInputError("name", "must not be empty")
	}
	return ToolChoice{Function: &FunctionToolChoice{Name: name}}, nil
}

func (t ToolChoice) MarshalJSON() ([]byte, error) {
	if t.Mode != nil {
		return json.Marshal(*t.Mode)
	}
	if t.Hosted != nil {
		return json.Marshal(t.Hosted)
	}
	if t.Function != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FunctionToolChoice
		}{
			Type:               "function",
			FunctionToolChoice: t.Function,
		})
	}
	return nil, fmt.Errorf("ToolChoice has no content")
}

func (t *ToolChoice) UnmarshalJSON(data []byte) error {
	var mode string
	if err := json.Unmarshal(data, &mode); err == nil {
		m, err := ParseToolChoiceMode(mode)
		if err != nil {
			return err
		}
		t.Mode = &m
		return nil
	}

	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	if temp.Type == "function" {
		var f FunctionToolChoice
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		t.Function = &f
		return nil
	}
	hosted, err := ParseHostedToolType(temp.Type)
	if err != nil {
		return fmt.Errorf("unknown ToolChoice type: %s", temp.Type)
	}
	t.Hosted = &HostedToolChoice{Type: hosted}
	return nil
}
