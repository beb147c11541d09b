package responses

import (
	"encoding/json"
	"fmt"
)

// Input is the top-level input to the model: a bare string (shorthand for
// a single user turn) or a list of items. The zero value serializes as an
// empty item list, never as null, so the field is always present on the
// wire.
type Input struct {
	Text  *string `json:"-"`
	Items []Item  `json:"-"`
}

// NewTextInput creates a string shorthand input.
func NewTextInput(text string) Input {
	return Input{Text: &text}
}

// NewItemsInput creates a structured item list input.
func NewItemsInput(items []Item) Input {
	if items == nil {
		items = []Item{}
	}
	return Input{Items: items}
}

// AddItem appends an item to the list form. Fails when the input is the
// string shorthand.
func (in *Input) AddItem(item Item) error {
	if in.Text != nil {
		return NewInvariantError("cannot append an item to a string input")
	}
	in.Items = append(in.Items, item)
	return nil
}

func (in Input) MarshalJSON() ([]byte, error) {
	if in.Text != nil {
		return json.Marshal(*in.Text)
	}
	if in.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(in.Items)
}

// Candidate order: bare string first, then the item list.
func (in *Input) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		in.Text = &text
		return nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("Input is neither a string nor an item list: %w", err)
	}
	in.Items = items
	return nil
}
