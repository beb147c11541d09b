package responses

import (
	"encoding/json"
	"fmt"
)

// Default response format. Used to generate text responses.
type TextFormat struct{}

// JSON Schema response format. Used to generate structured JSON responses.
type JSONSchemaFormat struct {
	// The name of the response format.
	Name string `json:"name"`

	// The schema for the response format, described as a JSON Schema object.
	Schema any `json:"schema"`

	// A description of what the response format is for, used by the model to
	// determine how to respond in the format.
	Description *string `json:"description,omitempty"`

	// Whether to enable strict schema adherence when generating the output.
	Strict *bool `json:"strict,omitempty"`
}

// JSON object response format. An older method of generating JSON
// responses. Using `json_schema` is recommended for models that support
// it.
type JSONObjectFormat struct{}

// ResponseFormat specifies the format the model must output, tagged by
// `type`.
type ResponseFormat struct {
	*TextFormat       `json:"-"`
	*JSONSchemaFormat `json:"-"`
	*JSONObjectFormat `json:"-"`
}

func NewTextFormat() ResponseFormat {
	return ResponseFormat{TextFormat: &TextFormat{}}
}

func NewJSONSchemaFormat(name string, schema any) (ResponseFormat, error) {
	if name == "" {
		return ResponseFormat{}, NewInvalidInputError("name", "must not be empty")
	}
	return ResponseFormat{JSONSchemaFormat: &JSONSchemaFormat{Name: name, Schema: schema}}, nil
}

func NewJSONObjectFormat() ResponseFormat {
	return ResponseFormat{JSONObjectFormat: &JSONObjectFormat{}}
}

func (r ResponseFormat) Type() string {
	switch {
	case r.TextFormat != nil:
		return "text"
	case r.JSONSchemaFormat != nil:
		return "json_schema"
	case r.JSONObjectFormat != nil:
		return "json_object"
	}
	return ""
}

func (r ResponseFormat) AsText() (*TextFormat, error) {
	if r.TextFormat == nil {
		return nil, NewWrongVariantError("ResponseFormat", "text", r.Type())
	}
	return r.TextFormat, nil
}

func (r ResponseFormat) AsJSONSchema() (*JSONSchemaFormat, error) {
	if r.JSONSchemaFormat == nil {
		return nil, NewWrongVariantError("ResponseFormat", "json_schema", r.Type())
	}
	return r.JSONSchemaFormat, nil
}

func (r ResponseFormat) AsJSONObject() (*JSONObjectFormat, error) {
	if r.JSONObjectFormat == nil {
		return nil, NewWrongVariantError("ResponseFormat", "json_object", r.Type())
	}
	return r.JSONObjectFormat, nil
}

func (r ResponseFormat) MarshalJSON() ([]byte, error) {
	if r.TextFormat != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "text"})
	}
	if r.JSONSchemaFormat != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*JSONSchemaFormat
		}{
			Type:             "json_schema",
			JSONSchemaFormat: r.JSONSchemaFormat,
		})
	}
	if r.JSONObjectFormat != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "json_object"})
	}
	return nil, fmt.Errorf("ResponseFormat has no content")
}

func (r *ResponseFormat) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "text":
		r.TextFormat = &TextFormat{}
	case "json_schema":
		var j JSONSchemaFormat
		if err := json.Unmarshal(data, &j); err != nil {
			return err
		}
		r.JSONSchemaFormat = &j
	case "json_object":
		r.JSONObjectFormat = &JSONObjectFormat{}
	default:
		return fmt.Errorf("unknown ResponseFormat type: %s", temp.Type)
	}

	return nil
}

// TextConfig holds configuration options for a text response from the
// model, plain text or structured JSON data.
type TextConfig struct {
	// An object specifying the format that the model must output.
	Format *ResponseFormat `json:"format,omitempty"`
}
