package responses

import (
	"encoding/json"
	"testing"
)

func TestResponseFormatRoundTrip(t *testing.T) {
	schemaFormat, err := NewJSONSchemaFormat("weather", map[string]any{"type": "object"})
	if err != nil {
		t.Fatalf("NewJSONSchemaFormat returned error: %v", err)
	}

	formats := []ResponseFormat{
		NewTextFormat(),
		schemaFormat,
		NewJSONObjectFormat(),
	}

	for _, format := range formats {
		data, err := json.Marshal(format)
		if err != nil {
			t.Fatalf("marshal %s returned error: %v", format.Type(), err)
		}

		var decoded ResponseFormat
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %s returned error: %v", format.Type(), err)
		}
		if decoded.Type() != format.Type() {
			t.Fatalf("round trip changed type %q to %q", format.Type(), decoded.Type())
		}
	}
}

func TestNewJSONSchemaFormatRequiresName(t *testing.T) {
	if _, err := NewJSONSchemaFormat("", nil); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestResponseFormatUnknownType(t *testing.T) {
	var format ResponseFormat
	if err := json.Unmarshal([]byte(`{"type":"yaml"}`), &format); err == nil {
		t.Fatal("expected error for unknown format type")
	}
}
