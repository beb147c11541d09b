package responses

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContentRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{
			name:    "text",
			content: NewTextContent("hello"),
			want:    `{"type":"input_text","text":"hello"}`,
		},
		{
			name:    "image",
			content: NewImageContent("https://example.com/cat.png"),
			want:    `{"type":"input_image","detail":"auto","image_url":"https://example.com/cat.png"}`,
		},
		{
			name:    "file",
			content: NewFileContent("file_123"),
			want:    `{"type":"input_file","file_id":"file_123"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.content)
			if err != nil {
				t.Fatalf("marshal returned error: %v", err)
			}
			if string(data) != tt.want {
				t.Fatalf("marshal = %s, want %s", data, tt.want)
			}

			var decoded Content
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal returned error: %v", err)
			}
			if diff := cmp.Diff(tt.content, decoded); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentUnknownType(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`{"type":"input_video","url":"x"}`), &c)
	if err == nil {
		t.Fatal("expected error for unknown content type")
	}
}

func TestImageDetailDefaultsToAuto(t *testing.T) {
	var c Content
	if err := json.Unmarshal([]byte(`{"type":"input_image","image_url":"u"}`), &c); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if c.ImageContent == nil || c.ImageContent.Detail != ImageDetailAuto {
		t.Fatalf("detail should default to auto, got %+v", c.ImageContent)
	}
}

func TestWithImageDetail(t *testing.T) {
	c, err := NewImageContent("u").WithImageDetail("low")
	if err != nil {
		t.Fatalf("WithImageDetail returned error: %v", err)
	}
	if c.ImageContent.Detail != ImageDetailLow {
		t.Fatalf("detail = %q", c.ImageContent.Detail)
	}

	if _, err := NewImageContent("u").WithImageDetail("ultra"); err == nil {
		t.Fatal("expected error for unknown detail")
	}
	if _, err := NewTextContent("x").WithImageDetail("low"); err == nil {
		t.Fatal("expected wrong variant error on text content")
	}
}

func TestContentDowncast(t *testing.T) {
	text := NewTextContent("hi")
	if _, err := text.AsText(); err != nil {
		t.Fatalf("AsText returned error: %v", err)
	}
	_, err := text.AsImage()
	if err == nil {
		t.Fatal("expected wrong variant error")
	}
	var respErr *Error
	if !errors.As(err, &respErr) || respErr.Kind != WrongVariant {
		t.Fatalf("expected WrongVariant kind, got %v", err)
	}
}

func TestOutputContentRoundTrip(t *testing.T) {
	content := OutputContent{OutputText: &OutputText{
		Annotations: []Annotation{
			{URLCitationAnnotation: &URLCitationAnnotation{
				StartIndex: 0,
				EndIndex:   5,
				Title:      "Example",
				URL:        "https://example.com",
			}},
		},
		Text: "hello",
	}}

	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	var decoded OutputContent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if diff := cmp.Diff(content, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotationUnknownType(t *testing.T) {
	var a Annotation
	if err := json.Unmarshal([]byte(`{"type":"footnote"}`), &a); err == nil {
		t.Fatal("expected error for unknown annotation type")
	}
}
