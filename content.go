package responses

import (
	"encoding/json"
	"fmt"
)

// A text input to the model.
type TextContent struct {
	// The text input to the model.
	Text string `json:"text"`
}

// An image input to the model, referenced by file ID or URL.
type ImageContent struct {
	// The detail level of the image to be sent to the model. One of `high`,
	// `low`, or `auto`. Defaults to `auto`.
	Detail ImageDetail `json:"detail"`

	// The ID of the file to be sent to the model.
	FileID *string `json:"file_id,omitempty"`

	// The URL of the image to be sent to the model. A fully qualified URL or
	// base64 encoded image in a data URL.
	ImageURL *string `json:"image_url,omitempty"`
}

// A file input to the model.
type FileContent struct {
	// The content of the file to be sent to the model.
	FileData *string `json:"file_data,omitempty"`

	// The ID of the file to be sent to the model.
	FileID *string `json:"file_id,omitempty"`

	// The name of the file to be sent to the model.
	Filename *string `json:"filename,omitempty"`
}

// Content is a single piece of multi-modal message input: text, image,
// or file. Exactly one variant is set.
type Content struct {
	*TextContent  `json:"-"`
	*ImageContent `json:"-"`
	*FileContent  `json:"-"`
}

func NewTextContent(text string) Content {
	return Content{TextContent: &TextContent{Text: text}}
}

// NewImageContent creates an image content from a URL (or base64 data URL)
// with detail `auto`.
func NewImageContent(imageURL string) Content {
	return Content{ImageContent: &ImageContent{Detail: ImageDetailAuto, ImageURL: &imageURL}}
}

func NewImageContentFromFileID(fileID string) Content {
	return Content{ImageContent: &ImageContent{Detail: ImageDetailAuto, FileID: &fileID}}
}

// WithImageDetail returns a copy of the image content with the given
// detail level. Fails when the receiver is not an image or the detail
// string is outside the vocabulary.
func (c Content) WithImageDetail(detail string) (Content, error) {
	img, err := c.AsImage()
	if err != nil {
		return Content{}, err
	}
	d, err := ParseImageDetail(detail)
	if err != nil {
		return Content{}, err
	}
	next := *img
	next.Detail = d
	return Content{ImageContent: &next}, nil
}

func NewFileContent(fileID string) Content {
	return Content{FileContent: &FileContent{FileID: &fileID}}
}

// Type returns the wire discriminant of the set variant, or "" when empty.
func (c Content) Type() string {
	switch {
	case c.TextContent != nil:
		return "input_text"
	case c.ImageContent != nil:
		return "input_image"
	case c.FileContent != nil:
		return "input_file"
	}
	return ""
}

// AsText returns the text variant, or a wrong-variant error.
func (c Content) AsText() (*TextContent, error) {
	if c.TextContent == nil {
		return nil, NewWrongVariantError("Content", "input_text", c.Type())
	}
	return c.TextContent, nil
}

func (c Content) AsImage() (*ImageContent, error) {
	if c.ImageContent == nil {
		return nil, NewWrongVariantError("Content", "input_image", c.Type())
	}
	return c.ImageContent, nil
}

func (c Content) AsFile() (*FileContent, error) {
	if c.FileContent == nil {
		return nil, NewWrongVariantError("Content", "input_file", c.Type())
	}
	return c.FileContent, nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.TextContent != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*TextContent
		}{
			Type:        "input_text",
			TextContent: c.TextContent,
		})
	}
	if c.ImageContent != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ImageContent
		}{
			Type:         "input_image",
			ImageContent: c.ImageContent,
		})
	}
	if c.FileContent != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FileContent
		}{
			Type:        "input_file",
			FileContent: c.FileContent,
		})
	}
	return nil, fmt.Errorf("Content has no content")
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "input_text":
		var t TextContent
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		c.TextContent = &t
	case "input_image":
		var i ImageContent
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i.Detail == "" {
			i.Detail = ImageDetailAuto
		} else if _, err := ParseImageDetail(string(i.Detail)); err != nil {
			return err
		}
		c.ImageContent = &i
	case "input_file":
		var f FileContent
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		c.FileContent = &f
	default:
		return fmt.Errorf("unknown Content type: %s", temp.Type)
	}

	return nil
}

// A citation to a file.
type FileCitationAnnotation struct {
	// The ID of the file.
	FileID string `json:"file_id"`

	// The index of the file in the list of files.
	Index int `json:"index"`
}

// A citation for a web resource used to generate a model response.
type URLCitationAnnotation struct {
	// The index of the last character of the URL citation in the message.
	EndIndex int `json:"end_index"`

	// The index of the first character of the URL citation in the message.
	StartIndex int `json:"start_index"`

	// The title of the web resource.
	Title string `json:"title"`

	// The URL of the web resource.
	URL string `json:"url"`
}

// A path to a file.
type FilePathAnnotation struct {
	// The ID of the file.
	FileID string `json:"file_id"`

	// The index of the file in the list of files.
	Index int `json:"index"`
}

// Annotation is a citation attached to output text.
type Annotation struct {
	*FileCitationAnnotation `json:"-"`
	*URLCitationAnnotation  `json:"-"`
	*FilePathAnnotation     `json:"-"`
}

func (a Annotation) Type() string {
	switch {
	case a.FileCitationAnnotation != nil:
		return "file_citation"
	case a.URLCitationAnnotation != nil:
		return "url_citation"
	case a.FilePathAnnotation != nil:
		return "file_path"
	}
	return ""
}

func (a Annotation) MarshalJSON() ([]byte, error) {
	if a.FileCitationAnnotation != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FileCitationAnnotation
		}{
			Type:                   "file_citation",
			FileCitationAnnotation: a.FileCitationAnnotation,
		})
	}
	if a.URLCitationAnnotation != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*URLCitationAnnotation
		}{
			Type:                  "url_citation",
			URLCitationAnnotation: a.URLCitationAnnotation,
		})
	}
	if a.FilePathAnnotation != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FilePathAnnotation
		}{
			Type:               "file_path",
			FilePathAnnotation: a.FilePathAnnotation,
		})
	}
	return nil, fmt.Errorf("Annotation has no content")
}

func (a *Annotation) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "file_citation":
		var f FileCitationAnnotation
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		a.FileCitationAnnotation = &f
	case "url_citation":
		var u URLCitationAnnotation
		if err := json.Unmarshal(data, &u); err != nil {
			return err
		}
		a.URLCitationAnnotation = &u
	case "file_path":
		var f FilePathAnnotation
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		a.FilePathAnnotation = &f
	default:
		return fmt.Errorf("unknown Annotation type: %s", temp.Type)
	}

	return nil
}

// A text output from the model.
type OutputText struct {
	// The annotations of the text output.
	Annotations []Annotation `json:"annotations"`

	// The text output from the model.
	Text string `json:"text"`
}

// A refusal from the model.
type Refusal struct {
	// The refusal explanation from the model.
	Refusal string `json:"refusal"`
}

// OutputContent is a single piece of assistant output: text with
// annotations, or a refusal.
type OutputContent struct {
	*OutputText `json:"-"`
	*Refusal    `json:"-"`
}

func NewOutputTextContent(text string) OutputContent {
	return OutputContent{OutputText: &OutputText{Annotations: []Annotation{}, Text: text}}
}

func NewRefusalContent(refusal string) OutputContent {
	return OutputContent{Refusal: &Refusal{Refusal: refusal}}
}

func (c OutputContent) Type() string {
	switch {
	case c.OutputText != nil:
		return "output_text"
	case c.Refusal != nil:
		return "refusal"
	}
	return ""
}

func (c OutputContent) AsOutputText() (*OutputText, error) {
	if c.OutputText == nil {
		return nil, NewWrongVariantError("OutputContent", "output_text", c.Type())
	}
	return c.OutputText, nil
}

func (c OutputContent) AsRefusal() (*Refusal, error) {
	if c.Refusal == nil {
		return nil, NewWrongVariantError("OutputContent", "refusal", c.Type())
	}
	return c.Refusal, nil
}

func (c OutputContent) MarshalJSON() ([]byte, error) {
	if c.OutputText != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*OutputText
		}{
			Type:       "output_text",
			OutputText: c.OutputText,
		})
	}
	if c.Refusal != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*Refusal
		}{
			Type:    "refusal",
			Refusal: c.Refusal,
		})
	}
	return nil, fmt.Errorf("OutputContent has no content")
}

func (c *OutputContent) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "output_text":
		var t OutputText
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		c.OutputText = &t
	case "refusal":
		var r Refusal
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		c.Refusal = &r
	default:
		return fmt.Errorf("unknown OutputContent type: %s", temp.Type)
	}

	return nil
}
