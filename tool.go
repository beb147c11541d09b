package responses

import (
	"encoding/json"
	"fmt"
)

// A comparison node of a file-search filter tree. The operator is carried
// in the `type` field on the wire.
type ComparisonFilter struct {
	// The key to compare against the value.
	Key string `json:"key"`

	// The comparison operator.
	Operator ComparisonOperator `json:"type"`

	// The value to compare against the attribute key; a string, number, or
	// boolean.
	Value any `json:"value"`
}

// A compound node combining multiple filters.
type CompoundFilter struct {
	// The filters to combine.
	Filters []FileSearchFilter `json:"filters"`

	// The combination operator.
	Operator CompoundOperator `json:"type"`
}

// FileSearchFilter is one node of the recursive filter tree attached to a
// file search tool: a comparison leaf or a compound branch.
type FileSearchFilter struct {
	*ComparisonFilter `json:"-"`
	*CompoundFilter   `json:"-"`
}

// NewComparisonFilter builds a comparison leaf, validating the operator.
func NewComparisonFilter(key string, operator string, value any) (FileSearchFilter, error) {
	op, err := ParseComparisonOperator(operator)
	if err != nil {
		return FileSearchFilter{}, err
	}
	if key == "" {
		return FileSearchFilter{}, NewInvalidInputError("key", "must not be empty")
	}
	return FileSearchFilter{ComparisonFilter: &ComparisonFilter{Key: key, Operator: op, Value: value}}, nil
}

// NewCompoundFilter builds a compound branch, validating the operator.
func NewCompoundFilter(filters []FileSearchFilter, operator string) (FileSearchFilter, error) {
	op, err := ParseCompoundOperator(operator)
	if err != nil {
		return FileSearchFilter{}, err
	}
	return FileSearchFilter{CompoundFilter: &CompoundFilter{Filters: filters, Operator: op}}, nil
}

func (f FileSearchFilter) MarshalJSON() ([]byte, error) {
	if f.ComparisonFilter != nil {
		return json.Marshal(f.ComparisonFilter)
	}
	if f.CompoundFilter != nil {
		return json.Marshal(f.CompoundFilter)
	}
	return nil, fmt.Errorf("FileSearchFilter has no content")
}

// Both node shapes carry a `type` field, so the node kind is inferred from
// the operator vocabulary the value belongs to.
func (f *FileSearchFilter) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	if _, err := ParseCompoundOperator(temp.Type); err == nil {
		var c CompoundFilter
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		f.CompoundFilter = &c
		return nil
	}
	if _, err := ParseComparisonOperator(temp.Type); err == nil {
		var c ComparisonFilter
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		f.ComparisonFilter = &c
		return nil
	}
	return fmt.Errorf("unknown FileSearchFilter type: %s", temp.Type)
}

// Ranking options for a file search.
type RankingOptions struct {
	// The ranker to use for the file search.
	Ranker *string `json:"ranker,omitempty"`

	// The score threshold for the file search, a number between 0 and 1.
	// Numbers closer to 1 will attempt to return only the most relevant
	// results, but may return fewer results.
	ScoreThreshold *float64 `json:"score_threshold,omitempty"`
}

// A tool that searches for relevant content from uploaded files.
type FileSearchTool struct {
	// The IDs of the vector stores to search.
	VectorStoreIDs []string `json:"vector_store_ids"`

	// A filter to apply.
	Filters *FileSearchFilter `json:"filters,omitempty"`

	// The maximum number of results to return, between 1 and 50 inclusive.
	MaxNumResults *int `json:"max_num_results,omitempty"`

	// Ranking options for search.
	RankingOptions *RankingOptions `json:"ranking_options,omitempty"`
}

// Defines a function in your own code the model can choose to call.
type FunctionTool struct {
	// The name of the function to call.
	Name string `json:"name"`

	// A JSON schema object describing the parameters of the function.
	Parameters any `json:"parameters"`

	// Whether to enforce strict parameter validation.
	Strict bool `json:"strict"`

	// A description of the function. Used by the model to determine whether
	// or not to call the function.
	Description *string `json:"description,omitempty"`
}

// A tool that controls a virtual computer.
type ComputerUseTool struct {
	// The height of the computer display.
	DisplayHeight float64 `json:"display_height"`

	// The width of the computer display.
	DisplayWidth float64 `json:"display_width"`

	// The type of computer environment to control.
	Environment string `json:"environment"`
}

// WebSearchToolVersion selects which wire spelling a web search tool
// serializes under. Both spellings name the same capability; round-trips
// preserve the spelling they were decoded from.
type WebSearchToolVersion string

const (
	WebSearchToolVersionDefault  WebSearchToolVersion = "web_search_preview"
	WebSearchToolVersion20250311 WebSearchToolVersion = "web_search_preview_2025_03_11"
)

func ParseWebSearchToolVersion(s string) (WebSearchToolVersion, error) {
	switch WebSearchToolVersion(s) {
	case WebSearchToolVersionDefault, WebSearchToolVersion20250311:
		return WebSearchToolVersion(s), nil
	}
	return "", NewUnknownValueError("WebSearchToolVersion", s)
}

// The approximate location of the user for a web search.
type UserLocation struct {
	// The type of location approximation. Always `approximate`.
	Type string `json:"type"`

	// Free text input for the city of the user, e.g. `San Francisco`.
	City *string `json:"city,omitempty"`

	// The two-letter ISO country code of the user, e.g. `US`.
	Country *string `json:"country,omitempty"`

	// Free text input for the region of the user, e.g. `California`.
	Region *string `json:"region,omitempty"`

	// The IANA timezone of the user, e.g. `America/Los_Angeles`.
	Timezone *string `json:"timezone,omitempty"`
}

func NewUserLocation() *UserLocation {
	return &UserLocation{Type: "approximate"}
}

// A tool that searches the web for relevant results to use in a response.
type WebSearchTool struct {
	// Selects the wire spelling of the discriminant. Not serialized as a
	// field of its own; the Tool codec reads it when emitting the tag.
	Version WebSearchToolVersion `json:"-"`

	// High level guidance for the amount of context window space to use for
	// the search.
	SearchContextSize *SearchContextSize `json:"search_context_size,omitempty"`

	// The approximate location of the user.
	UserLocation *UserLocation `json:"user_location,omitempty"`
}

// MCPToolFilter limits MCP tool exposure to the named tools.
type MCPToolFilter struct {
	// The names of the tools in the filter.
	ToolNames []string `json:"tool_names"`
}

// MCPAllowedTools restricts which tools of an MCP server the model can
// use: a flat list of names or a filter object.
type MCPAllowedTools struct {
	Names  []string       `json:"-"`
	Filter *MCPToolFilter `json:"-"`
}

func (a MCPAllowedTools) MarshalJSON() ([]byte, error) {
	if a.Names != nil {
		return json.Marshal(a.Names)
	}
	if a.Filter != nil {
		return json.Marshal(a.Filter)
	}
	return nil, fmt.Errorf("MCPAllowedTools has no content")
}

// Candidate order: bare list first, then the filter object.
func (a *MCPAllowedTools) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		a.Names = names
		return nil
	}
	var filter MCPToolFilter
	if err := json.Unmarshal(data, &filter); err != nil {
		return fmt.Errorf("MCPAllowedTools is neither a name list nor a tool_names filter: %w", err)
	}
	a.Filter = &filter
	return nil
}

// MCPApprovalFilter splits MCP tools into always-approved and
// never-approved groups.
type MCPApprovalFilter struct {
	// Tools that always require approval.
	Always *MCPToolFilter `json:"always,omitempty"`

	// Tools that never require approval.
	Never *MCPToolFilter `json:"never,omitempty"`
}

// MCPRequireApproval specifies which MCP tool calls require human
// approval: the blanket settings `always`/`never`, or a per-group filter.
type MCPRequireApproval struct {
	Setting string             `json:"-"`
	Filter  *MCPApprovalFilter `json:"-"`
}

func (r MCPRequireApproval) MarshalJSON() ([]byte, error) {
	if r.Setting != "" {
		return json.Marshal(r.Setting)
	}
	if r.Filter != nil {
		return json.Marshal(r.Filter)
	}
	return nil, fmt.Errorf("MCPRequireApproval has no content")
}

// Candidate order: bare setting string first, then the filter object.
func (r *MCPRequireApproval) UnmarshalJSON(data []byte) error {
	var setting string
	if err := json.Unmarshal(data, &setting); err == nil {
		if setting != "always" && setting != "never" {
			return NewUnknownValueError("MCPRequireApproval", setting)
		}
		r.Setting = setting
		return nil
	}
	var filter MCPApprovalFilter
	if err := json.Unmarshal(data, &filter); err != nil {
		return fmt.Errorf("MCPRequireApproval is neither a setting nor a filter: %w", err)
	}
	r.Filter = &filter
	return nil
}

// Give the model access to additional tools via remote Model Context
// Protocol (MCP) servers.
type MCPTool struct {
	// A label for this MCP server, used to identify it in tool calls.
	ServerLabel string `json:"server_label"`

	// The URL for the MCP server.
	ServerURL string `json:"server_url"`

	// List of allowed tool names or a filter object.
	AllowedTools *MCPAllowedTools `json:"allowed_tools,omitempty"`

	// Optional HTTP headers to send to the MCP server. Use for
	// authentication or other purposes.
	Headers map[string]string `json:"headers,omitempty"`

	// Specify which of the MCP server's tools require approval.
	RequireApproval *MCPRequireApproval `json:"require_approval,omitempty"`
}

// CodeInterpreterContainer is the container in which code interpreter code
// runs: an existing container ID or an auto container with optional files.
type CodeInterpreterContainer struct {
	ID   string                        `json:"-"`
	Auto *CodeInterpreterContainerAuto `json:"-"`
}

// Configuration for a code interpreter container created automatically.
type CodeInterpreterContainerAuto struct {
	// Always `auto`.
	Type string `json:"type"`

	// An optional list of uploaded files to make available to your code.
	FileIDs []string `json:"file_ids,omitempty"`
}

func (c CodeInterpreterContainer) MarshalJSON() ([]byte, error) {
	if c.ID != "" {
		return json.Marshal(c.ID)
	}
	if c.Auto != nil {
		return json.Marshal(c.Auto)
	}
	return nil, fmt.Errorf("CodeInterpreterContainer has no content")
}

// Candidate order: bare container ID first, then the auto object.
func (c *CodeInterpreterContainer) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		return nil
	}
	var auto CodeInterpreterContainerAuto
	if err := json.Unmarshal(data, &auto); err != nil {
		return fmt.Errorf("CodeInterpreterContainer is neither an ID nor an auto config: %w", err)
	}
	if auto.Type != "auto" {
		return fmt.Errorf("unknown CodeInterpreterContainer type: %s", auto.Type)
	}
	c.Auto = &auto
	return nil
}

// A tool that runs Python code to help generate a response to a prompt.
type CodeInterpreterTool struct {
	// The code interpreter container.
	Container CodeInterpreterContainer `json:"container"`
}

// A tool that generates images.
type ImageGenerationTool struct {
	// Background type for the generated image: `transparent`, `opaque`, or
	// `auto`.
	Background *string `json:"background,omitempty"`

	// The image generation model to use.
	Model *string `json:"model,omitempty"`

	// Moderation level for the generated image.
	Moderation *string `json:"moderation,omitempty"`

	// Compression level for the output image, 0-100.
	OutputCompression *int `json:"output_compression,omitempty"`

	// The output format of the generated image: `png`, `webp`, or `jpeg`.
	OutputFormat *string `json:"output_format,omitempty"`

	// Number of partial images to generate in streaming mode, from 0
	// (default value) to 3.
	PartialImages *int `json:"partial_images,omitempty"`

	// The quality of the generated image.
	Quality *string `json:"quality,omitempty"`

	// The size of the generated image.
	Size *string `json:"size,omitempty"`
}

// A tool that allows the model to execute shell commands in a local
// environment.
type LocalShellTool struct{}

// Tool is a capability descriptor attached to a request. Exactly one
// variant is set; the wire form is tagged by the `type` field.
type Tool struct {
	*FileSearchTool      `json:"-"`
	*FunctionTool        `json:"-"`
	*ComputerUseTool     `json:"-"`
	*WebSearchTool       `json:"-"`
	*MCPTool             `json:"-"`
	*CodeInterpreterTool `json:"-"`
	*ImageGenerationTool `json:"-"`
	*LocalShellTool      `json:"-"`
}

// NewFileSearchTool creates a file search tool over the given vector
// stores. The store list must not be empty.
func NewFileSearchTool(vectorStoreIDs []string) (Tool, error) {
	if len(vectorStoreIDs) == 0 {
		return Tool{}, NewInvalidInputError("vector_store_ids", "must not be empty")
	}
	return Tool{FileSearchTool: &FileSearchTool{VectorStoreIDs: vectorStoreIDs}}, nil
}

// SetMaxNumResults bounds the result count; the bound must be between 1
// and 50 inclusive.
func (t *FileSearchTool) SetMaxNumResults(n int) error {
	if n < 1 || n > 50 {
		return NewInvalidInputError("max_num_results", fmt.Sprintf("must be between 1 and 50, got %d", n))
	}
	t.MaxNumResults = &n
	return nil
}

// NewFunctionTool creates a function tool with strict parameter
// validation enabled.
func NewFunctionTool(name string, parameters any) (Tool, error) {
	if name == "" {
		return Tool{}, NewInvalidInputError("name", "must not be empty")
	}
	return Tool{FunctionTool: &FunctionTool{Name: name, Parameters: parameters, Strict: true}}, nil
}

func NewComputerUseTool(displayWidth, displayHeight float64, environment string) (Tool, error) {
	if displayWidth <= 0 {
		return Tool{}, NewInvalidInputError("display_width", fmt.Sprintf("must be positive, got %v", displayWidth))
	}
	if displayHeight <= 0 {
		return Tool{}, NewInvalidInputError("display_height", fmt.Sprintf("must be positive, got %v", displayHeight))
	}
	if environment == "" {
		return Tool{}, NewInvalidInputError("environment", "must not be empty")
	}
	return Tool{ComputerUseTool: &ComputerUseTool{
		DisplayWidth:  displayWidth,
		DisplayHeight: displayHeight,
		Environment:   environment,
	}}, nil
}

// NewWebSearchTool creates a web search tool under the given wire
// spelling.
func NewWebSearchTool(version string) (Tool, error) {
	v, err := ParseWebSearchToolVersion(version)
	if err != nil {
		return Tool{}, err
	}
	return Tool{WebSearchTool: &WebSearchTool{Version: v}}, nil
}

func NewMCPTool(serverLabel, serverURL string) (Tool, error) {
	if serverLabel == "" {
		return Tool{}, NewInvalidInputError("server_label", "must not be empty")
	}
	if serverURL == "" {
		return Tool{}, NewInvalidInputError("server_url", "must not be empty")
	}
	return Tool{MCPTool: &MCPTool{ServerLabel: serverLabel, ServerURL: serverURL}}, nil
}

func NewCodeInterpreterTool(container CodeInterpreterContainer) (Tool, error) {
	if container.ID == "" && container.Auto == nil {
		return Tool{}, NewInvalidInputError("container", "must be a container ID or an auto config")
	}
	return Tool{CodeInterpreterTool: &CodeInterpreterTool{Container: container}}, nil
}

func NewImageGenerationTool() Tool {
	return Tool{ImageGenerationTool: &ImageGenerationTool{}}
}

// SetPartialImages sets the number of partial images streamed during
// generation. The count must be between 0 and 3 inclusive; out-of-range
// values are rejected, never clamped.
func (t *ImageGenerationTool) SetPartialImages(n int) error {
	if n < 0 || n > 3 {
		return NewInvalidInputError("partial_images", fmt.Sprintf("must be between 0 and 3, got %d", n))
	}
	t.PartialImages = &n
	return nil
}

func NewLocalShellTool() Tool {
	return Tool{LocalShellTool: &LocalShellTool{}}
}

// Type returns the wire discriminant of the set variant, or "" when empty.
// For web search tools this is the spelling selected by the version field.
func (t Tool) Type() string {
	switch {
	case t.FileSearchTool != nil:
		return "file_search"
	case t.FunctionTool != nil:
		return "function"
	case t.ComputerUseTool != nil:
		return "computer_use_preview"
	case t.WebSearchTool != nil:
		if t.WebSearchTool.Version == "" {
			return string(WebSearchToolVersionDefault)
		}
		return string(t.WebSearchTool.Version)
	case t.MCPTool != nil:
		return "mcp"
	case t.CodeInterpreterTool != nil:
		return "code_interpreter"
	case t.ImageGenerationTool != nil:
		return "image_generation"
	case t.LocalShellTool != nil:
		return "local_shell"
	}
	return ""
}

func (t Tool) AsFileSearch() (*FileSearchTool, error) {
	if t.FileSearchTool == nil {
		return nil, NewWrongVariantError("Tool", "file_search", t.Type())
	}
	return t.FileSearchTool, nil
}

func (t Tool) AsFunction() (*FunctionTool, error) {
	if t.FunctionTool == nil {
		return nil, NewWrongVariantError("Tool", "function", t.Type())
	}
	return t.FunctionTool, nil
}

func (t Tool) AsComputerUse() (*ComputerUseTool, error) {
	if t.ComputerUseTool == nil {
		return nil, NewWrongVariantError("Tool", "computer_use_preview", t.Type())
	}
	return t.ComputerUseTool, nil
}

func (t Tool) AsWebSearch() (*WebSearchTool, error) {
	if t.WebSearchTool == nil {
		return nil, NewWrongVariantError("Tool", "web_search_preview", t.Type())
	}
	return t.WebSearchTool, nil
}

func (t Tool) AsMCP() (*MCPTool, error) {
	if t.MCPTool == nil {
		return nil, NewWrongVariantError("Tool", "mcp", t.Type())
	}
	return t.MCPTool, nil
}

func (t Tool) AsCodeInterpreter() (*CodeInterpreterTool, error) {
	if t.CodeInterpreterTool == nil {
		return nil, NewWrongVariantError("Tool", "code_interpreter", t.Type())
	}
	return t.CodeInterpreterTool, nil
}

func (t Tool) AsImageGeneration() (*ImageGenerationTool, error) {
	if t.ImageGenerationTool == nil {
		return nil, NewWrongVariantError("Tool", "image_generation", t.Type())
	}
	return t.ImageGenerationTool, nil
}

func (t Tool) AsLocalShell() (*LocalShellTool, error) {
	if t.LocalShellTool == nil {
		return nil, NewWrongVariantError("Tool", "local_shell", t.Type())
	}
	return t.LocalShellTool, nil
}

func (t Tool) MarshalJSON() ([]byte, error) {
	if t.FileSearchTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FileSearchTool
		}{
			Type:           "file_search",
			FileSearchTool: t.FileSearchTool,
		})
	}
	if t.FunctionTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*FunctionTool
		}{
			Type:         "function",
			FunctionTool: t.FunctionTool,
		})
	}
	if t.ComputerUseTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ComputerUseTool
		}{
			Type:            "computer_use_preview",
			ComputerUseTool: t.ComputerUseTool,
		})
	}
	if t.WebSearchTool != nil {
		version := t.WebSearchTool.Version
		if version == "" {
			version = WebSearchToolVersionDefault
		}
		return json.Marshal(struct {
			Type string `json:"type"`
			*WebSearchTool
		}{
			Type:          string(version),
			WebSearchTool: t.WebSearchTool,
		})
	}
	if t.MCPTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*MCPTool
		}{
			Type:    "mcp",
			MCPTool: t.MCPTool,
		})
	}
	if t.CodeInterpreterTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*CodeInterpreterTool
		}{
			Type:                "code_interpreter",
			CodeInterpreterTool: t.CodeInterpreterTool,
		})
	}
	if t.ImageGenerationTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*ImageGenerationTool
		}{
			Type:                "image_generation",
			ImageGenerationTool: t.ImageGenerationTool,
		})
	}
	if t.LocalShellTool != nil {
		return json.Marshal(struct {
			Type string `json:"type"`
			*LocalShellTool
		}{
			Type:           "local_shell",
			LocalShellTool: t.LocalShellTool,
		})
	}
	return nil, fmt.Errorf("Tool has no content")
}

func (t *Tool) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Type {
	case "file_search":
		var f FileSearchTool
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		t.FileSearchTool = &f
	case "function":
		var f FunctionTool
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		t.FunctionTool = &f
	case "computer_use_preview":
		var c ComputerUseTool
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		t.ComputerUseTool = &c
	case "web_search_preview", "web_search_preview_2025_03_11":
		var w WebSearchTool
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		w.Version = WebSearchToolVersion(temp.Type)
		t.WebSearchTool = &w
	case "mcp":
		var m MCPTool
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		t.MCPTool = &m
	case "code_interpreter":
		var c CodeInterpreterTool
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		t.CodeInterpreterTool = &c
	case "image_generation":
		var i ImageGenerationTool
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		t.ImageGenerationTool = &i
	case "local_shell":
		t.LocalShellTool = &LocalShellTool{}
	default:
		return fmt.Errorf("unknown Tool type: %s", temp.Type)
	}

	return nil
}
