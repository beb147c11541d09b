package responses

// Role indicates the instruction-following hierarchy of a message.
// Instructions given with the `developer` or `system` role take precedence
// over instructions given with the `user` role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAssistant, RoleSystem, RoleDeveloper:
		return Role(s), nil
	}
	return "", NewUnknownValueError("Role", s)
}

// Status is the lifecycle state of an individual item.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusIncomplete Status = "incomplete"
	StatusFailed     Status = "failed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusInProgress, StatusCompleted, StatusIncomplete, StatusFailed:
		return Status(s), nil
	}
	return "", NewUnknownValueError("Status", s)
}

// ResponseStatus is the lifecycle state of a whole response document.
type ResponseStatus string

const (
	ResponseStatusCompleted  ResponseStatus = "completed"
	ResponseStatusFailed     ResponseStatus = "failed"
	ResponseStatusInProgress ResponseStatus = "in_progress"
	ResponseStatusCancelled  ResponseStatus = "cancelled"
	ResponseStatusQueued     ResponseStatus = "queued"
	ResponseStatusIncomplete ResponseStatus = "incomplete"
)

func ParseResponseStatus(s string) (ResponseStatus, error) {
	switch ResponseStatus(s) {
	case ResponseStatusCompleted, ResponseStatusFailed, ResponseStatusInProgress,
		ResponseStatusCancelled, ResponseStatusQueued, ResponseStatusIncomplete:
		return ResponseStatus(s), nil
	}
	return "", NewUnknownValueError("ResponseStatus", s)
}

// ImageDetail is the detail level of an image sent to the model.
type ImageDetail string

const (
	ImageDetailHigh ImageDetail = "high"
	ImageDetailLow  ImageDetail = "low"
	ImageDetailAuto ImageDetail = "auto"
)

func ParseImageDetail(s string) (ImageDetail, error) {
	switch ImageDetail(s) {
	case ImageDetailHigh, ImageDetailLow, ImageDetailAuto:
		return ImageDetail(s), nil
	}
	return "", NewUnknownValueError("ImageDetail", s)
}

// ReasoningEffort constrains effort on reasoning for reasoning models.
type ReasoningEffort string

const (
	ReasoningEffortMinimal ReasoningEffort = "minimal"
	ReasoningEffortLow     ReasoningEffort = "low"
	ReasoningEffortMedium  ReasoningEffort = "medium"
	ReasoningEffortHigh    ReasoningEffort = "high"
)

func ParseReasoningEffort(s string) (ReasoningEffort, error) {
	switch ReasoningEffort(s) {
	case ReasoningEffortMinimal, ReasoningEffortLow, ReasoningEffortMedium, ReasoningEffortHigh:
		return ReasoningEffort(s), nil
	}
	return "", NewUnknownValueError("ReasoningEffort", s)
}

// ReasoningSummarySetting controls the summary of reasoning performed by
// the model.
type ReasoningSummarySetting string

const (
	ReasoningSummaryAuto     ReasoningSummarySetting = "auto"
	ReasoningSummaryConcise  ReasoningSummarySetting = "concise"
	ReasoningSummaryDetailed ReasoningSummarySetting = "detailed"
)

func ParseReasoningSummarySetting(s string) (ReasoningSummarySetting, error) {
	switch ReasoningSummarySetting(s) {
	case ReasoningSummaryAuto, ReasoningSummaryConcise, ReasoningSummaryDetailed:
		return ReasoningSummarySetting(s), nil
	}
	return "", NewUnknownValueError("ReasoningSummarySetting", s)
}

// ServiceTier specifies the latency tier to use for processing the request.
type ServiceTier string

const (
	ServiceTierAuto    ServiceTier = "auto"
	ServiceTierDefault ServiceTier = "default"
	ServiceTierFlex    ServiceTier = "flex"
)

func ParseServiceTier(s string) (ServiceTier, error) {
	switch ServiceTier(s) {
	case ServiceTierAuto, ServiceTierDefault, ServiceTierFlex:
		return ServiceTier(s), nil
	}
	return "", NewUnknownValueError("ServiceTier", s)
}

// Truncation is the truncation strategy to use for the model response.
type Truncation string

const (
	TruncationAuto     Truncation = "auto"
	TruncationDisabled Truncation = "disabled"
)

func ParseTruncation(s string) (Truncation, error) {
	switch Truncation(s) {
	case TruncationAuto, TruncationDisabled:
		return Truncation(s), nil
	}
	return "", NewUnknownValueError("Truncation", s)
}

// ToolChoiceMode controls which (if any) tool is called by the model when
// no specific tool is forced.
type ToolChoiceMode string

const (
	ToolChoiceModeNone     ToolChoiceMode = "none"
	ToolChoiceModeAuto     ToolChoiceMode = "auto"
	ToolChoiceModeRequired ToolChoiceMode = "required"
)

func ParseToolChoiceMode(s string) (ToolChoiceMode, error) {
	switch ToolChoiceMode(s) {
	case ToolChoiceModeNone, ToolChoiceModeAuto, ToolChoiceModeRequired:
		return ToolChoiceMode(s), nil
	}
	return "", NewUnknownValueError("ToolChoiceMode", s)
}

// HostedToolType names a built-in tool the model should use.
type HostedToolType string

const (
	HostedToolFileSearch       HostedToolType = "file_search"
	HostedToolWebSearchPreview HostedToolType = "web_search_preview"
	HostedToolComputerUse      HostedToolType = "computer_use_preview"
	HostedToolCodeInterpreter  HostedToolType = "code_interpreter"
	HostedToolMCP              HostedToolType = "mcp"
	HostedToolImageGeneration  HostedToolType = "image_generation"
)

func ParseHostedToolType(s string) (HostedToolType, error) {
	switch HostedToolType(s) {
	case HostedToolFileSearch, HostedToolWebSearchPreview, HostedToolComputerUse,
		HostedToolCodeInterpreter, HostedToolMCP, HostedToolImageGeneration:
		return HostedToolType(s), nil
	}
	return "", NewUnknownValueError("HostedToolType", s)
}

// SearchContextSize is the amount of context window space to use for a
// web search.
type SearchContextSize string

const (
	SearchContextSizeLow    SearchContextSize = "low"
	SearchContextSizeMedium SearchContextSize = "medium"
	SearchContextSizeHigh   SearchContextSize = "high"
)

func ParseSearchContextSize(s string) (SearchContextSize, error) {
	switch SearchContextSize(s) {
	case SearchContextSizeLow, SearchContextSizeMedium, SearchContextSizeHigh:
		return SearchContextSize(s), nil
	}
	return "", NewUnknownValueError("SearchContextSize", s)
}

// ComparisonOperator is the operator of a comparison file-search filter.
type ComparisonOperator string

const (
	ComparisonEq  ComparisonOperator = "eq"
	ComparisonNe  ComparisonOperator = "ne"
	ComparisonGt  ComparisonOperator = "gt"
	ComparisonGte ComparisonOperator = "gte"
	ComparisonLt  ComparisonOperator = "lt"
	ComparisonLte ComparisonOperator = "lte"
)

func ParseComparisonOperator(s string) (ComparisonOperator, error) {
	switch ComparisonOperator(s) {
	case ComparisonEq, ComparisonNe, ComparisonGt, ComparisonGte, ComparisonLt, ComparisonLte:
		return ComparisonOperator(s), nil
	}
	return "", NewUnknownValueError("ComparisonOperator", s)
}

// CompoundOperator combines file-search filters.
type CompoundOperator string

const (
	CompoundAnd CompoundOperator = "and"
	CompoundOr  CompoundOperator = "or"
)

func ParseCompoundOperator(s string) (CompoundOperator, error) {
	switch CompoundOperator(s) {
	case CompoundAnd, CompoundOr:
		return CompoundOperator(s), nil
	}
	return "", NewUnknownValueError("CompoundOperator", s)
}

// Include names additional output data to include in the model response.
type Include string

const (
	IncludeFileSearchResults         Include = "file_search_call.results"
	IncludeInputImageURLs            Include = "message.input_image.image_url"
	IncludeComputerCallImageURLs     Include = "computer_call_output.output.image_url"
	IncludeReasoningEncryptedContent Include = "reasoning.encrypted_content"
	IncludeCodeInterpreterOutputs    Include = "code_interpreter_call.outputs"
)

func ParseInclude(s string) (Include, error) {
	switch Include(s) {
	case IncludeFileSearchResults, IncludeInputImageURLs, IncludeComputerCallImageURLs,
		IncludeReasoningEncryptedContent, IncludeCodeInterpreterOutputs:
		return Include(s), nil
	}
	return "", NewUnknownValueError("Include", s)
}

// ComputerButton is a mouse button of a computer click action.
type ComputerButton string

const (
	ComputerButtonLeft    ComputerButton = "left"
	ComputerButtonRight   ComputerButton = "right"
	ComputerButtonWheel   ComputerButton = "wheel"
	ComputerButtonBack    ComputerButton = "back"
	ComputerButtonForward ComputerButton = "forward"
)

func ParseComputerButton(s string) (ComputerButton, error) {
	switch ComputerButton(s) {
	case ComputerButtonLeft, ComputerButtonRight, ComputerButtonWheel,
		ComputerButtonBack, ComputerButtonForward:
		return ComputerButton(s), nil
	}
	return "", NewUnknownValueError("ComputerButton", s)
}

// Common model IDs for the responses endpoint. The Model field of a
// Request is a plain string, so newer models work without an SDK update.
const (
	ModelGPT4o     = "gpt-4o"
	ModelGPT4oMini = "gpt-4o-mini"
	ModelGPT41     = "gpt-4.1"
	ModelGPT41Mini = "gpt-4.1-mini"
	ModelGPT5      = "gpt-5"
	ModelGPT5Mini  = "gpt-5-mini"
	ModelO3        = "o3"
	ModelO4Mini    = "o4-mini"
)

// Reasoning holds configuration options for reasoning models.
type Reasoning struct {
	// Constrains effort on reasoning for reasoning models.
	Effort *ReasoningEffort `json:"effort,omitempty"`

	// A summary of the reasoning performed by the model.
	Summary *ReasoningSummarySetting `json:"summary,omitempty"`
}
