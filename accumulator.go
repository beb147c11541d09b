package responses

import (
	"fmt"
	"sort"
)

type addressState int

const (
	addressUnseen addressState = iota
	addressAdded
	addressStreaming
	addressDone
)

// address identifies one streamed partial structure: a content part of an
// output item, or an item-level stream such as function-call arguments
// (content index -1) or a reasoning summary part (summary index in the
// content slot).
type address struct {
	ItemID       string
	OutputIndex  int
	ContentIndex int
}

const itemLevelContentIndex = -1

// partAccumulator collects one content part: the concatenated deltas and,
// once seen, the authoritative done value. The done value wins when the
// two disagree.
type partAccumulator struct {
	part   *OutputContent
	deltas string
	done   *string
}

func (p *partAccumulator) value() string {
	if p.done != nil {
		return *p.done
	}
	return p.deltas
}

type streamState int

const (
	streamUnstarted streamState = iota
	streamCreated
	streamInProgress
	streamTerminal
)

// StreamAccumulator assembles a final Response from a sequence of stream
// events, enforcing the per-address ordering protocol: for each address,
// one `added` precedes zero-or-more `delta` events, which precede exactly
// one `done`. Events must be fed in the order the server sent them.
type StreamAccumulator struct {
	state    streamState
	response *Response
	errEvent *ErrorEvent

	items     map[int]*OutputItem
	itemsDone map[int]bool
	states    map[address]addressState
	parts     map[address]*partAccumulator
	summaries map[address]*partAccumulator
	args      map[address]*partAccumulator
	partOrder map[int][]address
}

// NewStreamAccumulator creates a new StreamAccumulator.
func NewStreamAccumulator() *StreamAccumulator {
	return &StreamAccumulator{
		items:     make(map[int]*OutputItem),
		itemsDone: make(map[int]bool),
		states:    make(map[address]addressState),
		parts:     make(map[address]*partAccumulator),
		summaries: make(map[address]*partAccumulator),
		args:      make(map[address]*partAccumulator),
		partOrder: make(map[int][]address),
	}
}

// AddEvent feeds one event to the accumulator. A duplicate `added` for a
// live address, a delta before `added`, an event after the terminal
// event, and similar ordering violations are reported as errors.
func (s *StreamAccumulator) AddEvent(event *StreamEvent) error {
	if s.state == streamTerminal {
		return NewInvariantError(fmt.Sprintf("event %s received after the stream terminated", event.Type()))
	}

	switch {
	case event.Created != nil:
		if s.state != streamUnstarted {
			return NewInvariantError("duplicate response.created event")
		}
		s.state = streamCreated
		resp := event.Created.Response
		s.response = &resp
	case event.InProgress != nil:
		if s.state == streamUnstarted {
			return NewInvariantError("response.in_progress before response.created")
		}
		s.state = streamInProgress
		resp := event.InProgress.Response
		s.response = &resp
	case event.Completed != nil:
		s.state = streamTerminal
		resp := event.Completed.Response
		s.response = &resp
	case event.Failed != nil:
		s.state = streamTerminal
		resp := event.Failed.Response
		s.response = &resp
	case event.Incomplete != nil:
		s.state = streamTerminal
		resp := event.Incomplete.Response
		s.response = &resp
	case event.Error != nil:
		s.state = streamTerminal
		s.errEvent = event.Error

	case event.OutputItemAdded != nil:
		index := event.OutputItemAdded.OutputIndex
		if _, exists := s.items[index]; exists {
			return NewInvariantError(fmt.Sprintf("duplicate output_item.added at output index %d", index))
		}
		item := event.OutputItemAdded.Item
		s.items[index] = &item
	case event.OutputItemDone != nil:
		index := event.OutputItemDone.OutputIndex
		item := event.OutputItemDone.Item
		s.items[index] = &item
		s.itemsDone[index] = true

	case event.ContentPartAdded != nil:
		ev := event.ContentPartAdded
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		if err := s.markAdded(addr); err != nil {
			return err
		}
		part := ev.Part
		s.parts[addr] = &partAccumulator{part: &part}
		s.partOrder[ev.OutputIndex] = append(s.partOrder[ev.OutputIndex], addr)
	case event.ContentPartDone != nil:
		ev := event.ContentPartDone
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		if err := s.markDone(addr); err != nil {
			return err
		}
		acc := s.parts[addr]
		part := ev.Part
		acc.part = &part
		if part.OutputText != nil {
			text := part.OutputText.Text
			acc.done = &text
		} else if part.Refusal != nil {
			refusal := part.Refusal.Refusal
			acc.done = &refusal
		}

	case event.OutputTextDelta != nil:
		ev := event.OutputTextDelta
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		acc, err := s.markStreaming(addr, s.parts)
		if err != nil {
			return err
		}
		acc.deltas += ev.Delta
	case event.OutputTextDone != nil:
		ev := event.OutputTextDone
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		acc, ok := s.parts[addr]
		if !ok {
			return NewInvariantError(fmt.Sprintf("output_text.done for unknown item %q", ev.ItemID))
		}
		text := ev.Text
		acc.done = &text
	case event.OutputTextAnnotationAdded != nil:
		ev := event.OutputTextAnnotationAdded
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		acc, ok := s.parts[addr]
		if !ok {
			return NewInvariantError(fmt.Sprintf("annotation for unknown item %q", ev.ItemID))
		}
		if acc.part != nil && acc.part.OutputText != nil {
			acc.part.OutputText.Annotations = append(acc.part.OutputText.Annotations, ev.Annotation)
		}

	case event.RefusalDelta != nil:
		ev := event.RefusalDelta
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		acc, err := s.markStreaming(addr, s.parts)
		if err != nil {
			return err
		}
		acc.deltas += ev.Delta
	case event.RefusalDone != nil:
		ev := event.RefusalDone
		addr := address{ev.ItemID, ev.OutputIndex, ev.ContentIndex}
		acc, ok := s.parts[addr]
		if !ok {
			return NewInvariantError(fmt.Sprintf("refusal.done for unknown item %q", ev.ItemID))
		}
		refusal := ev.Refusal
		acc.done = &refusal

	case event.FunctionCallArgumentsDelta != nil:
		ev := event.FunctionCallArgumentsDelta
		addr := address{ev.ItemID, ev.OutputIndex, itemLevelContentIndex}
		acc := s.args[addr]
		if acc == nil {
			acc = &partAccumulator{}
			s.args[addr] = acc
		}
		acc.deltas += ev.Delta
	case event.FunctionCallArgumentsDone != nil:
		ev := event.FunctionCallArgumentsDone
		addr := address{ev.ItemID, ev.OutputIndex, itemLevelContentIndex}
		acc := s.args[addr]
		if acc == nil {
			acc = &partAccumulator{}
			s.args[addr] = acc
		}
		arguments := ev.Arguments
		acc.done = &arguments

	case event.ReasoningSummaryPartAdded != nil:
		ev := event.ReasoningSummaryPartAdded
		addr := address{ev.ItemID, ev.OutputIndex, ev.SummaryIndex}
		if err := s.markAdded(addr); err != nil {
			return err
		}
		s.summaries[addr] = &partAccumulator{}
	case event.ReasoningSummaryPartDone != nil:
		ev := event.ReasoningSummaryPartDone
		addr := address{ev.ItemID, ev.OutputIndex, ev.SummaryIndex}
		if err := s.markDone(addr); err != nil {
			return err
		}
		text := ev.Part.Text
		s.summaries[addr].done = &text
	case event.ReasoningSummaryTextDelta != nil:
		ev := event.ReasoningSummaryTextDelta
		addr := address{ev.ItemID, ev.OutputIndex, ev.SummaryIndex}
		acc, err := s.markStreaming(addr, s.summaries)
		if err != nil {
			return err
		}
		acc.deltas += ev.Delta
	case event.ReasoningSummaryTextDone != nil:
		ev := event.ReasoningSummaryTextDone
		addr := address{ev.ItemID, ev.OutputIndex, ev.SummaryIndex}
		acc, ok := s.summaries[addr]
		if !ok {
			return NewInvariantError(fmt.Sprintf("reasoning_summary_text.done for unknown item %q", ev.ItemID))
		}
		text := ev.Text
		acc.done = &text

	default:
		// Tool-call progress notifications (file search, web search, image
		// generation lifecycle) carry no payload to accumulate.
		if event.Type() == "" {
			return NewInvariantError("empty stream event")
		}
	}
	return nil
}

func (s *StreamAccumulator) markAdded(addr address) error {
	if s.states[addr] != addressUnseen {
		return NewInvariantError(fmt.Sprintf("duplicate added event for item %q output %d content %d",
			addr.ItemID, addr.OutputIndex, addr.ContentIndex))
	}
	s.states[addr] = addressAdded
	return nil
}

func (s *StreamAccumulator) markStreaming(addr address, accs map[address]*partAccumulator) (*partAccumulator, error) {
	switch s.states[addr] {
	case addressAdded, addressStreaming:
		s.states[addr] = addressStreaming
	case addressUnseen:
		return nil, NewInvariantError(fmt.Sprintf("delta before added for item %q output %d content %d",
			addr.ItemID, addr.OutputIndex, addr.ContentIndex))
	case addressDone:
		return nil, NewInvariantError(fmt.Sprintf("delta after done for item %q output %d content %d",
			addr.ItemID, addr.OutputIndex, addr.ContentIndex))
	}
	acc := accs[addr]
	if acc == nil {
		acc = &partAccumulator{}
		accs[addr] = acc
	}
	return acc, nil
}

func (s *StreamAccumulator) markDone(addr address) error {
	switch s.states[addr] {
	case addressAdded, addressStreaming:
		s.states[addr] = addressDone
		return nil
	case addressUnseen:
		return NewInvariantError(fmt.Sprintf("done before added for item %q output %d content %d",
			addr.ItemID, addr.OutputIndex, addr.ContentIndex))
	default:
		return NewInvariantError(fmt.Sprintf("duplicate done event for item %q output %d content %d",
			addr.ItemID, addr.OutputIndex, addr.ContentIndex))
	}
}

// IsTerminal reports whether a terminal event has been received.
func (s *StreamAccumulator) IsTerminal() bool {
	return s.state == streamTerminal
}

// Response computes the final response. The terminal event's payload is
// the source of truth; accumulated items and parts fill it in only when
// the payload omits the output list. Fails when the stream has not
// terminated, or terminated with an error event.
func (s *StreamAccumulator) Response() (*Response, error) {
	if s.errEvent != nil {
		code := ""
		if s.errEvent.Code != nil {
			code = *s.errEvent.Code
		}
		return nil, NewInvariantError(fmt.Sprintf("stream terminated with error %q: %s", code, s.errEvent.Message))
	}
	if s.state != streamTerminal {
		return nil, NewInvariantError("stream has not received a terminal event")
	}
	if s.response == nil {
		return nil, NewInvariantError("stream terminated without a response payload")
	}

	response := *s.response
	if len(response.Output) == 0 && len(s.items) > 0 {
		response.Output = s.assembleOutput()
	}
	return &response, nil
}

// assembleOutput rebuilds the output list from accumulated items and
// parts, in output-index order.
func (s *StreamAccumulator) assembleOutput() []OutputItem {
	var indices []int
	for index := range s.items {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	var output []OutputItem
	for _, index := range indices {
		item := *s.items[index]
		if item.OutputMessageItem != nil && !s.itemsDone[index] {
			message := *item.OutputMessageItem
			message.Content = s.assembleContent(index)
			item.OutputMessageItem = &message
		}
		if item.FunctionToolCallItem != nil && !s.itemsDone[index] {
			call := *item.FunctionToolCallItem
			addr := address{s.itemID(item), index, itemLevelContentIndex}
			if acc, ok := s.args[addr]; ok {
				call.Arguments = acc.value()
			}
			item.FunctionToolCallItem = &call
		}
		if item.ReasoningItem != nil && !s.itemsDone[index] {
			reasoning := *item.ReasoningItem
			reasoning.Summary = s.assembleSummary(reasoning.ID, index)
			item.ReasoningItem = &reasoning
		}
		output = append(output, item)
	}
	return output
}

func (s *StreamAccumulator) assembleContent(outputIndex int) []OutputContent {
	var content []OutputContent
	for _, addr := range s.partOrder[outputIndex] {
		acc := s.parts[addr]
		if acc.part != nil && acc.part.OutputText != nil {
			text := *acc.part.OutputText
			text.Text = acc.value()
			content = append(content, OutputContent{OutputText: &text})
		} else if acc.part != nil && acc.part.Refusal != nil {
			content = append(content, OutputContent{Refusal: &Refusal{Refusal: acc.value()}})
		}
	}
	return content
}

func (s *StreamAccumulator) assembleSummary(itemID string, outputIndex int) []SummaryText {
	var addrs []address
	for addr := range s.summaries {
		if addr.ItemID == itemID && addr.OutputIndex == outputIndex {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].ContentIndex < addrs[j].ContentIndex })

	var summary []SummaryText
	for _, addr := range addrs {
		summary = append(summary, NewSummaryText(s.summaries[addr].value()))
	}
	return summary
}

func (s *StreamAccumulator) itemID(item OutputItem) string {
	switch {
	case item.OutputMessageItem != nil:
		return item.OutputMessageItem.ID
	case item.FunctionToolCallItem != nil && item.FunctionToolCallItem.ID != nil:
		return *item.FunctionToolCallItem.ID
	case item.ReasoningItem != nil:
		return item.ReasoningItem.ID
	case item.FileSearchToolCallItem != nil:
		return item.FileSearchToolCallItem.ID
	case item.WebSearchToolCallItem != nil:
		return item.WebSearchToolCallItem.ID
	case item.ComputerToolCallItem != nil:
		return item.ComputerToolCallItem.ID
	case item.ImageGenerationCallItem != nil:
		return item.ImageGenerationCallItem.ID
	}
	return ""
}
