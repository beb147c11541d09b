package sse

import (
	"bufio"
	"io"
	"strings"
)

const MaxScanTokenSize = 5 * 1024 * 1024 // 5MB

// Event represents a server-sent event.
type Event struct {
	Type string
	Data string
	ID   string
}

// Scanner assembles server-sent events from a response body, one event
// per blank-line-terminated block.
type Scanner struct {
	scanner *bufio.Scanner
	curr    *Event
}

// NewScanner creates a new SSE scanner from an io.Reader.
func NewScanner(reader io.Reader) *Scanner {
	scanner := bufio.NewScanner(reader)
	buf := make([]byte, MaxScanTokenSize)
	scanner.Buffer(buf, MaxScanTokenSize)
	return &Scanner{
		scanner: scanner,
	}
}

// Next advances to the next event. It returns false at end of stream or
// on a read error.
func (s *Scanner) Next() bool {
	s.curr = nil
	var lines []string
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 {
				s.curr = parseEvent(lines)
				return true
			}
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		s.curr = parseEvent(lines)
		return true
	}
	return false
}

// Current returns the event read by the last call to Next.
func (s *Scanner) Current() *Event {
	return s.curr
}

// Err returns any error encountered during scanning.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}

// parseEvent parses a single SSE event from lines of text.
func parseEvent(lines []string) *Event {
	event := &Event{}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}

		if strings.HasPrefix(line, "event:") {
			event.Type = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		} else if strings.HasPrefix(line, "data:") {
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if event.Data != "" {
				event.Data += "\n"
			}
			event.Data += data
		} else if strings.HasPrefix(line, "id:") {
			event.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		}
	}

	return event
}
