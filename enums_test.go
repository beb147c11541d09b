package responses

import (
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"user", "assistant", "system", "developer"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", s, err)
		}
		if string(role) != s {
			t.Fatalf("ParseRole(%q) = %q", s, role)
		}
	}

	_, err := ParseRole("admin")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
	if !strings.Contains(err.Error(), `"admin"`) || !strings.Contains(err.Error(), "Role") {
		t.Fatalf("error should name the value and the enum: %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("completed"); err != nil {
		t.Fatalf("ParseStatus returned error: %v", err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseEnumRejections(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
	}{
		{"ImageDetail", func(s string) error { _, err := ParseImageDetail(s); return err }},
		{"ReasoningEffort", func(s string) error { _, err := ParseReasoningEffort(s); return err }},
		{"ServiceTier", func(s string) error { _, err := ParseServiceTier(s); return err }},
		{"Truncation", func(s string) error { _, err := ParseTruncation(s); return err }},
		{"ToolChoiceMode", func(s string) error { _, err := ParseToolChoiceMode(s); return err }},
		{"HostedToolType", func(s string) error { _, err := ParseHostedToolType(s); return err }},
		{"SearchContextSize", func(s string) error { _, err := ParseSearchContextSize(s); return err }},
		{"ComparisonOperator", func(s string) error { _, err := ParseComparisonOperator(s); return err }},
		{"CompoundOperator", func(s string) error { _, err := ParseCompoundOperator(s); return err }},
		{"Include", func(s string) error { _, err := ParseInclude(s); return err }},
		{"ComputerButton", func(s string) error { _, err := ParseComputerButton(s); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse("bogus")
			if err == nil {
				t.Fatalf("expected error for unknown %s value", tt.name)
			}
			if !strings.Contains(err.Error(), `"bogus"`) {
				t.Fatalf("error should name the offending value: %v", err)
			}
		})
	}
}

func TestParseComputerButton(t *testing.T) {
	for _, s := range []string{"left", "right", "wheel", "back", "forward"} {
		if _, err := ParseComputerButton(s); err != nil {
			t.Fatalf("ParseComputerButton(%q) returned error: %v", s, err)
		}
	}
}
