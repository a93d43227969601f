package candidate

import (
	"strings"
	"testing"
)

func TestProfileEmpty(t *testing.T) {
	t.Parallel()

	var nilProfile *Profile
	if !nilProfile.Empty() {
		t.Fatal("expected nil profile to be empty")
	}

	if !(&Profile{}).Empty() {
		t.Fatal("expected zero profile to be empty")
	}

	if (&Profile{Email: "jane@co.com"}).Empty() {
		t.Fatal("expected profile with email to be non-empty")
	}

	if (&Profile{TechStackRaw: "stuff"}).Empty() {
		t.Fatal("expected profile with raw stack to be non-empty")
	}
}

func TestProfileTechCount(t *testing.T) {
	t.Parallel()

	profile := &Profile{TechStack: TechStack{
		"programming_languages": {"python", "go"},
		"databases":             {"postgresql"},
	}}

	if got := profile.TechCount(); got != 3 {
		t.Fatalf("expected 3 technologies, got %d", got)
	}

	if got := (&Profile{}).TechCount(); got != 0 {
		t.Fatalf("expected 0 technologies, got %d", got)
	}
}

func TestProfileBasicFieldsKnown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile Profile
		expect  int
	}{
		{name: "none", profile: Profile{}, expect: 0},
		{name: "phone does not count", profile: Profile{Phone: "5551234567"}, expect: 0},
		{name: "name and email", profile: Profile{Name: "Jane Smith", Email: "jane@co.com"}, expect: 2},
		{name: "all three", profile: Profile{Name: "Jane Smith", Email: "jane@co.com", Experience: "5 years"}, expect: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.profile.BasicFieldsKnown(); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestPromptJSON(t *testing.T) {
	t.Parallel()

	if got := (&Profile{}).PromptJSON(); got != "None yet" {
		t.Fatalf("expected sentinel for empty profile, got %q", got)
	}

	profile := &Profile{
		Name:       "Jane Smith",
		Experience: "5 years",
		TechStack:  TechStack{"programming_languages": {"python"}},
	}

	got := profile.PromptJSON()

	for _, want := range []string{`"name": "Jane Smith"`, `"experience": "5 years"`, `"python"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected payload to contain %s, got:\n%s", want, got)
		}
	}

	for _, unwanted := range []string{"email", "phone", "position", "location", "tech_stack_raw"} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("expected unset field %s to be omitted, got:\n%s", unwanted, got)
		}
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	t.Run("empty record renders generic sentence", func(t *testing.T) {
		t.Parallel()
		got := (&Profile{}).Summary()
		if !strings.Contains(got, "great conversation") {
			t.Fatalf("expected generic sentence, got %q", got)
		}
	})

	t.Run("full record renders bullets", func(t *testing.T) {
		t.Parallel()
		profile := &Profile{
			Name:       "Jane Smith",
			Experience: "5 years",
			Position:   "senior backend engineer",
			TechStack:  TechStack{"programming_languages": {"python", "go"}},
		}

		got := profile.Summary()

		for _, want := range []string{
			"**Interview Summary:**",
			"**Jane Smith**",
			"• 5 years of experience",
			"• Interested in senior backend engineer",
			"• Proficient in 2+ technologies",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("expected summary to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("partial record skips missing bullets", func(t *testing.T) {
		t.Parallel()
		got := (&Profile{Email: "jane@co.com"}).Summary()
		if strings.Contains(got, "•") {
			t.Fatalf("expected no bullets for email-only record, got %q", got)
		}
		if !strings.Contains(got, "Thank you for sharing your background") {
			t.Fatalf("unexpected summary: %q", got)
		}
	})
}
