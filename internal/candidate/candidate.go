package candidate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TechStack maps a taxonomy category name to the keywords matched in that
// category. Keyword order follows taxonomy declaration order.
type TechStack map[string][]string

// Profile is the accumulating structured record of one candidate within one
// screening session. Scalar fields are overwritten by the latest successful
// extraction; Name is set at most once; TechStack, once set, is never
// overwritten and excludes TechStackRaw.
type Profile struct {
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Position     string    `json:"position,omitempty"`
	Location     string    `json:"location,omitempty"`
	TechStack    TechStack `json:"tech_stack,omitempty"`
	TechStackRaw string    `json:"tech_stack_raw,omitempty"`
}

// Empty reports whether nothing has been collected yet.
func (p *Profile) Empty() bool {
	if p == nil {
		return true
	}
	return p.Name == "" && p.Email == "" && p.Phone == "" && p.Experience == "" &&
		p.Position == "" && p.Location == "" && p.TechStack == nil && p.TechStackRaw == ""
}

// Classified reports whether the structured tech stack has been captured.
func (p *Profile) Classified() bool {
	return p != nil && p.TechStack != nil
}

// TechCount returns the total number of matched technologies across all
// tech stack categories.
func (p *Profile) TechCount() int {
	if p == nil {
		return 0
	}
	count := 0
	for _, items := range p.TechStack {
		count += len(items)
	}
	return count
}

// BasicFieldsKnown counts how many of name, email and experience have been
// collected. The info gathering stage requires at least two of them before
// moving on.
func (p *Profile) BasicFieldsKnown() int {
	if p == nil {
		return 0
	}
	known := 0
	for _, v := range []string{p.Name, p.Email, p.Experience} {
		if v != "" {
			known++
		}
	}
	return known
}

// PromptJSON renders the profile for inclusion in a generation prompt. An
// empty profile renders as the "None yet" sentinel expected by the prompt
// template.
func (p *Profile) PromptJSON() string {
	if p.Empty() {
		return "None yet"
	}

	payload := map[string]any{}
	cfg := &mapstructure.DecoderConfig{
		Result:  &payload,
		TagName: "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(p); err != nil {
		return "None yet"
	}

	for key, value := range payload {
		switch v := value.(type) {
		case string:
			if v == "" {
				delete(payload, key)
			}
		case TechStack:
			if len(v) == 0 {
				delete(payload, key)
			}
		case map[string]any:
			if len(v) == 0 {
				delete(payload, key)
			}
		case nil:
			delete(payload, key)
		}
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "None yet"
	}
	return string(pretty)
}

// Summary renders a short deterministic recap of the collected information,
// used by the farewell message.
func (p *Profile) Summary() string {
	if p.Empty() {
		return "We've had a great conversation about your background and interests."
	}

	parts := make([]string, 0, 4)

	if p.Name != "" {
		parts = append(parts, fmt.Sprintf("**%s**", p.Name))
	}

	if p.Experience != "" {
		parts = append(parts, fmt.Sprintf("• %s of experience", p.Experience))
	}

	if p.Position != "" {
		parts = append(parts, fmt.Sprintf("• Interested in %s", p.Position))
	}

	if p.TechStack != nil {
		parts = append(parts, fmt.Sprintf("• Proficient in %d+ technologies", p.TechCount()))
	}

	if len(parts) == 0 {
		return "Thank you for sharing your background with us."
	}

	return "**Interview Summary:**\n" + strings.Join(parts, "\n")
}
