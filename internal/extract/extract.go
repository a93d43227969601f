package extract

import (
	"regexp"
	"strings"

	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/candidate"
)

// matcher attempts to pull a single field value out of a free-text utterance.
// It returns the captured value and whether the attempt succeeded.
type matcher func(text string) (string, bool)

// firstMatch runs the matchers in order and returns the first capture.
func firstMatch(text string, matchers []matcher) (string, bool) {
	for _, m := range matchers {
		if value, ok := m(text); ok {
			return value, true
		}
	}
	return "", false
}

// pattern builds a matcher around a compiled regular expression, capturing the
// given group (0 for the whole match).
func pattern(re *regexp.Regexp, group int) matcher {
	return func(text string) (string, bool) {
		match := re.FindStringSubmatch(text)
		if match == nil || group >= len(match) {
			return "", false
		}
		return match[group], true
	}
}

// lowered wraps a matcher so it sees the lowercased input.
func lowered(m matcher) matcher {
	return func(text string) (string, bool) {
		return m(strings.ToLower(text))
	}
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}\b`)

	phoneUSRe   = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`)
	phoneIntlRe = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{8,15}`)

	expOfRe   = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)
	expBareRe = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)
	expForRe  = regexp.MustCompile(`experienced?\s*(?:for\s*)?(\d+)\s*(?:years?|yrs?)`)

	nameIntroRe = regexp.MustCompile(`(?i:i'm|i am|name is|call me)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	nameBareRe  = regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s|$)`)
)

var emailMatchers = []matcher{
	pattern(emailRe, 0),
}

var phoneMatchers = []matcher{
	pattern(phoneUSRe, 0),
	pattern(phoneIntlRe, 0),
}

var experienceMatchers = []matcher{
	lowered(pattern(expOfRe, 1)),
	lowered(pattern(expBareRe, 1)),
	lowered(pattern(expForRe, 1)),
}

var nameMatchers = []matcher{
	pattern(nameIntroRe, 1),
	pattern(nameBareRe, 1),
}

// positionKeywords is scanned as case-insensitive substrings. On a hit the
// whole trimmed utterance becomes the position value, not just the keyword.
var positionKeywords = []string{
	"developer", "engineer", "programmer", "architect", "analyst", "manager",
	"lead", "senior", "junior", "full stack", "backend", "frontend", "devops",
	"data scientist", "ml engineer", "software engineer", "web developer",
}

func matchPosition(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, keyword := range positionKeywords {
		if strings.Contains(lower, keyword) {
			return strings.TrimSpace(text), true
		}
	}
	return "", false
}

var locationTriggers = []string{"from", "live", "based", "located"}

// matchLocation takes the one or two tokens following a location preposition.
// Candidates containing digits are rejected, trailing punctuation is stripped.
func matchLocation(text string) (string, bool) {
	lower := strings.ToLower(text)
	triggered := false
	for _, trigger := range locationTriggers {
		if strings.Contains(lower, trigger) {
			triggered = true
			break
		}
	}
	if !triggered {
		return "", false
	}

	words := strings.Fields(text)
	for i, word := range words {
		switch strings.ToLower(word) {
		case "from", "in", "at":
			if i+1 >= len(words) {
				continue
			}
			end := i + 3
			if end > len(words) {
				end = len(words)
			}
			location := strings.Join(words[i+1:end], " ")
			if location == "" || strings.ContainsAny(location, "0123456789") {
				continue
			}
			return strings.Trim(location, ".,!"), true
		}
	}
	return "", false
}

// Apply runs every extraction rule against the utterance and updates the
// profile in place. Rules are independent; absence of a match is a no-op.
// Name is set at most once, the other scalar fields take the latest match.
func Apply(p *candidate.Profile, text string) {
	if p == nil {
		return
	}

	if email, ok := firstMatch(text, emailMatchers); ok {
		p.Email = email
	}

	if phone, ok := firstMatch(text, phoneMatchers); ok {
		p.Phone = phone
	}

	if years, ok := firstMatch(text, experienceMatchers); ok {
		p.Experience = years + " years"
	}

	if p.Name == "" {
		if name, ok := firstMatch(text, nameMatchers); ok {
			p.Name = name
		}
	}

	if position, ok := matchPosition(text); ok {
		p.Position = position
	}

	if location, ok := matchLocation(text); ok {
		p.Location = location
	}
}
