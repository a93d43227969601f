package extract

import (
	"strings"

	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/candidate"
)

// taxonomyCategory groups recognized technology keywords. Keywords are
// lowercase and matched against the lowercased utterance on token boundaries;
// multi-word keywords are matched verbatim.
type taxonomyCategory struct {
	name     string
	keywords []string
}

// taxonomy is the fixed catalog of recognized technologies. Slice order makes
// both category and keyword iteration deterministic.
var taxonomy = []taxonomyCategory{
	{
		name: "programming_languages",
		keywords: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
			"php", "ruby", "kotlin", "swift", "scala", "r", "matlab", "perl", "dart",
		},
	},
	{
		name: "web_frameworks",
		keywords: []string{
			"react", "angular", "vue", "django", "flask", "spring", "express",
			"laravel", "rails", "asp.net", "fastapi", "nextjs", "nuxt", "svelte",
		},
	},
	{
		name: "mobile_frameworks",
		keywords: []string{
			"react native", "flutter", "ionic", "xamarin", "cordova",
			"native android", "native ios",
		},
	},
	{
		name: "databases",
		keywords: []string{
			"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
			"sql server", "cassandra", "elasticsearch", "firebase", "dynamodb",
		},
	},
	{
		name: "cloud_platforms",
		keywords: []string{
			"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
			"linode", "alibaba cloud", "oracle cloud",
		},
	},
	{
		name: "devops_tools",
		keywords: []string{
			"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
			"terraform", "ansible", "chef", "puppet", "vagrant",
		},
	},
	{
		name: "development_tools",
		keywords: []string{
			"git", "svn", "jira", "confluence", "slack", "teams", "vscode",
			"intellij", "eclipse", "postman", "swagger",
		},
	},
}

// Classify matches the utterance against the technology taxonomy and stores
// the result on the profile. A profile that already carries a structured tech
// stack is left untouched. When at least one keyword matches, the structured
// mapping is stored and any earlier raw fallback is cleared; otherwise the raw
// utterance is kept under TechStackRaw for manual processing.
func Classify(p *candidate.Profile, text string) {
	if p == nil || p.Classified() {
		return
	}

	lower := strings.ToLower(text)
	found := candidate.TechStack{}

	for _, category := range taxonomy {
		var items []string
		for _, keyword := range category.keywords {
			if containsKeyword(lower, keyword) {
				items = append(items, keyword)
			}
		}
		if len(items) > 0 {
			found[category.name] = items
		}
	}

	if len(found) == 0 {
		p.TechStackRaw = text
		return
	}

	p.TechStack = found
	p.TechStackRaw = ""
}

// containsKeyword reports whether the keyword occurs in the lowercased text
// bounded by non-alphanumeric characters, so short keywords like "r" or "go"
// do not match inside longer words such as "react" or "django".
func containsKeyword(text, keyword string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], keyword)
		if idx == -1 {
			return false
		}
		idx += start

		end := idx + len(keyword)
		beforeOK := idx == 0 || !isWordChar(text[idx-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}

		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// FirstCategory returns the first taxonomy category present in the tech
// stack, in taxonomy order. It is used to build a deterministic fallback when
// question generation fails.
func FirstCategory(stack candidate.TechStack) string {
	for _, category := range taxonomy {
		if _, ok := stack[category.name]; ok {
			return category.name
		}
	}
	return ""
}
