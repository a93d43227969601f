package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/ai"
	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/candidate"
	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/extract"
	logfields "github.com/V4MF1R3/TalentScout-hiring-assistant/internal/logger"
	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed system_prompt.md
var systemPrompt string

//go:embed turn_prompt.md
var turnPromptTemplate string

//go:embed questions_prompt.md
var questionsPromptTemplate string

const (
	// questionsPerInterview is how many technical questions a session asks
	// before wrapping up.
	questionsPerInterview = 4

	defaultMaxLogLength = 200

	defaultExperience = "0 years"
	defaultPosition   = "Software Developer"

	technicalDifficultiesMessage = "I apologize, but I'm experiencing technical difficulties. Could you please repeat your response? (Error: Connection issue)"
)

// endingKeywords terminate the conversation when found anywhere in the
// lowercased utterance.
var endingKeywords = []string{"bye", "goodbye", "exit", "quit", "end", "stop", "done", "finish"}

// Greeting is the canned message a boundary layer shows before the first turn.
const Greeting = `👋 **Welcome to TalentScout's AI Hiring Assistant!**

I'm here to conduct your initial screening interview for technology positions. This process will take about 10-15 minutes and helps us understand your background and technical expertise.

**Here's what we'll cover:**
1. 📝 Personal and professional information
2. 💼 Your experience and career interests
3. 🛠️ Technical skills and expertise
4. 🧠 A few relevant technical questions
5. 🎯 Next steps in the process

I'll guide you through each step, so just respond naturally to my questions. Ready to get started?

**Let's begin - what's your full name?**`

const farewellTemplate = `🎉 **Thank you for completing the initial screening interview!**

%s

**What happens next:**

🔍 **Review Process** (24-48 hours)
- Our technical team will review your responses
- We'll assess your fit for available positions
- Your information will be matched with suitable opportunities

📧 **Next Communication**
- You'll receive an email update within 2 business days
- If selected, we'll schedule a detailed technical interview
- Additional requirements or portfolio requests may follow

🚀 **Potential Next Steps**
- Technical deep-dive interview with our client companies
- Code review or technical assignment
- Final interview with hiring managers

**Contact Information:**
- Email: careers@talentscout.com
- Phone: +1-555-TALENT
- LinkedIn: TalentScout Recruitment

Thank you for your interest in opportunities through TalentScout. We're excited about the possibility of working together!

---
*This interview session is now complete. Feel free to close this window.*`

// Assistant drives one screening interview session: it owns the conversation
// stage, the candidate profile, the technical question bookkeeping and the
// active flag. It is not safe for concurrent use; one session, one goroutine.
type Assistant struct {
	generator ai.Generator
	logger    *zap.Logger
	maxLogLen int
	sessionID string

	stage          Stage
	profile        *candidate.Profile
	techQuestions  []string
	questionsAsked int
	active         bool
}

// New creates an Assistant for a fresh session. The generator is an explicit
// dependency so that tests can substitute a fake; a missing generator is a
// fatal configuration error surfaced before any turn is processed.
func New(generator ai.Generator, logger *zap.Logger, maxLogLength int) (*Assistant, error) {
	if generator == nil {
		return nil, errors.New("content generator is required")
	}

	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	sessionID := uuid.NewString()
	logger = logfields.WithFields(logger, zap.String(logfields.FieldSession, sessionID))

	return &Assistant{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
		sessionID: sessionID,
		stage:     StageGreeting,
		profile:   &candidate.Profile{},
		active:    true,
	}, nil
}

// SessionID returns the unique identifier of this session.
func (a *Assistant) SessionID() string { return a.sessionID }

// Stage returns the current conversation stage.
func (a *Assistant) Stage() Stage { return a.stage }

// Active reports whether the session still accepts input.
func (a *Assistant) Active() bool { return a.active }

// QuestionsAsked returns how many technical-question turns have passed.
func (a *Assistant) QuestionsAsked() int { return a.questionsAsked }

// Profile returns a copy of the collected candidate record for display.
func (a *Assistant) Profile() candidate.Profile { return *a.profile }

// TechQuestions returns a copy of the generated technical questions.
func (a *Assistant) TechQuestions() []string {
	return append([]string(nil), a.techQuestions...)
}

// GenerateResponse processes one user turn and returns the assistant's reply.
// The recent history is a caller-assembled transcript window used purely as
// prompting context. Every failure path returns a user-facing string; errors
// never propagate out of a turn.
func (a *Assistant) GenerateResponse(ctx context.Context, userInput, history string) string {
	if a.endingRequested(userInput) {
		a.stage = StageConclusion
		a.active = false
		a.logger.Info("conversation ended by candidate",
			zap.Int("questions_asked", a.questionsAsked),
		)
		return a.farewell()
	}

	prompt := a.buildTurnPrompt(userInput, history)

	a.logger.Debug("turn prompt built",
		zap.String("stage", a.stage.String()),
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	reply, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Warn("reply generation failed",
			zap.String("stage", a.stage.String()),
			zap.Error(err),
		)
		return technicalDifficultiesMessage
	}

	a.logger.Debug("turn reply received",
		zap.Int("reply_length", len(reply)),
		zap.String("reply_preview", utils.TruncateForLog(reply, a.maxLogLen)),
	)

	return a.processTurn(ctx, reply, userInput)
}

// processTurn applies stage-specific extraction to the user input, advances
// the state machine and returns the generated reply unchanged.
func (a *Assistant) processTurn(ctx context.Context, reply, userInput string) string {
	switch a.stage {
	case StageGreeting:
		a.advance(StageInfoGathering)

	case StageInfoGathering:
		extract.Apply(a.profile, userInput)
		if a.profile.BasicFieldsKnown() >= 2 && strings.Contains(strings.ToLower(userInput), "tech") {
			a.advance(StageTechStack)
		}

	case StageTechStack:
		extract.Classify(a.profile, userInput)
		if a.profile.Classified() {
			a.advance(StageTechQuestions)
		}

	case StageTechQuestions:
		if len(a.techQuestions) == 0 && a.profile.Classified() {
			a.techQuestions = a.generateTechnicalQuestions(ctx)
		}
		a.questionsAsked++
		if a.questionsAsked >= questionsPerInterview {
			a.advance(StageConclusion)
			a.active = false
		}

	case StageConclusion:
		// Terminal; nothing left to extract.
	}

	return reply
}

func (a *Assistant) advance(next Stage) {
	if next <= a.stage {
		return
	}
	a.logger.Info("stage transition",
		zap.String("from", a.stage.String()),
		zap.String("to", next.String()),
	)
	a.stage = next
}

func (a *Assistant) endingRequested(userInput string) bool {
	input := strings.ToLower(strings.TrimSpace(userInput))
	for _, keyword := range endingKeywords {
		if strings.Contains(input, keyword) {
			return true
		}
	}
	return false
}

func (a *Assistant) buildTurnPrompt(userInput, history string) string {
	prompt := strings.ReplaceAll(turnPromptTemplate, "{{SYSTEM_PROMPT}}", systemPrompt)
	prompt = strings.ReplaceAll(prompt, "{{STAGE}}", strings.ToUpper(a.stage.String()))
	prompt = strings.ReplaceAll(prompt, "{{QUESTIONS_ASKED}}", strconv.Itoa(a.questionsAsked))
	prompt = strings.ReplaceAll(prompt, "{{ACTIVE}}", strconv.FormatBool(a.active))
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_INFO}}", a.profile.PromptJSON())
	prompt = strings.ReplaceAll(prompt, "{{HISTORY}}", history)
	prompt = strings.ReplaceAll(prompt, "{{INPUT}}", userInput)
	return prompt
}

// generateTechnicalQuestions asks the generation service for exactly four
// tagged questions tailored to the candidate's stack, experience and desired
// position. The result is either the four tagged lines or a single-element
// fallback; never two or three elements.
func (a *Assistant) generateTechnicalQuestions(ctx context.Context) []string {
	stackJSON, err := json.MarshalIndent(a.profile.TechStack, "", "  ")
	if err != nil {
		stackJSON = []byte("{}")
	}

	experience := a.profile.Experience
	if experience == "" {
		experience = defaultExperience
	}

	position := a.profile.Position
	if position == "" {
		position = defaultPosition
	}

	prompt := strings.ReplaceAll(questionsPromptTemplate, "{{TECH_STACK}}", string(stackJSON))
	prompt = strings.ReplaceAll(prompt, "{{EXPERIENCE}}", experience)
	prompt = strings.ReplaceAll(prompt, "{{POSITION}}", position)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Warn("question generation failed", zap.Error(err))
		topic := extract.FirstCategory(a.profile.TechStack)
		if topic == "" {
			topic = "programming"
		}
		return []string{fmt.Sprintf("Let me ask you about your experience with %s.", topic)}
	}

	questions := parseQuestions(raw)
	if len(questions) != questionsPerInterview {
		a.logger.Warn("question generation returned malformed output",
			zap.Int("tagged_lines", len(questions)),
			zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
		)
		return []string{raw}
	}

	a.logger.Info("technical questions generated", zap.Int("count", len(questions)))
	return questions
}

var questionTags = []string{"Q1:", "Q2:", "Q3:", "Q4:"}

// parseQuestions keeps only the lines tagged Q1: through Q4:.
func parseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		for _, tag := range questionTags {
			if strings.HasPrefix(line, tag) {
				questions = append(questions, line)
				break
			}
		}
	}
	return questions
}

// farewell renders the deterministic closing message from the final record.
func (a *Assistant) farewell() string {
	return fmt.Sprintf(farewellTemplate, a.profile.Summary())
}
