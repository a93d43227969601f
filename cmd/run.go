package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/ai/gemini"
	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/interview"
	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/logger"
	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/secrets"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// historyWindowSize is how many trailing messages are serialized into the
	// prompting context each turn.
	historyWindowSize = 6

	roleUser      = "user"
	roleAssistant = "assistant"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive screening interview session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("model", "m", "", "gemini model to use. Default is the built-in model.")

	viper.BindPFlag("ai.gemini.model", runCmd.Flags().Lookup("model"))
}

// message is one turn of the transcript. The transcript is owned here, at the
// boundary; the assistant only ever sees a serialized window of it.
type message struct {
	role    string
	content string
}

// historyWindow serializes the trailing messages as "role: content" lines.
func historyWindow(messages []message, limit int) string {
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.role, msg.content))
	}

	return strings.Join(lines, "\n")
}

// run drives one interactive interview session in the terminal.
func run() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talentscout assistant", zap.String("version", version))

	if config != nil && config.AI != nil {
		provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
		if provider != "" && provider != "gemini" {
			logger.Fatal("unsupported ai provider", zap.String("provider", config.AI.Provider))
		}
	}

	gcfg := geminiConfig(config)

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: gcfg.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		logger.Fatal(
			"loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY in the environment or .env, or ai.gemini.api-key-file in the configuration file"),
		)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, gcfg.MaxRetries, logger)
	if err != nil {
		logger.Fatal("creating gemini generator", zap.Error(err))
	}

	assistant, err := interview.New(generator, logger, gcfg.MaxLogLength)
	if err != nil {
		logger.Fatal("creating interview assistant", zap.Error(err))
	}

	logger.Info("interview session created",
		zap.String("session_id", assistant.SessionID()),
		zap.String("model", generator.Model()),
	)

	assistantHeader := color.New(color.FgMagenta, color.Bold)
	statusLine := color.New(color.FgGreen)

	messages := []message{{role: roleAssistant, content: interview.Greeting}}

	assistantHeader.Println("assistant:")
	fmt.Println(interview.Greeting)

	input := promptui.Prompt{Label: "You"}

	for assistant.Active() {
		userInput, err := input.Run()
		if err != nil {
			logger.Info("exiting", zap.Error(err))
			break
		}

		if strings.TrimSpace(userInput) == "" {
			continue
		}

		messages = append(messages, message{role: roleUser, content: userInput})

		reply := assistant.GenerateResponse(ctx, userInput, historyWindow(messages, historyWindowSize))
		messages = append(messages, message{role: roleAssistant, content: reply})

		status := assistant.Stage().Status()
		statusLine.Printf("\n%s %s (%d/%d)\n\n", status.Icon, status.Label, assistant.Stage().Index()+1, interview.NumStages)

		assistantHeader.Println("assistant:")
		fmt.Println(reply)
	}

	profile := assistant.Profile()
	// do not bother error since the profile is a plain struct
	pretty, _ := json.MarshalIndent(profile, "", "  ")
	logger.Debug(fmt.Sprintf("collected candidate record: \n %s", pretty))

	logger.Info("interview session finished",
		zap.String("stage", assistant.Stage().String()),
		zap.Int("questions_asked", assistant.QuestionsAsked()),
		zap.Int("technologies", profile.TechCount()),
	)
}

// geminiConfig returns the configured gemini settings, falling back to
// defaults when the config file or its ai section is absent.
func geminiConfig(config *Config) *GeminiConfig {
	if config == nil || config.AI == nil || config.AI.Gemini == nil {
		return &GeminiConfig{}
	}
	return config.AI.Gemini
}
