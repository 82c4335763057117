package describe

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/villapro/villapro/internal/logger"
)

// Fallback is returned whenever generation cannot produce text. The
// form keeps working: the agent writes the description manually.
const Fallback = "Automatic description unavailable. Please write one manually."

// DefaultModel is used when no model is configured.
const DefaultModel = shared.ChatModelGPT4oMini

// Generator produces a marketing blurb for a villa listing. It is
// best-effort by contract: Generate never returns an error and never
// blocks a form submission on provider trouble.
type Generator struct {
	client *openai.Client // nil when no API key is configured
	model  shared.ChatModel
	log    logger.Logger
}

// NewGenerator creates the generator. An empty apiKey disables remote
// calls entirely; Generate then always answers with the fallback.
func NewGenerator(apiKey, model string, log logger.Logger) *Generator {
	g := &Generator{model: DefaultModel, log: log}
	if model != "" {
		g.model = shared.ChatModel(model)
	}
	if apiKey == "" {
		return g
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	g.client = &c
	return g
}

// Enabled reports whether a provider credential is configured.
func (g *Generator) Enabled() bool { return g.client != nil }

// Generate asks the model for a persuasive listing description.
// Preconditions (non-empty name and location, monthly price > 0) are
// the caller's responsibility; this function does not validate them.
func (g *Generator) Generate(ctx context.Context, name, location string, priceMonthly float64) string {
	if g.client == nil {
		g.log.Debug("description generation skipped, no api key configured")
		return Fallback
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(Prompt(name, location, priceMonthly)),
		},
	})
	if err != nil {
		g.log.Warn("description generation failed",
			logger.String("villa", name),
			logger.Float64("price_monthly", priceMonthly),
			logger.Error(err))
		return Fallback
	}
	if len(resp.Choices) == 0 {
		g.log.Warn("description generation returned no choices")
		return Fallback
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Fallback
	}
	return text
}

// Prompt builds the single-shot instruction sent to the model. The
// length bound is a prompt instruction, not enforced programmatically.
func Prompt(name, location string, priceMonthly float64) string {
	return fmt.Sprintf(
		`Act as a world-class luxury real estate agent. Write a persuasive marketing description for a villa named %q in %q. Price is $%.0f/month. Between 60 and 150 words.`,
		name, location, priceMonthly)
}
