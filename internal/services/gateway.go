package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/emberhall/mystery-engine/pkg/game"
)

// DefaultGatewayTimeout bounds a single action's model call.
const DefaultGatewayTimeout = 30 * time.Second

// Gateway wraps an LLMService with the narrative-continuity contract:
// it always returns a syntactically valid JSON payload, never an
// error. Provider failures get one bounded retry, then are converted
// into an in-character distress payload.
type Gateway struct {
	llm     LLMService
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure Gateway satisfies the engine's seam
var _ game.NPCGateway = (*Gateway)(nil)

func NewGateway(llm LLMService, logger *slog.Logger) *Gateway {
	return &Gateway{
		llm:     llm,
		timeout: DefaultGatewayTimeout,
		logger:  logger,
	}
}

// Generate forwards the prompt to the underlying service. The
// returned error is always nil; failures are absorbed into the
// payload.
func (g *Gateway) Generate(ctx context.Context, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.llm.GenerateReply(ctx, userPrompt)
	if err != nil && ctx.Err() == nil {
		g.logger.Warn("LLM call failed, retrying once", "error", err)
		raw, err = g.llm.GenerateReply(ctx, userPrompt)
	}
	if err != nil {
		g.logger.Error("LLM call failed", "error", err)
		return g.failurePayload(err), nil
	}

	return raw, nil
}

func (g *Gateway) failurePayload(cause error) string {
	data, err := json.Marshal(npcPayload{
		NPCReply: fmt.Sprintf("(OOC: My AI brain fizzled. I couldn't process that. Error: %v)", cause),
		Mentions: []string{},
		Tone:     "confused",
	})
	if err != nil {
		// Marshalling a flat struct of strings cannot fail; keep the
		// contract anyway.
		return `{"npc_reply":"(OOC: My AI brain fizzled. I couldn't process that.)","mentions":[],"tone":"confused"}`
	}
	return string(data)
}
