// Package game implements the session/action engine: deterministic
// verb handling, NPC dispatch through the LLM gateway, and the
// per-request orchestration that ties them together.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberhall/mystery-engine/pkg/catalog"
	"github.com/emberhall/mystery-engine/pkg/prompts"
	"github.com/emberhall/mystery-engine/pkg/state"
)

// FallbackText is returned when the input matches neither a
// deterministic verb nor an NPC.
const FallbackText = "You try to execute the action, but it doesn't seem to have a clear effect. Try 'go to [location]', 'inspect [item]', or 'talk to [NPC]'."

// NPCGateway produces raw model output for a prompt. Implementations
// are expected to absorb provider failures and return a syntactically
// valid JSON payload; a returned error is treated as an unexpected
// fault and narrated as a system error.
type NPCGateway interface {
	Generate(ctx context.Context, userPrompt string) (string, error)
}

// Engine runs one player action against a session.
type Engine struct {
	catalog *catalog.Catalog
	gateway NPCGateway
	logger  *slog.Logger
}

func NewEngine(cat *catalog.Catalog, gateway NPCGateway, logger *slog.Logger) *Engine {
	return &Engine{
		catalog: cat,
		gateway: gateway,
		logger:  logger,
	}
}

// Catalog exposes the engine's shared catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// HandleAction records the player's input, then resolves it through
// the deterministic handler, NPC dispatch, or the generic fallback,
// in that order. The session is mutated in place; the returned
// message is the single reply for the client.
func (e *Engine) HandleAction(ctx context.Context, s *state.Session, playerText string) state.Message {
	// The player's utterance is always recorded, even if the action
	// turns out to be unrecognized.
	s.AddMessage(s.PlayerName, playerText, state.AvatarPlayer)

	if reply, handled := e.handleDeterministic(s, playerText); handled {
		return reply
	}

	if npc, ok := e.catalog.MatchNPC(playerText); ok {
		return e.handleNPCDispatch(ctx, s, npc, playerText)
	}

	fallback := s.AddMessage(state.SpeakerNarrator, FallbackText, state.AvatarNarrator)
	return fallback
}

func (e *Engine) handleNPCDispatch(ctx context.Context, s *state.Session, npc catalog.NPC, playerText string) state.Message {
	userPrompt := prompts.BuildUserPrompt(s, e.catalog, npc, playerText)

	raw, err := e.gateway.Generate(ctx, userPrompt)
	if err != nil {
		// The gateway contract is never-fail, so anything surfacing
		// here is an unexpected fault. Narrate it instead of breaking
		// the request. The error message is not added to the timeline.
		e.logger.Error("NPC dispatch failed", "error", err, "npc", npc.Key)
		return state.Message{
			Speaker:    state.SpeakerSystem,
			Text:       fmt.Sprintf("An unexpected error occurred: %v", err),
			AvatarType: state.AvatarSystem,
		}
	}

	resp := ParseNPCResponse(raw)
	e.logger.Debug("NPC reply parsed", "npc", npc.Key, "tone", resp.Tone, "mentions", len(resp.Mentions))

	reply := s.AddMessage(npc.Display, resp.Reply, npc.Avatar)
	for _, mention := range resp.Mentions {
		s.AddEvidence(mention)
	}
	return reply
}
