package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// DefaultCannedDelay stands in for real model latency in offline mode.
const DefaultCannedDelay = time.Second

// CannedService implements LLMService without any external
// capability. It returns a fixed plausible in-character payload and
// is used when no credential is configured, and in tests.
type CannedService struct {
	delay  time.Duration
	logger *slog.Logger
}

// Ensure CannedService implements LLMService
var _ LLMService = (*CannedService)(nil)

func NewCannedService(delay time.Duration, logger *slog.Logger) *CannedService {
	return &CannedService{
		delay:  delay,
		logger: logger,
	}
}

type npcPayload struct {
	NPCReply string   `json:"npc_reply"`
	Mentions []string `json:"mentions"`
	Tone     string   `json:"tone"`
}

// GenerateReply returns the canned payload after the configured
// artificial delay.
func (c *CannedService) GenerateReply(ctx context.Context, userPrompt string) (string, error) {
	c.logger.Info("Using canned LLM response")

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	data, err := json.Marshal(npcPayload{
		NPCReply: "I was in the library when I heard the commotion. I didn't see anything unusual, I swear.",
		Mentions: []string{"library"},
		Tone:     "nervous",
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
