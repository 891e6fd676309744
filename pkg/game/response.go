package game

import (
	"encoding/json"
	"fmt"
)

const (
	defaultReply = "I can't answer that right now."
	defaultTone  = "neutral"
)

// NPCResponse is the parsed form of the model's JSON output.
type NPCResponse struct {
	Reply    string
	Mentions []string
	Tone     string
}

// ParseNPCResponse extracts reply, mentions, and tone from raw model
// output. It never fails: missing keys fall back to defaults, and
// unparseable output is echoed back inside an explanatory wrapper so
// the narrative keeps moving.
func ParseNPCResponse(raw string) NPCResponse {
	var payload struct {
		Reply    *string  `json:"npc_reply"`
		Mentions []string `json:"mentions"`
		Tone     string   `json:"tone"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return NPCResponse{
			Reply:    fmt.Sprintf("(OOC: My AI brain malfunctioned and returned invalid JSON: %s)", raw),
			Mentions: []string{},
			Tone:     "confused",
		}
	}

	resp := NPCResponse{
		Reply:    defaultReply,
		Mentions: payload.Mentions,
		Tone:     payload.Tone,
	}
	if payload.Reply != nil {
		resp.Reply = *payload.Reply
	}
	if resp.Mentions == nil {
		resp.Mentions = []string{}
	}
	if resp.Tone == "" {
		resp.Tone = defaultTone
	}
	return resp
}
