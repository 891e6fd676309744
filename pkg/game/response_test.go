package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNPCResponse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantReply    string
		wantMentions []string
		wantTone     string
	}{
		{
			name:         "complete object",
			raw:          `{"npc_reply":"I saw nothing.","mentions":["library","ancient map"],"tone":"nervous"}`,
			wantReply:    "I saw nothing.",
			wantMentions: []string{"library", "ancient map"},
			wantTone:     "nervous",
		},
		{
			name:         "missing keys use defaults",
			raw:          `{}`,
			wantReply:    "I can't answer that right now.",
			wantMentions: []string{},
			wantTone:     "neutral",
		},
		{
			name:         "partial object",
			raw:          `{"npc_reply":"Leave me alone."}`,
			wantReply:    "Leave me alone.",
			wantMentions: []string{},
			wantTone:     "neutral",
		},
		{
			name:         "empty reply string is preserved",
			raw:          `{"npc_reply":"","tone":"calm"}`,
			wantReply:    "",
			wantMentions: []string{},
			wantTone:     "calm",
		},
		{
			name:         "malformed JSON echoes raw text",
			raw:          "I refuse to emit JSON",
			wantReply:    "(OOC: My AI brain malfunctioned and returned invalid JSON: I refuse to emit JSON)",
			wantMentions: []string{},
			wantTone:     "confused",
		},
		{
			name:         "truncated JSON",
			raw:          `{"npc_reply":"hal`,
			wantReply:    `(OOC: My AI brain malfunctioned and returned invalid JSON: {"npc_reply":"hal)`,
			wantMentions: []string{},
			wantTone:     "confused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ParseNPCResponse(tt.raw)
			assert.Equal(t, tt.wantReply, resp.Reply)
			assert.Equal(t, tt.wantMentions, resp.Mentions)
			assert.Equal(t, tt.wantTone, resp.Tone)
		})
	}
}
