// Package prompts assembles the prompt contract handed to the LLM
// gateway: a fixed system instruction plus a bounded-context user
// prompt built from session state, NPC persona, and player text.
package prompts

import (
	"fmt"
	"strings"

	"github.com/emberhall/mystery-engine/pkg/catalog"
	"github.com/emberhall/mystery-engine/pkg/state"
)

// SystemInstruction pins the model to in-character replies capped at
// three sentences, terminated by a single JSON metadata object.
const SystemInstruction = "You are an NPC in a magical-school murder mystery game. Keep replies strictly in-character and conversational. " +
	"Your response must be a maximum of 3 sentences. " +
	"Do NOT add any explanation outside of the dialogue and the final JSON object. " +
	"On the last line of your entire output, output a single JSON object with the following keys and values: " +
	"1. 'npc_reply': The text of your reply (DO NOT include the speaker name here). " +
	"2. 'mentions': A list of crucial object or suspect names mentioned in your reply (e.g., ['ancient map', 'Professor S']). " +
	"3. 'tone': A single word describing your current tone (e.g., 'nervous', 'calm', 'arrogant')."

// FallbackPersona is used if the matched NPC carries no persona text.
const FallbackPersona = "A standard Hogwarts student. Respond truthfully but briefly."

// HistoryLimit bounds how many timeline entries are rendered into the
// prompt.
const HistoryLimit = 5

// BuildUserPrompt renders the user portion of the prompt. Pure
// function of its inputs.
func BuildUserPrompt(s *state.Session, cat *catalog.Catalog, npc catalog.NPC, playerText string) string {
	persona := npc.Persona
	if persona == "" {
		persona = FallbackPersona
	}

	lines := make([]string, 0, HistoryLimit)
	for _, msg := range s.RecentHistory(HistoryLimit) {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Speaker, msg.Text))
	}
	recentHistory := strings.Join(lines, "\n")

	evidenceList := "None."
	if len(s.Evidence) > 0 {
		evidenceList = "\n- " + strings.Join(s.Evidence, "\n- ")
	}

	locationDisplay := s.Location
	if loc, ok := cat.Location(s.Location); ok {
		locationDisplay = loc.Display
	}

	return fmt.Sprintf(
		"--- CURRENT CONTEXT ---\n"+
			"NPC NAME: %s\n"+
			"NPC PERSONA: %s\n"+
			"PLAYER LOCATION: %s\n"+
			"EVIDENCE COLLECTED:\n%s\n"+
			"--- CONVERSATION HISTORY (Most Recent) ---\n"+
			"%s\n\n"+
			"--- PLAYER ACTION ---\n"+
			"PLAYER: %s\n"+
			"NPC REPLY AND JSON METADATA:",
		npc.Display, persona, locationDisplay, evidenceList, recentHistory, playerText)
}
