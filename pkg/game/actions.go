package game

import (
	"fmt"
	"strings"

	"github.com/emberhall/mystery-engine/pkg/catalog"
	"github.com/emberhall/mystery-engine/pkg/state"
)

// ShimmerClue is discovered by inspecting the shimmer in the Great
// Hall.
const ShimmerClue = "The magical trace of the missing artifact."

// handleDeterministic pattern-matches the player text against the
// fixed verbs and mutates the session directly. The bool result
// distinguishes "handled" from "no match"; an empty reply text is
// still a handled action.
func (e *Engine) handleDeterministic(s *state.Session, playerText string) (state.Message, bool) {
	action := strings.ToLower(strings.TrimSpace(playerText))

	if target, ok := strings.CutPrefix(action, "go to "); ok {
		return e.handleMovement(s, strings.TrimSpace(target)), true
	}

	if strings.HasPrefix(action, "inspect ") || strings.HasPrefix(action, "examine ") {
		parts := strings.SplitN(action, " ", 2)
		item := strings.TrimSpace(parts[1])
		return e.handleInspect(s, item), true
	}

	return state.Message{}, false
}

func (e *Engine) handleMovement(s *state.Session, target string) state.Message {
	loc, ok := e.catalog.MatchLocation(target)
	if !ok {
		return narration(fmt.Sprintf("You can't seem to find a path to '%s'. Try a common Hogwarts location.", target))
	}

	if s.Location == loc.Key {
		return narration(fmt.Sprintf("You are already in %s.", loc.Display))
	}

	s.Location = loc.Key
	s.AddMessage(state.SpeakerNarrator, fmt.Sprintf("You travel to **%s**.", loc.Display), state.AvatarNarrator)
	// The travel narration lands on the timeline; the description is
	// the returned reply.
	return narration(loc.Description)
}

func (e *Engine) handleInspect(s *state.Session, item string) state.Message {
	if item == "shimmer" && s.Location == catalog.StartLocation {
		if s.AddEvidence(ShimmerClue) {
			return narration(fmt.Sprintf("As you examine the area, you discover a peculiar shimmer! It leaves behind a magical trace - a new clue: **%s**.", ShimmerClue))
		}
		return narration("You've already inspected the shimmer. It seems to point toward the library, but you have nothing new to learn here.")
	}

	return narration(fmt.Sprintf("You carefully inspect the **%s**. You find nothing out of the ordinary, but you feel like you should be looking for something else...", item))
}

func narration(text string) state.Message {
	return state.Message{
		Speaker:    state.SpeakerNarrator,
		Text:       text,
		AvatarType: state.AvatarNarrator,
	}
}
