package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhall/mystery-engine/pkg/catalog"
)

func TestNewSession(t *testing.T) {
	s := NewSession("Harry")

	assert.NotEqual(t, "", s.ID.String())
	assert.Equal(t, "Harry", s.PlayerName)
	assert.Equal(t, catalog.StartLocation, s.Location)
	assert.Equal(t, 0, s.CluesFound)
	assert.Empty(t, s.Evidence)
	assert.False(t, s.CreatedAt.IsZero())

	require.Len(t, s.Timeline, 1)
	welcome := s.Timeline[0]
	assert.Equal(t, "Professor Dumbledore", welcome.Speaker)
	assert.Equal(t, "purple", welcome.AvatarType)
	assert.Contains(t, welcome.Text, "mysterious artifact")
}

func TestNewSession_DefaultPlayerName(t *testing.T) {
	s := NewSession("")
	assert.Equal(t, DefaultPlayerName, s.PlayerName)
}

func TestAddMessage(t *testing.T) {
	s := NewSession("Harry")

	msg := s.AddMessage("Harry", "look around", AvatarPlayer)
	assert.Equal(t, "Harry", msg.Speaker)
	assert.Equal(t, "look around", msg.Text)
	assert.Equal(t, AvatarPlayer, msg.AvatarType)

	require.Len(t, s.Timeline, 2)
	assert.Equal(t, msg, s.Timeline[1])
}

func TestAddEvidence(t *testing.T) {
	s := NewSession("Harry")

	assert.True(t, s.AddEvidence("A strange shimmer"))
	assert.Equal(t, 1, s.CluesFound)
	assert.True(t, s.HasEvidence("A strange shimmer"))

	// A repeated clue must not move the counter.
	assert.False(t, s.AddEvidence("A strange shimmer"))
	assert.Equal(t, 1, s.CluesFound)
	assert.Len(t, s.Evidence, 1)

	assert.True(t, s.AddEvidence("library"))
	assert.Equal(t, 2, s.CluesFound)
	assert.Len(t, s.Evidence, 2)
}

func TestRecentHistory(t *testing.T) {
	s := NewSession("Harry")
	s.AddMessage("Harry", "first", AvatarPlayer)
	s.AddMessage(SpeakerNarrator, "second", AvatarNarrator)
	s.AddMessage("Harry", "third", AvatarPlayer)

	recent := s.RecentHistory(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Text)
	assert.Equal(t, "third", recent[1].Text)

	all := s.RecentHistory(10)
	assert.Len(t, all, 4)

	assert.Nil(t, s.RecentHistory(0))
}

func TestSnapshot(t *testing.T) {
	cat := catalog.Default()
	s := NewSession("Harry")
	s.AddEvidence("A strange shimmer")

	view := s.Snapshot(cat)
	assert.Equal(t, "The Great Hall", view.Location)
	assert.Equal(t, 1, view.CluesFound)
	assert.Equal(t, s.Timeline, view.Timeline)
	assert.Equal(t, s.Evidence, view.Evidence)
	assert.Len(t, view.NPCs, 3)
	assert.Equal(t, "Draco Malfoy", view.NPCs["draco"].Display)
}

func TestClone(t *testing.T) {
	s := NewSession("Harry")
	s.AddEvidence("A strange shimmer")

	clone := s.Clone()
	clone.AddMessage("Harry", "hello", AvatarPlayer)
	clone.AddEvidence("library")
	clone.Location = "library"

	assert.Len(t, s.Timeline, 1)
	assert.Len(t, s.Evidence, 1)
	assert.Equal(t, 1, s.CluesFound)
	assert.Equal(t, catalog.StartLocation, s.Location)

	var nilSession *Session
	assert.Nil(t, nilSession.Clone())
}
