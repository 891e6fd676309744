package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_Tables(t *testing.T) {
	c := Default()

	assert.Len(t, c.Locations(), 4)
	assert.Len(t, c.NPCs(), 3)

	start, ok := c.Location(StartLocation)
	assert.True(t, ok)
	assert.Equal(t, "The Great Hall", start.Display)

	draco, ok := c.NPC("draco")
	assert.True(t, ok)
	assert.Equal(t, "Draco Malfoy", draco.Display)
	assert.Equal(t, "green", draco.Avatar)

	_, ok = c.Location("astronomy tower")
	assert.False(t, ok)
}

func TestMatchLocation(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		target  string
		wantKey string
		wantOK  bool
	}{
		{"exact key", "library", "library", true},
		{"key embedded in longer target", "the library please", "library", true},
		{"mixed case", "The Great Hall", "great hall", true},
		{"apostrophe key", "dumbledore's office", "dumbledore's office", true},
		{"unknown", "the quidditch pitch", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := c.MatchLocation(tt.target)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantKey, loc.Key)
			}
		})
	}
}

func TestMatchNPC(t *testing.T) {
	c := Default()

	npc, ok := c.MatchNPC("I want to ask Draco about the artifact")
	assert.True(t, ok)
	assert.Equal(t, "draco", npc.Key)

	npc, ok = c.MatchNPC("talk to professor dumbledore")
	assert.True(t, ok)
	assert.Equal(t, "professor dumbledore", npc.Key)

	_, ok = c.MatchNPC("hello there")
	assert.False(t, ok)
}

func TestMatchNPC_FirstMatchInTableOrder(t *testing.T) {
	c := Default()

	// Both dumbledore and draco appear; table order decides.
	npc, ok := c.MatchNPC("ask professor dumbledore about draco")
	assert.True(t, ok)
	assert.Equal(t, "professor dumbledore", npc.Key)
}

func TestNPCTable(t *testing.T) {
	c := Default()
	table := c.NPCTable()
	assert.Len(t, table, 3)
	assert.Equal(t, "Evelyn (Fellow Student)", table["evelyn"].Display)
}
