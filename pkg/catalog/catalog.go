package catalog

import "strings"

// Location is a place in the game world.
type Location struct {
	Key         string `json:"-"`
	Display     string `json:"display"`
	Description string `json:"description"`
}

// NPC is a non-player character. Persona is free text fed to the
// prompt builder when the NPC speaks.
type NPC struct {
	Key     string `json:"-"`
	Display string `json:"display"`
	Avatar  string `json:"avatar"`
	Persona string `json:"persona"`
}

// Catalog holds the immutable location and NPC tables shared by all
// sessions. Entries are kept in insertion order so that substring
// matching is first-match deterministic.
type Catalog struct {
	locations []Location
	npcs      []NPC

	locationsByKey map[string]Location
	npcsByKey      map[string]NPC
}

// StartLocation is where every new session begins.
const StartLocation = "great hall"

// Default returns the built-in mystery catalog.
func Default() *Catalog {
	c := &Catalog{
		locationsByKey: make(map[string]Location),
		npcsByKey:      make(map[string]NPC),
	}

	c.addLocation(Location{
		Key:         "great hall",
		Display:     "The Great Hall",
		Description: "The Great Hall is magnificent as always, with floating candles illuminating the enchanted ceiling. You feel a chill here.",
	})
	c.addLocation(Location{
		Key:         "library",
		Display:     "The Library",
		Description: "Thousands of dusty books line the shelves. Madam Pince watches you suspiciously.",
	})
	c.addLocation(Location{
		Key:         "courtyard",
		Display:     "The Courtyard",
		Description: "The open courtyard is cold, with a stone fountain at its center. Students rush to and fro.",
	})
	c.addLocation(Location{
		Key:         "dumbledore's office",
		Display:     "Dumbledore's Office",
		Description: "A circular room filled with ancient, whirring instruments and the sound of a sleeping phoenix.",
	})

	c.addNPC(NPC{
		Key:     "professor dumbledore",
		Display: "Professor Dumbledore",
		Avatar:  "purple",
		Persona: "Wise, calm, and slightly detached headmaster. Speaks in a reassuring but enigmatic tone.",
	})
	c.addNPC(NPC{
		Key:     "draco",
		Display: "Draco Malfoy",
		Avatar:  "green",
		Persona: "Sly, arrogant, and easily panicked. Will deny everything and try to shift blame.",
	})
	c.addNPC(NPC{
		Key:     "evelyn",
		Display: "Evelyn (Fellow Student)",
		Avatar:  "brown",
		Persona: "A studious and quiet Ravenclaw. Observant but nervous about speaking out.",
	})

	return c
}

func (c *Catalog) addLocation(loc Location) {
	c.locations = append(c.locations, loc)
	c.locationsByKey[loc.Key] = loc
}

func (c *Catalog) addNPC(npc NPC) {
	c.npcs = append(c.npcs, npc)
	c.npcsByKey[npc.Key] = npc
}

// Locations returns all locations in insertion order.
func (c *Catalog) Locations() []Location {
	return c.locations
}

// NPCs returns all NPCs in insertion order.
func (c *Catalog) NPCs() []NPC {
	return c.npcs
}

// Location looks up a location by exact key.
func (c *Catalog) Location(key string) (Location, bool) {
	loc, ok := c.locationsByKey[key]
	return loc, ok
}

// NPC looks up an NPC by exact key.
func (c *Catalog) NPC(key string) (NPC, bool) {
	npc, ok := c.npcsByKey[key]
	return npc, ok
}

// NPCTable returns the NPC table keyed for the state snapshot.
func (c *Catalog) NPCTable() map[string]NPC {
	table := make(map[string]NPC, len(c.npcs))
	for _, npc := range c.npcs {
		table[npc.Key] = npc
	}
	return table
}

// MatchLocation finds the first location whose key is contained in the
// lowercased target text. Containment rather than exact match is the
// game's established movement semantics.
func (c *Catalog) MatchLocation(target string) (Location, bool) {
	target = strings.ToLower(target)
	for _, loc := range c.locations {
		if strings.Contains(target, loc.Key) {
			return loc, true
		}
	}
	return Location{}, false
}

// MatchNPC finds the first NPC whose key appears in the lowercased
// player text. First match in table order wins.
func (c *Catalog) MatchNPC(text string) (NPC, bool) {
	text = strings.ToLower(text)
	for _, npc := range c.npcs {
		if strings.Contains(text, npc.Key) {
			return npc, true
		}
	}
	return NPC{}, false
}
