package war

import "strings"

// Nation statuses. Anything else is of the form "Puppet State of <name>".
const (
	StatusIndependent  = "Independent"
	puppetStatusPrefix = "Puppet State of "
)

// Tag is a time-limited marker on a nation. Tags carrying combat
// bonuses apply only against the nation named in Opponent; penalty tags
// from lost wars usually carry no bonuses at all.
type Tag struct {
	Expires     int    `json:"expires"`
	Opponent    string `json:"opponent,omitempty"`
	RollBonus   int    `json:"rollBonus,omitempty"`
	DamageBonus int    `json:"damageBonus,omitempty"`
}

// Nation is one player state. Unit and improvement slots live on
// regions; the counters here are running totals kept in sync by the
// engine's place/destroy paths.
type Nation struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Government       string          `json:"government"`
	Status           string          `json:"status"`
	Research         map[string]bool `json:"research,omitempty"`
	Tags             map[string]Tag  `json:"tags,omitempty"`
	Stockpiles       map[string]int  `json:"stockpiles,omitempty"`
	UnitCount        int             `json:"unitCount"`
	ImprovementCount int             `json:"improvementCount"`
	MissileCount     int             `json:"missileCount"`
	NukeCount        int             `json:"nukeCount"`
	// MilitaryCapacity caps how many units the nation may keep fielded,
	// enforced at end of turn. Zero or negative disables the cap.
	MilitaryCapacity int `json:"militaryCapacity"`
}

// HasTech reports whether the nation has completed the named research.
func (n *Nation) HasTech(name string) bool {
	return n.Research[name]
}

// IsPuppet reports whether the nation is a puppet state.
func (n *Nation) IsPuppet() bool {
	return strings.HasPrefix(n.Status, puppetStatusPrefix)
}

// OverlordName returns the name of the nation's overlord, or "" if the
// nation is independent.
func (n *Nation) OverlordName() string {
	if !n.IsPuppet() {
		return ""
	}
	return strings.TrimPrefix(n.Status, puppetStatusPrefix)
}

// MakePuppetOf sets the nation's status to a puppet of the given overlord.
func (n *Nation) MakePuppetOf(overlord *Nation) {
	n.Status = puppetStatusPrefix + overlord.Name
}

// Stockpile returns the named resource stockpile (0 if absent).
func (n *Nation) Stockpile(resource string) int {
	return n.Stockpiles[resource]
}

// AdjustStockpile applies a delta to the named stockpile, flooring at 0.
func (n *Nation) AdjustStockpile(resource string, delta int) {
	if n.Stockpiles == nil {
		n.Stockpiles = make(map[string]int)
	}
	v := n.Stockpiles[resource] + delta
	if v < 0 {
		v = 0
	}
	n.Stockpiles[resource] = v
}

// AddTag attaches a time-limited tag, replacing any existing tag with
// the same name.
func (n *Nation) AddTag(name string, tag Tag) {
	if n.Tags == nil {
		n.Tags = make(map[string]Tag)
	}
	n.Tags[name] = tag
}
