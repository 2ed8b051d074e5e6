// Package war implements the combat and war resolution engine: encounter
// and missile-strike resolution, war score bookkeeping, and the war
// lifecycle from declaration through forced or negotiated termination.
//
// The engine is single-threaded and turn-synchronous. A GameState is
// handed in whole to each entry point; there is no global registry and
// no lock discipline because turn processing owns the state exclusively.
package war

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"
)

var (
	// ErrNoActiveWar is returned when an encounter or strike is requested
	// between nations that share no pending war. Move validation upstream
	// must guarantee a war exists, so hitting this is a caller bug.
	ErrNoActiveWar = errors.New("no active war between nations")

	// ErrUnknownNation and ErrUnknownRegion flag lookups of ids that do
	// not exist in the state arena.
	ErrUnknownNation = errors.New("unknown nation")
	ErrUnknownRegion = errors.New("unknown region")
)

// AllianceKind classifies an alliance record.
type AllianceKind string

const (
	AllianceDefensePact    AllianceKind = "defense pact"
	AllianceTradeAgreement AllianceKind = "trade agreement"
)

// Alliance is an active pact between two nations.
type Alliance struct {
	Kind AllianceKind `json:"kind"`
	A    string       `json:"a"`
	B    string       `json:"b"`
}

// Truce is a post-war non-aggression record between two signatories.
type Truce struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Expires int    `json:"expires"` // last turn the truce is in force
}

// GameState is the arena of all mutable game entities plus the injected
// services the engine needs: static scenario tables, the adjacency
// graph, a seedable random source, the notification sink, and the
// justification prompter.
type GameState struct {
	Turn      int
	Nations   map[string]*Nation
	Regions   map[string]*Region
	Wars      map[string]*War
	Alliances []Alliance
	Truces    []Truce

	Graph    *RegionGraph
	Scenario *scenario.Scenario
	Rng      *rand.Rand
	Notifier Notifier
	Prompter Prompter
}

// NewGameState creates an empty arena with a seeded random source.
func NewGameState(sc *scenario.Scenario, g *RegionGraph, seed int64) *GameState {
	return &GameState{
		Turn:     1,
		Nations:  make(map[string]*Nation),
		Regions:  make(map[string]*Region),
		Wars:     make(map[string]*War),
		Graph:    g,
		Scenario: sc,
		Rng:      rand.New(rand.NewSource(seed)),
		Notifier: NopNotifier{},
	}
}

// Nation looks up a nation by id.
func (gs *GameState) Nation(id string) (*Nation, error) {
	n, ok := gs.Nations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNation, id)
	}
	return n, nil
}

// NationByName looks up a nation by display name.
func (gs *GameState) NationByName(name string) (*Nation, bool) {
	for _, n := range gs.Nations {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// Region looks up a region by id.
func (gs *GameState) Region(id string) (*Region, error) {
	r, ok := gs.Regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	return r, nil
}

// AddNation registers a nation in the arena.
func (gs *GameState) AddNation(n *Nation) {
	if n.Status == "" {
		n.Status = StatusIndependent
	}
	gs.Nations[n.ID] = n
}

// AddRegion registers a region in the arena.
func (gs *GameState) AddRegion(r *Region) {
	gs.Regions[r.ID] = r
}

// WarBetween returns the pending war the two nations share, if any.
func (gs *GameState) WarBetween(a, b string) (*War, bool) {
	for _, w := range gs.Wars {
		if !w.Pending() {
			continue
		}
		if w.HasCombatant(a) && w.HasCombatant(b) {
			sa, _ := w.SideOf(a)
			sb, _ := w.SideOf(b)
			if sa != sb {
				return w, true
			}
		}
	}
	return nil, false
}

// IsAtWar reports whether the two nations are on opposite sides of any
// pending war.
func (gs *GameState) IsAtWar(a, b string) bool {
	_, ok := gs.WarBetween(a, b)
	return ok
}

// IsAllied reports whether the two nations share any alliance record.
func (gs *GameState) IsAllied(a, b string) bool {
	for _, al := range gs.Alliances {
		if (al.A == a && al.B == b) || (al.A == b && al.B == a) {
			return true
		}
	}
	return false
}

// DefensePactAllies returns the ids of nations sharing a defense pact
// with the given nation.
func (gs *GameState) DefensePactAllies(id string) []string {
	var allies []string
	for _, al := range gs.Alliances {
		if al.Kind != AllianceDefensePact {
			continue
		}
		switch id {
		case al.A:
			allies = append(allies, al.B)
		case al.B:
			allies = append(allies, al.A)
		}
	}
	return allies
}

// IsTruced reports whether an unexpired truce binds the two nations.
func (gs *GameState) IsTruced(a, b string) bool {
	for _, t := range gs.Truces {
		if t.Expires < gs.Turn {
			continue
		}
		if (t.A == a && t.B == b) || (t.A == b && t.B == a) {
			return true
		}
	}
	return false
}

// CreateTruce records a truce between two nations lasting the given
// number of turns from the current one.
func (gs *GameState) CreateTruce(a, b string, length int) {
	gs.Truces = append(gs.Truces, Truce{A: a, B: b, Expires: gs.Turn + length})
}

// Overlord returns a puppet nation's overlord.
func (gs *GameState) Overlord(n *Nation) (*Nation, bool) {
	name := n.OverlordName()
	if name == "" {
		return nil, false
	}
	return gs.NationByName(name)
}

// Puppets returns every puppet state of the given overlord.
func (gs *GameState) Puppets(overlord *Nation) []*Nation {
	var puppets []*Nation
	for _, n := range gs.Nations {
		if n.OverlordName() == overlord.Name {
			puppets = append(puppets, n)
		}
	}
	return puppets
}

// sortedNationIDs returns the nation ids in stable order. Scans whose
// side effects consume the shared random source must walk the arena in
// this order, or two games with the same seed diverge.
func (gs *GameState) sortedNationIDs() []string {
	ids := make([]string, 0, len(gs.Nations))
	for id := range gs.Nations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// sortedRegionIDs returns the region ids in stable order.
func (gs *GameState) sortedRegionIDs() []string {
	ids := make([]string, 0, len(gs.Regions))
	for id := range gs.Regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OwnedRegions returns the regions owned by a nation.
func (gs *GameState) OwnedRegions(nationID string) []*Region {
	var regions []*Region
	for _, r := range gs.Regions {
		if r.Owner == nationID {
			regions = append(regions, r)
		}
	}
	return regions
}

// PlaceUnit puts a fresh unit of the given type into a region's unit
// slot and bumps the owner's count. The slot must be empty.
func (gs *GameState) PlaceUnit(regionID, unitName, ownerID string) error {
	r, err := gs.Region(regionID)
	if err != nil {
		return err
	}
	if r.Unit != nil {
		return fmt.Errorf("region %s already holds a unit", regionID)
	}
	stats, ok := gs.Scenario.Unit(unitName)
	if !ok {
		return fmt.Errorf("unknown unit type %q", unitName)
	}
	owner, err := gs.Nation(ownerID)
	if err != nil {
		return err
	}
	r.Unit = &Unit{Name: unitName, Owner: ownerID, Health: stats.MaxHealth}
	owner.UnitCount++
	return nil
}

// PlaceImprovement puts a fresh improvement into a region's improvement
// slot and bumps the region owner's count. The slot must be empty.
func (gs *GameState) PlaceImprovement(regionID, name string) error {
	r, err := gs.Region(regionID)
	if err != nil {
		return err
	}
	if r.Improvement != nil {
		return fmt.Errorf("region %s already holds an improvement", regionID)
	}
	stats, ok := gs.Scenario.Improvement(name)
	if !ok {
		return fmt.Errorf("unknown improvement type %q", name)
	}
	owner, err := gs.Nation(r.Owner)
	if err != nil {
		return err
	}
	r.Improvement = &Improvement{Name: name, Health: stats.Health}
	owner.ImprovementCount++
	return nil
}
