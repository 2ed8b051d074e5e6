package war

import (
	"fmt"

	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"
)

// Strike is an ephemeral missile attack order: who fires what at which
// region. The missile name indexes the scenario's missile table.
type Strike struct {
	NationID       string
	TargetNationID string
	TargetRegionID string
	Missile        string
}

// StrikeResult reports the outcome of one strike resolution.
type StrikeResult struct {
	Intercepted          bool
	InterceptedBy        string // defender type that made the interception
	ImprovementHit       bool
	ImprovementDestroyed bool
	UnitHit              bool
	UnitDestroyed        bool
}

// strikeDefender is one interception candidate found by the radius search.
type strikeDefender struct {
	typeName string
	value    float64
}

// ResolveStrike resolves a conventional or nuclear missile strike in two
// phases: defense search and interception first, then damage.
func (gs *GameState) ResolveStrike(s Strike) (*StrikeResult, error) {
	missile, ok := gs.Scenario.Missile(s.Missile)
	if !ok {
		return nil, fmt.Errorf("unknown missile type %q", s.Missile)
	}
	target, err := gs.Region(s.TargetRegionID)
	if err != nil {
		return nil, err
	}
	w, ok := gs.WarBetween(s.NationID, s.TargetNationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s vs %s", ErrNoActiveWar, s.NationID, s.TargetNationID)
	}

	attacker, err := gs.Nation(s.NationID)
	if err != nil {
		return nil, err
	}
	gs.spendMissile(attacker, w, s.NationID, missile)

	result := &StrikeResult{}

	// Defense phase. Standard missile defense values are interception
	// probabilities: the best defender is the highest value. Nuclear
	// defense values are lower-is-better thresholds: the best defender
	// is the lowest value.
	defender, found := gs.findStrikeDefender(target, s.TargetNationID, missile.Class)
	if found {
		var p float64
		if missile.Class == scenario.ClassNuclear {
			p = (10 - defender.value) / 10
		} else {
			p = defender.value
		}
		if gs.chance(p) {
			result.Intercepted = true
			result.InterceptedBy = defender.typeName
			w.Appendf("A %s fired by %s at %s was intercepted by a %s.",
				s.Missile, s.NationID, s.TargetRegionID, defender.typeName)
			return result, nil
		}
	}

	// Damage phase.
	if missile.Class == scenario.ClassNuclear {
		gs.applyNuclearDamage(w, target, s, result, missile)
	} else {
		gs.applyStandardDamage(w, target, s, result, missile)
	}
	return result, nil
}

// spendMissile debits inventory/stockpile and bumps launch tallies.
func (gs *GameState) spendMissile(attacker *Nation, w *War, nationID string, missile scenario.MissileStats) {
	c, err := w.Combatant(nationID)
	if err != nil {
		return
	}
	if missile.Class == scenario.ClassNuclear {
		c.NukesLaunched++
		if attacker.NukeCount > 0 {
			attacker.NukeCount--
		}
	} else {
		c.MissilesLaunched++
		if attacker.MissileCount > 0 {
			attacker.MissileCount--
		}
	}
	attacker.AdjustStockpile("Dollars", -missile.Cost)
}

// findStrikeDefender enumerates every unit and improvement type with a
// defense value against this missile class, searches each type's range
// around the target region via bounded BFS for an instance the target
// nation actually fields, and picks the best candidate for the class.
// Returns found=false when nothing can contest the strike.
func (gs *GameState) findStrikeDefender(target *Region, targetNationID string, class scenario.MissileClass) (strikeDefender, bool) {
	best := strikeDefender{value: -1}
	if class == scenario.ClassNuclear {
		best.value = 99
	}
	found := false

	consider := func(typeName string, def *scenario.DefenseStats, match func(*Region) bool) {
		if def == nil {
			return
		}
		for _, id := range gs.Graph.WithinRange(target.ID, def.Range) {
			r, ok := gs.Regions[id]
			if !ok || !match(r) {
				continue
			}
			better := def.Value > best.value
			if class == scenario.ClassNuclear {
				better = def.Value < best.value
			}
			if better {
				best = strikeDefender{typeName: typeName, value: def.Value}
			}
			found = true
			break
		}
	}

	pick := func(def, nuke *scenario.DefenseStats) *scenario.DefenseStats {
		if class == scenario.ClassNuclear {
			return nuke
		}
		return def
	}

	for name, st := range gs.Scenario.Units {
		typeName := name
		consider(typeName, pick(st.Defense, st.NukeDefense), func(r *Region) bool {
			return r.Unit != nil && r.Unit.Name == typeName && r.Unit.Owner == targetNationID
		})
	}
	for name, st := range gs.Scenario.Improvements {
		typeName := name
		consider(typeName, pick(st.Defense, st.NukeDefense), func(r *Region) bool {
			// Occupied improvements are out of the defender's hands.
			return r.Improvement != nil && r.Improvement.Name == typeName &&
				r.Improvement.Functional() && r.Owner == targetNationID && !r.IsOccupied()
		})
	}

	return best, found
}

// applyStandardDamage rolls accuracy independently per target type and
// applies the missile's fixed damage on a hit. Improvements without a
// health bar are levelled outright by any hit.
func (gs *GameState) applyStandardDamage(w *War, target *Region, s Strike, result *StrikeResult, missile scenario.MissileStats) {
	if imp := target.Improvement; imp != nil {
		if gs.accuracyHit(missile.ImprovementAccuracy) {
			result.ImprovementHit = true
			if imp.Health == NoHealthBar {
				imp.Health = 0
			} else {
				imp.Health -= missile.ImprovementDamage
			}
			w.Appendf("A %s fired by %s struck the %s in %s.",
				s.Missile, s.NationID, imp.Name, target.ID)
			if imp.Health <= 0 {
				result.ImprovementDestroyed = true
				gs.destroyImprovement(w, target, s.NationID)
			}
		}
	}

	if u := target.Unit; u != nil {
		if gs.accuracyHit(missile.UnitAccuracy) {
			result.UnitHit = true
			u.Health -= missile.UnitDamage
			w.Appendf("A %s fired by %s struck the %s %s in %s.",
				s.Missile, s.NationID, u.Owner, u.Name, target.ID)
			if u.Health <= 0 {
				result.UnitDestroyed = true
				gs.destroyUnit(w, target, s.NationID)
			}
		}
	}
}

// applyNuclearDamage needs no accuracy roll: anything present is
// destroyed, the capital is only disabled, and the region is blanketed
// in fallout unless it holds the capital.
func (gs *GameState) applyNuclearDamage(w *War, target *Region, s Strike, result *StrikeResult, missile scenario.MissileStats) {
	capitalTarget := target.Improvement != nil && target.Improvement.IsCapital()

	if imp := target.Improvement; imp != nil {
		result.ImprovementHit = true
		result.ImprovementDestroyed = true
		imp.Health = 0
		gs.destroyImprovement(w, target, s.NationID)
	}
	if u := target.Unit; u != nil {
		result.UnitHit = true
		result.UnitDestroyed = true
		u.Health = 0
		gs.destroyUnit(w, target, s.NationID)
	}

	if !capitalTarget {
		target.Fallout = missile.FalloutDuration
	}

	mustAward(w, s.NationID, ScoreNuclearStrike, scoreNuclearStrike)
	w.Appendf("%s detonated a %s over %s.", s.NationID, s.Missile, target.ID)
	gs.Notifier.Notify(PriorityUrgent, fmt.Sprintf("%s has deployed a nuclear weapon against %s!", s.NationID, target.ID))
}
