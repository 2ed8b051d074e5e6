package war

import "github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"

// Modifiers is one side's additive combat bonuses for an encounter.
type Modifiers struct {
	Roll   int
	Damage int
}

// CombatModifiers computes both sides' roll and damage modifiers for an
// encounter between an attacking unit-region and a defending region
// (unit or improvement). Pure: no state is mutated.
//
// The research bonuses key off each nation's role in the shared war,
// not its role in this particular clash: a counter-raid's local
// attacker can be the war's defender and still draws its defense tech
// bonus, never the offense one.
func CombatModifiers(gs *GameState, atk, def *Region, w *War) (attacker, defender Modifiers) {
	atkNation := gs.Nations[unitOwner(atk)]
	defNation := gs.Nations[unitOwner(def)]
	if atkNation == nil || defNation == nil {
		return attacker, defender
	}

	attacker = sideModifiers(gs, w, atkNation, atk, def)
	defender = sideModifiers(gs, w, defNation, def, atk)

	// Entrenched defenders blunt incoming damage.
	if def.Unit != nil {
		if st, ok := gs.Scenario.Unit(def.Unit.Name); ok && st.Entrenched {
			attacker.Damage--
		}
	}

	// Improvement defense: a supporting military base sharpens the
	// assault, fortification research blunts it.
	if def.Unit == nil && def.Improvement != nil {
		if adjacentFriendlyImprovement(gs, atk, "Military Base", atkNation.ID) {
			attacker.Damage++
		}
		if defNation.HasTech(scenario.TechFortifiedWorks) {
			attacker.Damage--
		}
	}

	return attacker, defender
}

// unitOwner returns the nation fighting from a region: the unit's owner
// if a unit is present, otherwise the region owner. The unit owner
// matters on both ends of an encounter, since invading units fight out
// of foreign soil.
func unitOwner(r *Region) string {
	if r.Unit != nil {
		return r.Unit.Owner
	}
	return r.Owner
}

func sideModifiers(gs *GameState, w *War, nation *Nation, own, opposing *Region) Modifiers {
	var m Modifiers

	if c, ok := w.Combatants[nation.ID]; ok {
		switch c.Role.Side() {
		case SideAttacker:
			if nation.HasTech(scenario.TechSuperiorTraining) {
				m.Roll++
			}
		case SideDefender:
			if nation.HasTech(scenario.TechDefensiveTactics) {
				m.Roll++
			}
		}
	}

	if own.Unit != nil {
		st, _ := gs.Scenario.Unit(own.Unit.Name)
		switch st.Class {
		case scenario.ClassTank:
			if adjacentFriendlyUnitOfClass(gs, own, scenario.ClassMechInfantry, nation.ID) {
				m.Roll++
			}
		case scenario.ClassInfantry:
			if adjacentFriendlyUnitOfClass(gs, own, scenario.ClassLightTank, nation.ID) {
				m.Roll++
			}
		case scenario.ClassAntiArmor:
			if opposing.Unit != nil {
				if ost, ok := gs.Scenario.Unit(opposing.Unit.Name); ok && ost.Class == scenario.ClassInfantry {
					m.Roll++
				}
			}
		}
		if adjacentFriendlyArtillery(gs, own, nation.ID) {
			m.Damage++
		}
	}

	// Tag bonuses apply only against the specific opponent they name.
	opponentID := unitOwner(opposing)
	for _, tag := range nation.Tags {
		if tag.Expires < gs.Turn {
			continue
		}
		if tag.Opponent != "" && tag.Opponent == opponentID {
			m.Roll += tag.RollBonus
			m.Damage += tag.DamageBonus
		}
	}

	return m
}

func adjacentFriendlyUnitOfClass(gs *GameState, r *Region, class scenario.UnitClass, owner string) bool {
	for _, id := range gs.Graph.Neighbors(r.ID) {
		n, ok := gs.Regions[id]
		if !ok || n.Unit == nil || n.Unit.Owner != owner {
			continue
		}
		if st, ok := gs.Scenario.Unit(n.Unit.Name); ok && st.Class == class {
			return true
		}
	}
	return false
}

func adjacentFriendlyArtillery(gs *GameState, r *Region, owner string) bool {
	for _, id := range gs.Graph.Neighbors(r.ID) {
		n, ok := gs.Regions[id]
		if !ok || n.Unit == nil || n.Unit.Owner != owner {
			continue
		}
		if st, ok := gs.Scenario.Unit(n.Unit.Name); ok && st.Artillery {
			return true
		}
	}
	return false
}

func adjacentFriendlyImprovement(gs *GameState, r *Region, name, owner string) bool {
	for _, id := range gs.Graph.Neighbors(r.ID) {
		n, ok := gs.Regions[id]
		if !ok || n.Improvement == nil {
			continue
		}
		if n.Improvement.Name == name && n.Improvement.Functional() && n.Owner == owner {
			return true
		}
	}
	return false
}
