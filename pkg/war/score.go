package war

import "github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"

// War score award values.
const (
	scoreDecisiveBattle       = 2 // winning a unit-vs-unit battle
	scoreSuccessfulAttack     = 2 // decisive unit-vs-improvement attack
	scoreUnitDestroyed        = 1
	scoreImprovementDestroyed = 1
	scoreCapture              = 5
	scoreNuclearStrike        = 3 // flat per-strike bonus, independent of damage
	scoreOccupationPerRegion  = 1 // per occupied enemy region per turn
)

// Surrender threshold policy.
const (
	surrenderBaseThreshold = 100
	unyieldingBonus        = 50
)

// UpdateWarScores recomputes both sides' cached totals for every pending
// war. Totals are recomputed from the six counters rather than tracked
// incrementally, so calling this twice in a row changes nothing.
// Run once per turn, after all combat has been applied.
func (gs *GameState) UpdateWarScores() {
	for _, w := range gs.Wars {
		if !w.Pending() {
			continue
		}
		w.AttackerScore.Total = w.AttackerScore.Sum()
		w.DefenderScore.Total = w.DefenderScore.Sum()
	}
}

// AwardOccupationScores grants each occupying side its per-turn
// occupation score across all pending wars. Scorched Earth doctrine on
// the occupier doubles the take.
func (gs *GameState) AwardOccupationScores() {
	for _, r := range gs.Regions {
		if !r.IsOccupied() || r.Occupier == r.Owner {
			continue
		}
		w, ok := gs.WarBetween(r.Occupier, r.Owner)
		if !ok {
			continue
		}
		amount := scoreOccupationPerRegion
		if occ, ok := gs.Nations[r.Occupier]; ok && occ.HasTech(scenario.TechScorchedEarth) {
			amount *= 2
		}
		mustAward(w, r.Occupier, ScoreOccupation, amount)
	}
}

// SurrenderThreshold computes the war score total the given side must
// reach to force the opposing side's surrender. The second return is
// false when the threshold is unreachable: a main combatant running a
// crime syndicate simply cannot be scored into surrender.
func (gs *GameState) SurrenderThreshold(w *War, side Side) (int, bool) {
	opponent := w.MainCombatant(side.Opposite())
	if opponent == nil {
		return 0, false
	}
	opNation, ok := gs.Nations[opponent.NationID]
	if !ok {
		return 0, false
	}
	if opNation.Government == scenario.GovCrimeSyndicate {
		return 0, false
	}

	threshold := surrenderBaseThreshold + w.Score(side.Opposite()).Total
	if opNation.HasTech(scenario.TechUnyielding) {
		threshold += unyieldingBonus
	}
	return threshold, true
}
