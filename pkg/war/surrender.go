package war

import "fmt"

// ForeignInvasionWarName is the scripted event war that only ends by
// attrition or event resolution. The forced-surrender scans skip it.
const ForeignInvasionWarName = "Foreign Invasion"

// CheckForcedSurrenders runs both per-turn surrender scans. Call once
// per turn, strictly after all combat has been applied and
// UpdateWarScores has run.
func (gs *GameState) CheckForcedSurrenders() {
	gs.CheckTotalOccupation()
	gs.CheckScoreThresholds()
}

// CheckTotalOccupation forces a main combatant to surrender when every
// region it owns is occupied and it holds none free. The outcome is
// assigned by the surrendering combatant's role.
func (gs *GameState) CheckTotalOccupation() {
	for _, w := range gs.Wars {
		if !w.Pending() || w.Name == ForeignInvasionWarName {
			continue
		}
		for _, side := range []Side{SideAttacker, SideDefender} {
			main := w.MainCombatant(side)
			if main == nil || !gs.fullyOccupied(main.NationID) {
				continue
			}
			outcome := OutcomeAttackerVictory
			if side == SideAttacker {
				outcome = OutcomeDefenderVictory
			}
			gs.Notifier.Notify(PriorityHigh, fmt.Sprintf("%s has been fully occupied and surrenders!", main.NationID))
			if err := gs.EndWar(w, outcome); err == nil {
				break
			}
		}
	}
}

// fullyOccupied reports whether the nation owns at least one region and
// every one of them is under foreign occupation.
func (gs *GameState) fullyOccupied(nationID string) bool {
	owned := gs.OwnedRegions(nationID)
	if len(owned) == 0 {
		return false
	}
	for _, r := range owned {
		if !r.IsOccupied() || r.Occupier == nationID {
			return false
		}
	}
	return true
}

// CheckScoreThresholds ends any war in which a side's total war score
// has reached the surrender threshold against its opponent.
func (gs *GameState) CheckScoreThresholds() {
	for _, w := range gs.Wars {
		if !w.Pending() || w.Name == ForeignInvasionWarName {
			continue
		}
		for _, side := range []Side{SideAttacker, SideDefender} {
			threshold, reachable := gs.SurrenderThreshold(w, side)
			if !reachable || w.Score(side).Total < threshold {
				continue
			}
			outcome := OutcomeAttackerVictory
			if side == SideDefender {
				outcome = OutcomeDefenderVictory
			}
			if err := gs.EndWar(w, outcome); err == nil {
				break
			}
		}
	}
}
