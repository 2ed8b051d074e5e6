package war

import "fmt"

// Encounter resolution phases, in order. An encounter is ephemeral:
// built for one clash, discarded after cleanup.
type encounterPhase int

const (
	phaseModifiersComputed encounterPhase = iota
	phaseRollsExecuted
	phaseDamageApplied
	phaseCleanupDone
)

// EncounterOutcome is the result of a single combat encounter.
type EncounterOutcome int

const (
	EncounterDraw EncounterOutcome = iota
	EncounterAttackerWin
	EncounterDefenderWin
	EncounterDecisive // unit-vs-improvement decisive victory
)

func (o EncounterOutcome) String() string {
	switch o {
	case EncounterDraw:
		return "draw"
	case EncounterAttackerWin:
		return "attacker win"
	case EncounterDefenderWin:
		return "defender win"
	case EncounterDecisive:
		return "decisive victory"
	default:
		return "unknown"
	}
}

// CombatEncounter pairs an attacking unit-region with a defending
// region and the war the two owners share.
type CombatEncounter struct {
	War      *War
	Attacker *Region
	Defender *Region

	AttackerMods Modifiers
	DefenderMods Modifiers

	phase encounterPhase
}

// EncounterResult reports what happened, for logging and tests.
type EncounterResult struct {
	Outcome      EncounterOutcome
	AttackerRoll int // 0 for unit-vs-improvement (no roll)
	DefenderRoll int
	NetDamage    int // unit-vs-improvement only
}

// ResolveEncounter executes one combat encounter between the unit in
// the attacking region and the unit or improvement in the defending
// region. Encounters must be invoked in movement order; the resolver
// never reorders.
//
// Returns ErrNoActiveWar if the two owners share no pending war. Move
// validation upstream is required to rule that out, so callers should
// treat it as fatal.
func (gs *GameState) ResolveEncounter(attackerRegionID, defenderRegionID string) (*EncounterResult, error) {
	atk, err := gs.Region(attackerRegionID)
	if err != nil {
		return nil, err
	}
	def, err := gs.Region(defenderRegionID)
	if err != nil {
		return nil, err
	}
	if atk.Unit == nil {
		return nil, fmt.Errorf("region %s has no attacking unit", attackerRegionID)
	}
	if def.Unit == nil && def.Improvement == nil {
		return nil, fmt.Errorf("region %s has nothing to attack", defenderRegionID)
	}

	atkOwner := atk.Unit.Owner
	defOwner := unitOwner(def)
	w, ok := gs.WarBetween(atkOwner, defOwner)
	if !ok {
		return nil, fmt.Errorf("%w: %s vs %s", ErrNoActiveWar, atkOwner, defOwner)
	}

	e := &CombatEncounter{War: w, Attacker: atk, Defender: def}
	e.AttackerMods, e.DefenderMods = CombatModifiers(gs, atk, def, w)
	e.phase = phaseModifiersComputed

	if c, err := w.Combatant(atkOwner); err == nil {
		c.AttacksMade++
	}

	var result *EncounterResult
	if def.Unit != nil {
		result, err = gs.resolveUnitVsUnit(e)
	} else {
		result, err = gs.resolveUnitVsImprovement(e)
	}
	if err != nil {
		return nil, err
	}
	e.phase = phaseDamageApplied

	gs.cleanupEncounter(e)
	e.phase = phaseCleanupDone
	return result, nil
}

func (gs *GameState) resolveUnitVsUnit(e *CombatEncounter) (*EncounterResult, error) {
	atkUnit, defUnit := e.Attacker.Unit, e.Defender.Unit
	atkStats, ok := gs.Scenario.Unit(atkUnit.Name)
	if !ok {
		return nil, fmt.Errorf("unknown unit type %q", atkUnit.Name)
	}
	defStats, ok := gs.Scenario.Unit(defUnit.Name)
	if !ok {
		return nil, fmt.Errorf("unknown unit type %q", defUnit.Name)
	}

	atkRoll := gs.rollD10() + e.AttackerMods.Roll
	defRoll := gs.rollD10() + e.DefenderMods.Roll
	e.phase = phaseRollsExecuted

	atkHit := atkRoll >= atkStats.HitValue
	defHit := defRoll >= defStats.HitValue

	result := &EncounterResult{AttackerRoll: atkRoll, DefenderRoll: defRoll}

	switch {
	case atkHit && !defHit:
		result.Outcome = EncounterAttackerWin
		defUnit.Health -= positive(atkStats.VictoryDamage + e.AttackerMods.Damage)
		gs.recordBattle(e.War, atkUnit.Owner, defUnit.Owner)
		e.War.Appendf("%s %s defeated %s %s in %s.",
			atkUnit.Owner, atkUnit.Name, defUnit.Owner, defUnit.Name, e.Defender.ID)
	case defHit && !atkHit:
		result.Outcome = EncounterDefenderWin
		atkUnit.Health -= positive(defStats.VictoryDamage + e.DefenderMods.Damage)
		gs.recordBattle(e.War, defUnit.Owner, atkUnit.Owner)
		e.War.Appendf("%s %s repelled the attack of %s %s at %s.",
			defUnit.Owner, defUnit.Name, atkUnit.Owner, atkUnit.Name, e.Defender.ID)
	default:
		// Both hit and both miss are draws: no war score, draw damage only.
		result.Outcome = EncounterDraw
		atkUnit.Health -= positive(defStats.DrawDamage + e.DefenderMods.Damage)
		defUnit.Health -= positive(atkStats.DrawDamage + e.AttackerMods.Damage)
		e.War.Appendf("%s %s and %s %s fought to a draw at %s.",
			atkUnit.Owner, atkUnit.Name, defUnit.Owner, defUnit.Name, e.Defender.ID)
	}

	return result, nil
}

// decisiveNetDamage is the unit-vs-improvement threshold above which the
// attack is a decisive victory and the attacker is spared the shortfall
// penalty.
const decisiveNetDamage = 3

func (gs *GameState) resolveUnitVsImprovement(e *CombatEncounter) (*EncounterResult, error) {
	atkUnit := e.Attacker.Unit
	imp := e.Defender.Improvement
	atkStats, ok := gs.Scenario.Unit(atkUnit.Name)
	if !ok {
		return nil, fmt.Errorf("unknown unit type %q", atkUnit.Name)
	}
	impStats, ok := gs.Scenario.Improvement(imp.Name)
	if !ok {
		return nil, fmt.Errorf("unknown improvement type %q", imp.Name)
	}

	// No rolls: improvement assaults are deterministic.
	e.phase = phaseRollsExecuted

	armor := impStats.Armor
	if atkStats.SpecialForces {
		armor = 0
	}
	net := atkStats.Damage + e.AttackerMods.Damage - armor

	result := &EncounterResult{NetDamage: net}

	if net >= decisiveNetDamage {
		result.Outcome = EncounterDecisive
		imp.Health -= net
		mustAward(e.War, atkUnit.Owner, ScoreDecisiveBattle, scoreSuccessfulAttack)
		e.War.Appendf("%s %s overran the %s in %s.",
			atkUnit.Owner, atkUnit.Name, imp.Name, e.Defender.ID)
	} else {
		result.Outcome = EncounterDraw
		if net > 0 {
			imp.Health -= net
		}
		atkUnit.Health-- // shortfall penalty
		e.War.Appendf("%s %s assaulted the %s in %s without breaking through.",
			atkUnit.Owner, atkUnit.Name, imp.Name, e.Defender.ID)
	}

	// The improvement always answers with its own damage.
	atkUnit.Health -= positive(impStats.Damage + e.DefenderMods.Damage)

	return result, nil
}

// recordBattle awards the decisive-battle score to the winner's war side
// and updates both combatants' battle tallies.
func (gs *GameState) recordBattle(w *War, winnerID, loserID string) {
	mustAward(w, winnerID, ScoreDecisiveBattle, scoreDecisiveBattle)
	if c, err := w.Combatant(winnerID); err == nil {
		c.BattlesWon++
	}
	if c, err := w.Combatant(loserID); err == nil {
		c.BattlesLost++
	}
}

// cleanupEncounter destroys anything the encounter left at health <= 0.
func (gs *GameState) cleanupEncounter(e *CombatEncounter) {
	atkOwner := ""
	if e.Attacker.Unit != nil {
		atkOwner = e.Attacker.Unit.Owner
	}
	defOwner := unitOwner(e.Defender)

	if e.Defender.Unit != nil && e.Defender.Unit.Health <= 0 {
		gs.destroyUnit(e.War, e.Defender, atkOwner)
	}
	if e.Defender.Improvement != nil && e.Defender.Improvement.Health <= 0 {
		gs.destroyImprovement(e.War, e.Defender, atkOwner)
	}
	if e.Attacker.Unit != nil && e.Attacker.Unit.Health <= 0 {
		gs.destroyUnit(e.War, e.Attacker, defOwner)
	}
}

// destroyUnit removes a dead unit from its region, keeps the owner's
// count and both combatants' tallies in sync, and credits the destroyer's
// war side.
func (gs *GameState) destroyUnit(w *War, r *Region, destroyerID string) {
	u := r.Unit
	if u == nil {
		return
	}
	if owner, ok := gs.Nations[u.Owner]; ok && owner.UnitCount > 0 {
		owner.UnitCount--
	}
	if c, err := w.Combatant(u.Owner); err == nil {
		c.UnitsLost++
	}
	if c, err := w.Combatant(destroyerID); err == nil {
		c.UnitsDestroyed++
	}
	mustAward(w, destroyerID, ScoreEnemyUnitDestroyed, scoreUnitDestroyed)
	w.Appendf("%s %s in %s was destroyed.", u.Owner, u.Name, r.ID)
	r.Unit = nil
}

// destroyImprovement removes a dead improvement, except the capital:
// capitals stay on the map at health 0, non-functional, and are scored
// as captures rather than destructions.
func (gs *GameState) destroyImprovement(w *War, r *Region, destroyerID string) {
	imp := r.Improvement
	if imp == nil {
		return
	}
	if c, err := w.Combatant(r.Owner); err == nil {
		c.ImprovementsLost++
	}
	if c, err := w.Combatant(destroyerID); err == nil {
		c.ImprovementsDestroyed++
	}

	if imp.IsCapital() {
		imp.Health = 0
		mustAward(w, destroyerID, ScoreCapture, scoreCapture)
		w.Appendf("The capital of %s in %s was rendered non-functional.", r.Owner, r.ID)
		return
	}

	if owner, ok := gs.Nations[r.Owner]; ok && owner.ImprovementCount > 0 {
		owner.ImprovementCount--
	}
	mustAward(w, destroyerID, ScoreEnemyImprovementDestroyed, scoreImprovementDestroyed)
	w.Appendf("The %s in %s was destroyed.", imp.Name, r.ID)
	r.Improvement = nil
}

// mustAward funnels score through the war's side translation. A failed
// lookup here means the resolver awarded score for a nation outside the
// war, which is a programming error.
func mustAward(w *War, nationID string, category ScoreCategory, amount int) {
	if err := w.Award(nationID, category, amount); err != nil {
		panic(err)
	}
}

func positive(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
