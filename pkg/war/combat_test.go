package war

import (
	"errors"
	"testing"
)

func TestUnitVsUnitAttackerVictory(t *testing.T) {
	gs, w := newTestState(t)
	atk := placeUnit(t, gs, "r1", "Veterans", "red")
	def := placeUnit(t, gs, "b1", "Militia", "blue")

	res, err := gs.ResolveEncounter("r1", "b1")
	if err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if res.Outcome != EncounterAttackerWin {
		t.Fatalf("outcome = %v, want attacker win", res.Outcome)
	}
	if def.Health != 6 {
		t.Errorf("defender health = %d, want 6", def.Health)
	}
	if atk.Health != 8 {
		t.Errorf("attacker health = %d, want 8 (loser deals no damage)", atk.Health)
	}
	if w.AttackerScore.DecisiveBattles != 2 {
		t.Errorf("attacker decisive battle score = %d, want 2", w.AttackerScore.DecisiveBattles)
	}
	red, blue := w.Combatants["red"], w.Combatants["blue"]
	if red.AttacksMade != 1 || red.BattlesWon != 1 || blue.BattlesLost != 1 {
		t.Errorf("tallies = attacks %d won %d lost %d, want 1/1/1",
			red.AttacksMade, red.BattlesWon, blue.BattlesLost)
	}
	if len(w.Log) == 0 {
		t.Error("encounter left no combat log entry")
	}
}

func TestUnitVsUnitDefenderVictory(t *testing.T) {
	gs, w := newTestState(t)
	atk := placeUnit(t, gs, "r1", "Militia", "red")
	placeUnit(t, gs, "b1", "Veterans", "blue")

	res, err := gs.ResolveEncounter("r1", "b1")
	if err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if res.Outcome != EncounterDefenderWin {
		t.Fatalf("outcome = %v, want defender win", res.Outcome)
	}
	if atk.Health != 6 {
		t.Errorf("attacker health = %d, want 6", atk.Health)
	}
	if w.DefenderScore.DecisiveBattles != 2 {
		t.Errorf("defender decisive battle score = %d, want 2", w.DefenderScore.DecisiveBattles)
	}
	if w.Combatants["blue"].BattlesWon != 1 {
		t.Errorf("blue battles won = %d, want 1", w.Combatants["blue"].BattlesWon)
	}
}

func TestUnitVsUnitDrawDealsDrawDamageOnly(t *testing.T) {
	gs, w := newTestState(t)
	atk := placeUnit(t, gs, "r1", "Militia", "red")
	def := placeUnit(t, gs, "b1", "Militia", "blue")

	res, err := gs.ResolveEncounter("r1", "b1")
	if err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if res.Outcome != EncounterDraw {
		t.Fatalf("outcome = %v, want draw", res.Outcome)
	}
	if atk.Health != 7 || def.Health != 7 {
		t.Errorf("health after draw = %d/%d, want 7/7", atk.Health, def.Health)
	}
	if w.AttackerScore.Sum() != 0 || w.DefenderScore.Sum() != 0 {
		t.Errorf("draw awarded score: attacker %d defender %d",
			w.AttackerScore.Sum(), w.DefenderScore.Sum())
	}
}

func TestUnitDestructionBookkeeping(t *testing.T) {
	gs, w := newTestState(t)
	placeUnit(t, gs, "r1", "Veterans", "red")
	def := placeUnit(t, gs, "b1", "Militia", "blue")
	def.Health = 2

	if _, err := gs.ResolveEncounter("r1", "b1"); err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if gs.Regions["b1"].Unit != nil {
		t.Error("destroyed unit still on the map")
	}
	if got := gs.Nations["blue"].UnitCount; got != 0 {
		t.Errorf("blue unit count = %d, want 0", got)
	}
	if w.AttackerScore.EnemyUnitsDestroyed != 1 {
		t.Errorf("attacker kill score = %d, want 1", w.AttackerScore.EnemyUnitsDestroyed)
	}
	if w.Combatants["red"].UnitsDestroyed != 1 || w.Combatants["blue"].UnitsLost != 1 {
		t.Errorf("kill tallies = %d destroyed / %d lost, want 1/1",
			w.Combatants["red"].UnitsDestroyed, w.Combatants["blue"].UnitsLost)
	}
}

func TestImprovementAssaultShortfall(t *testing.T) {
	gs, w := newTestState(t)
	atk := placeUnit(t, gs, "r1", "Infantry", "red")
	imp := placeImprovement(t, gs, "b1", "Outpost")

	res, err := gs.ResolveEncounter("r1", "b1")
	if err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if res.Outcome != EncounterDraw {
		t.Fatalf("outcome = %v, want draw", res.Outcome)
	}
	// Damage 2 against armor 1: net 1 lands, but the shortfall costs the
	// attacker a point on top of the outpost's counter-fire.
	if res.NetDamage != 1 {
		t.Errorf("net damage = %d, want 1", res.NetDamage)
	}
	if imp.Health != 5 {
		t.Errorf("improvement health = %d, want 5", imp.Health)
	}
	if atk.Health != 6 {
		t.Errorf("attacker health = %d, want 6 (penalty plus counter-fire)", atk.Health)
	}
	if res.AttackerRoll != 0 || res.DefenderRoll != 0 {
		t.Errorf("improvement assault rolled dice: %d/%d", res.AttackerRoll, res.DefenderRoll)
	}
	if w.AttackerScore.Sum() != 0 {
		t.Errorf("shortfall assault awarded score %d", w.AttackerScore.Sum())
	}
}

func TestImprovementAssaultDecisive(t *testing.T) {
	gs, w := newTestState(t)
	atk := placeUnit(t, gs, "r1", "Special Forces", "red")
	imp := placeImprovement(t, gs, "b1", "Outpost")

	res, err := gs.ResolveEncounter("r1", "b1")
	if err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	// Special forces ignore armor: net 3 is decisive, no shortfall penalty.
	if res.Outcome != EncounterDecisive {
		t.Fatalf("outcome = %v, want decisive", res.Outcome)
	}
	if imp.Health != 3 {
		t.Errorf("improvement health = %d, want 3", imp.Health)
	}
	if atk.Health != 5 {
		t.Errorf("attacker health = %d, want 5 (counter-fire only)", atk.Health)
	}
	if w.AttackerScore.DecisiveBattles != 2 {
		t.Errorf("decisive assault score = %d, want 2", w.AttackerScore.DecisiveBattles)
	}
}

func TestImprovementDestructionBookkeeping(t *testing.T) {
	gs, w := newTestState(t)
	placeUnit(t, gs, "r1", "Special Forces", "red")
	imp := placeImprovement(t, gs, "b1", "Outpost")
	imp.Health = 3

	if _, err := gs.ResolveEncounter("r1", "b1"); err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if gs.Regions["b1"].Improvement != nil {
		t.Error("destroyed improvement still on the map")
	}
	if got := gs.Nations["blue"].ImprovementCount; got != 0 {
		t.Errorf("blue improvement count = %d, want 0", got)
	}
	if w.AttackerScore.EnemyImprovementsDestroyed != 1 {
		t.Errorf("demolition score = %d, want 1", w.AttackerScore.EnemyImprovementsDestroyed)
	}
}

func TestCapitalDisabledNotRemoved(t *testing.T) {
	gs, w := newTestState(t)
	placeUnit(t, gs, "r1", "Special Forces", "red")
	cap := placeImprovement(t, gs, "b1", "Capital")
	cap.Health = 2

	if _, err := gs.ResolveEncounter("r1", "b1"); err != nil {
		t.Fatalf("ResolveEncounter: %v", err)
	}
	if gs.Regions["b1"].Improvement == nil {
		t.Fatal("capital was removed from the map")
	}
	if cap.Health != 0 || cap.Functional() {
		t.Errorf("capital health = %d functional = %v, want 0/false", cap.Health, cap.Functional())
	}
	if w.AttackerScore.Captures != 5 {
		t.Errorf("capture score = %d, want 5", w.AttackerScore.Captures)
	}
	if w.AttackerScore.EnemyImprovementsDestroyed != 0 {
		t.Errorf("capital scored as a demolition: %d", w.AttackerScore.EnemyImprovementsDestroyed)
	}
	if got := gs.Nations["blue"].ImprovementCount; got != 1 {
		t.Errorf("blue improvement count = %d, want 1 (capital stays)", got)
	}
}

func TestEncounterRequiresActiveWar(t *testing.T) {
	gs, _ := newTestState(t)
	placeUnit(t, gs, "r1", "Veterans", "red")
	gs.Regions["b1"].Unit = &Unit{Name: "Militia", Owner: "green", Health: 8}

	_, err := gs.ResolveEncounter("r1", "b1")
	if !errors.Is(err, ErrNoActiveWar) {
		t.Fatalf("err = %v, want ErrNoActiveWar", err)
	}
}
