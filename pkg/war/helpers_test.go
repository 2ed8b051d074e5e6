package war

import (
	"testing"

	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"
)

// testScenario extends the default tables with units whose hit values
// make unit-vs-unit outcomes deterministic regardless of the die:
// Veterans (hit on 1+) always hit, Militia (hit on 11+) never do.
func testScenario() *scenario.Scenario {
	sc := scenario.Default()
	sc.Units["Veterans"] = scenario.UnitStats{
		Class: scenario.ClassInfantry, HitValue: 1, MaxHealth: 8,
		Damage: 2, VictoryDamage: 2, DrawDamage: 1,
	}
	sc.Units["Militia"] = scenario.UnitStats{
		Class: scenario.ClassInfantry, HitValue: 11, MaxHealth: 8,
		Damage: 2, VictoryDamage: 2, DrawDamage: 1,
	}
	sc.Improvements["Outpost"] = scenario.ImprovementStats{
		Health: 6, Armor: 1, Damage: 1,
	}
	sc.Improvements["Iron Dome"] = scenario.ImprovementStats{
		Health: 6, Armor: 1,
		Defense: &scenario.DefenseStats{Value: 1.0, Range: 2},
	}
	sc.Missiles["Test Missile"] = scenario.MissileStats{
		Class:               scenario.ClassStandard,
		UnitAccuracy:        0.0, // always hits
		ImprovementAccuracy: 0.0,
		UnitDamage:          2,
		ImprovementDamage:   3,
		Cost:                1,
	}
	sc.Missiles["Wild Missile"] = scenario.MissileStats{
		Class:               scenario.ClassStandard,
		UnitAccuracy:        2.0, // never hits
		ImprovementAccuracy: 2.0,
		UnitDamage:          2,
		ImprovementDamage:   3,
		Cost:                1,
	}
	return sc
}

// testGraph is two facing columns plus a rear region per side:
//
//	r1 - r2 - r3      red column (r3 is the rear)
//	 |    |
//	b1 - b2 - b3      blue column
func testGraph() *RegionGraph {
	return NewRegionGraph(map[string][]string{
		"r1": {"r2", "b1"},
		"r2": {"r3", "b2"},
		"b1": {"b2"},
		"b2": {"b3"},
	})
}

// newTestState builds a two-nation front with an active war between
// Redland (attacker) and Bluemoor (defender), plus neutral Greenhollow.
func newTestState(t *testing.T) (*GameState, *War) {
	t.Helper()
	gs := NewGameState(testScenario(), testGraph(), 1)
	gs.Notifier = &ListNotifier{}

	gs.AddNation(&Nation{ID: "red", Name: "Redland", Government: "Republic",
		Stockpiles: map[string]int{"Dollars": 50, "Political Power": 50}, MilitaryCapacity: 5})
	gs.AddNation(&Nation{ID: "blue", Name: "Bluemoor", Government: "Republic",
		Stockpiles: map[string]int{"Dollars": 50, "Political Power": 50}, MilitaryCapacity: 5})
	gs.AddNation(&Nation{ID: "green", Name: "Greenhollow", Government: "Republic",
		MilitaryCapacity: 5})

	for _, id := range []string{"r1", "r2", "r3"} {
		gs.AddRegion(&Region{ID: id, Owner: "red"})
	}
	for _, id := range []string{"b1", "b2", "b3"} {
		gs.AddRegion(&Region{ID: id, Owner: "blue"})
	}

	w, err := gs.DeclareWar("red", "blue", "Animosity")
	if err != nil {
		t.Fatalf("DeclareWar: %v", err)
	}
	return gs, w
}

func placeUnit(t *testing.T, gs *GameState, regionID, unitName, owner string) *Unit {
	t.Helper()
	if err := gs.PlaceUnit(regionID, unitName, owner); err != nil {
		t.Fatalf("PlaceUnit(%s, %s): %v", regionID, unitName, err)
	}
	return gs.Regions[regionID].Unit
}

func placeImprovement(t *testing.T, gs *GameState, regionID, name string) *Improvement {
	t.Helper()
	if err := gs.PlaceImprovement(regionID, name); err != nil {
		t.Fatalf("PlaceImprovement(%s, %s): %v", regionID, name, err)
	}
	return gs.Regions[regionID].Improvement
}
