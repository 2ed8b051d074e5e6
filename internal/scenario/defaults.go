package scenario

// Default returns the built-in rule tables. YAML files loaded with Load
// are merged over these, so a scenario only needs to list what differs.
func Default() *Scenario {
	return &Scenario{
		Units:          defaultUnits(),
		Improvements:   defaultImprovements(),
		Missiles:       defaultMissiles(),
		Justifications: defaultJustifications(),
	}
}

func defaultUnits() map[string]UnitStats {
	return map[string]UnitStats{
		"Infantry": {
			Class: ClassInfantry, HitValue: 6, MaxHealth: 8,
			Damage: 2, VictoryDamage: 2, DrawDamage: 1,
			Cost: 5, Upkeep: 1,
		},
		"Mechanized Infantry": {
			Class: ClassMechInfantry, HitValue: 5, MaxHealth: 8,
			Damage: 2, VictoryDamage: 2, DrawDamage: 1,
			Defense: &DefenseStats{Value: 0.15, Range: 1},
			Cost:    10, Upkeep: 2,
		},
		"Light Tank": {
			Class: ClassLightTank, HitValue: 5, MaxHealth: 6,
			Damage: 2, VictoryDamage: 3, DrawDamage: 1,
			Cost: 10, Upkeep: 2,
		},
		"Heavy Tank": {
			Class: ClassTank, HitValue: 4, MaxHealth: 10,
			Damage: 3, VictoryDamage: 3, DrawDamage: 2,
			Cost: 15, Upkeep: 3,
		},
		"Anti-Armor Brigade": {
			Class: ClassAntiArmor, HitValue: 6, MaxHealth: 6,
			Damage: 1, VictoryDamage: 2, DrawDamage: 1,
			Cost: 10, Upkeep: 2,
		},
		"Artillery": {
			Class: ClassSupport, HitValue: 8, MaxHealth: 4,
			Damage: 3, VictoryDamage: 2, DrawDamage: 1,
			Artillery: true,
			Cost:      10, Upkeep: 2,
		},
		"Special Forces": {
			Class: ClassInfantry, HitValue: 4, MaxHealth: 6,
			Damage: 3, VictoryDamage: 3, DrawDamage: 1,
			SpecialForces: true,
			Cost:          20, Upkeep: 3,
		},
		"Garrison": {
			Class: ClassInfantry, HitValue: 7, MaxHealth: 10,
			Damage: 1, VictoryDamage: 1, DrawDamage: 1,
			Entrenched: true,
			Cost:       5, Upkeep: 1,
		},
	}
}

func defaultImprovements() map[string]ImprovementStats {
	return map[string]ImprovementStats{
		"Capital": {
			Health: 10, Armor: 2, Damage: 1, VictoryDamage: 2, DrawDamage: 1,
		},
		"Military Base": {
			Health: 8, Armor: 2, Damage: 2, VictoryDamage: 2, DrawDamage: 1,
			Cost: 15,
		},
		"Missile Defense System": {
			Health: 6, Armor: 1, Damage: 0,
			Defense:     &DefenseStats{Value: 0.35, Range: 2},
			NukeDefense: &DefenseStats{Value: 8, Range: 1},
			Cost:        20,
		},
		"Oil Refinery": {
			Health: 6, Armor: 0, Damage: 0, Cost: 10,
		},
		"Research Institute": {
			Health: 6, Armor: 0, Damage: 0, Cost: 15,
		},
		// No health bar: any hit that lands levels it.
		"Radar Array": {
			Health: 99, Armor: 0, Damage: 0,
			Defense: &DefenseStats{Value: 0.20, Range: 3},
			Cost:    10,
		},
	}
}

func defaultMissiles() map[string]MissileStats {
	return map[string]MissileStats{
		"Standard Missile": {
			Class:               ClassStandard,
			UnitAccuracy:        0.45,
			ImprovementAccuracy: 0.35,
			UnitDamage:          2,
			ImprovementDamage:   3,
			Cost:                1,
		},
		"Nuclear Missile": {
			Class:           ClassNuclear,
			FalloutDuration: 4,
			Cost:            1,
		},
	}
}

func defaultJustifications() map[string]Justification {
	return map[string]Justification{
		"Animosity": {
			WarName:     "%s-%s War",
			TruceLength: 4,
			ClaimLimit:  0,
		},
		"Border Skirmish": {
			WarName:     "%s-%s Border War",
			TruceLength: 4,
			ClaimLimit:  2,
			ClaimCost:   5,
		},
		"Conquest": {
			WarName:         "%s Conquest of %s",
			TruceLength:     6,
			ClaimLimit:      5,
			ClaimCost:       5,
			LoserStockpile:  map[string]int{"Dollars": -20},
			WinnerStockpile: map[string]int{"Dollars": 10},
			PenaltyTag:      "Reparations",
			PenaltyDuration: 8,
		},
		"Subjugation": {
			WarName:     "%s Subjugation War of %s",
			TruceLength: 8,
			ClaimLimit:  0,
			Puppet:      true,
		},
		"Independence": {
			WarName:      "%s-%s Independence War",
			TruceLength:  8,
			ClaimLimit:   0,
			Independence: true,
		},
	}
}
