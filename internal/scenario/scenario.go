// Package scenario holds the static rule tables for a game: unit,
// improvement and missile stats, plus war-justification effects.
// Tables are loaded once at game start and never mutated afterward.
package scenario

// MissileClass distinguishes the two strike resolution policies.
type MissileClass string

const (
	ClassStandard MissileClass = "standard"
	ClassNuclear  MissileClass = "nuclear"
)

// UnitClass groups unit types for adjacency synergy rules.
type UnitClass string

const (
	ClassInfantry     UnitClass = "infantry"
	ClassMechInfantry UnitClass = "mechInfantry"
	ClassLightTank    UnitClass = "lightTank"
	ClassTank         UnitClass = "tank"
	ClassAntiArmor    UnitClass = "antiArmor"
	ClassSupport      UnitClass = "support"
)

// Technology and government names the combat engine keys off.
const (
	TechSuperiorTraining = "Superior Training" // offense bonus while cast as war attacker
	TechDefensiveTactics = "Defensive Tactics" // defense bonus while cast as war defender
	TechFortifiedWorks   = "Fortified Works"   // improvement defense bonus
	TechUnyielding       = "Unyielding"        // +50 to own surrender threshold
	TechScorchedEarth    = "Scorched Earth"    // doubled occupation score
	GovCrimeSyndicate    = "Crime Syndicate"   // unreachable surrender threshold
)

// DefenseStats describes a unit/improvement type's ability to contest an
// incoming missile. For the standard class, Value is the interception
// probability in [0,1] (higher is better). For the nuclear class, Value
// is a lower-is-better threshold in [0,10]: interception probability is
// (10-Value)/10.
type DefenseStats struct {
	Value float64 `yaml:"value"`
	Range int     `yaml:"range"`
}

// UnitStats is the static sheet for one unit type.
type UnitStats struct {
	Class         UnitClass     `yaml:"class"`
	HitValue      int           `yaml:"hitValue"` // d10 + roll modifier must meet this to hit
	MaxHealth     int           `yaml:"maxHealth"`
	Damage        int           `yaml:"damage"` // vs improvements
	VictoryDamage int           `yaml:"victoryDamage"`
	DrawDamage    int           `yaml:"drawDamage"`
	SpecialForces bool          `yaml:"specialForces,omitempty"` // ignores improvement armor
	Artillery     bool          `yaml:"artillery,omitempty"`     // +1 damage to adjacent friendlies
	Entrenched    bool          `yaml:"entrenched,omitempty"`    // -1 damage to whoever attacks it
	Defense       *DefenseStats `yaml:"defense,omitempty"`       // vs standard missiles
	NukeDefense   *DefenseStats `yaml:"nukeDefense,omitempty"`   // vs nuclear missiles
	Cost          int           `yaml:"cost,omitempty"`
	Upkeep        int           `yaml:"upkeep,omitempty"`
}

// ImprovementStats is the static sheet for one improvement type.
// Health 99 is the no-health-bar sentinel: the improvement has no damage
// track and is destroyed outright by any successful missile hit.
type ImprovementStats struct {
	Health        int           `yaml:"health"`
	Armor         int           `yaml:"armor"`
	Damage        int           `yaml:"damage"` // counter-attack vs units
	VictoryDamage int           `yaml:"victoryDamage,omitempty"`
	DrawDamage    int           `yaml:"drawDamage,omitempty"`
	Defense       *DefenseStats `yaml:"defense,omitempty"`
	NukeDefense   *DefenseStats `yaml:"nukeDefense,omitempty"`
	Cost          int           `yaml:"cost,omitempty"`
}

// MissileStats is the static sheet for one missile type. Accuracy values
// are miss thresholds: a uniform draw in [0,1) hits when draw >= value,
// so 0.0 always hits and anything above 1.0 never does.
type MissileStats struct {
	Class               MissileClass `yaml:"class"`
	UnitAccuracy        float64      `yaml:"unitAccuracy"`
	ImprovementAccuracy float64      `yaml:"improvementAccuracy"`
	UnitDamage          int          `yaml:"unitDamage"`
	ImprovementDamage   int          `yaml:"improvementDamage"`
	FalloutDuration     int          `yaml:"falloutDuration,omitempty"` // nuclear only
	Cost                int          `yaml:"cost"`
}

// Justification is the static effect sheet for one casus belli.
// WarName is a format template taking the attacker then defender name.
type Justification struct {
	WarName         string         `yaml:"warName"`
	TruceLength     int            `yaml:"truceLength"`
	ClaimLimit      int            `yaml:"claimLimit"`
	ClaimCost       int            `yaml:"claimCost"` // political power per claimed region
	WinnerStockpile map[string]int `yaml:"winnerStockpile,omitempty"`
	LoserStockpile  map[string]int `yaml:"loserStockpile,omitempty"`
	PenaltyTag      string         `yaml:"penaltyTag,omitempty"`
	PenaltyDuration int            `yaml:"penaltyDuration,omitempty"`
	Independence    bool           `yaml:"independence,omitempty"` // frees the winner from its overlord
	Puppet          bool           `yaml:"puppet,omitempty"`       // loser becomes winner's puppet state
}

// Scenario bundles every static table the engine reads.
type Scenario struct {
	Units          map[string]UnitStats        `yaml:"units"`
	Improvements   map[string]ImprovementStats `yaml:"improvements"`
	Missiles       map[string]MissileStats     `yaml:"missiles"`
	Justifications map[string]Justification    `yaml:"justifications"`
}

// Unit returns the stat sheet for a unit type name.
func (s *Scenario) Unit(name string) (UnitStats, bool) {
	st, ok := s.Units[name]
	return st, ok
}

// Improvement returns the stat sheet for an improvement type name.
func (s *Scenario) Improvement(name string) (ImprovementStats, bool) {
	st, ok := s.Improvements[name]
	return st, ok
}

// Missile returns the stat sheet for a missile type name.
func (s *Scenario) Missile(name string) (MissileStats, bool) {
	st, ok := s.Missiles[name]
	return st, ok
}

// JustificationFor returns the effect sheet for a casus belli name.
func (s *Scenario) JustificationFor(name string) (Justification, bool) {
	j, ok := s.Justifications[name]
	return j, ok
}
