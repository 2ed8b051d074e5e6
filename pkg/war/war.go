package war

import (
	"errors"
	"fmt"
)

// JustificationTBD is the placeholder justification a combatant carries
// until one is resolved (through research, events, or the prompter).
const JustificationTBD = "TBD"

// ErrNotBelligerent is returned when a nation is looked up in a war it
// is not part of. This is a caller bug, not a game outcome.
var ErrNotBelligerent = errors.New("nation is not a belligerent in this war")

// Outcome is the terminal state of a war. Pending means ongoing.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeAttackerVictory
	OutcomeDefenderVictory
	OutcomeWhitePeace
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeAttackerVictory:
		return "attacker victory"
	case OutcomeDefenderVictory:
		return "defender victory"
	case OutcomeWhitePeace:
		return "white peace"
	default:
		return "unknown"
	}
}

// Side is the two-way projection of a combatant's role.
type Side int

const (
	SideAttacker Side = iota
	SideDefender
)

func (s Side) String() string {
	if s == SideAttacker {
		return "attacker"
	}
	return "defender"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideAttacker {
		return SideDefender
	}
	return SideAttacker
}

// WarRole is a combatant's role within one specific war.
type WarRole int

const (
	RoleMainAttacker WarRole = iota
	RoleMainDefender
	RoleSecondaryAttacker
	RoleSecondaryDefender
)

func (r WarRole) String() string {
	switch r {
	case RoleMainAttacker:
		return "Main Attacker"
	case RoleMainDefender:
		return "Main Defender"
	case RoleSecondaryAttacker:
		return "Secondary Attacker"
	case RoleSecondaryDefender:
		return "Secondary Defender"
	default:
		return "unknown"
	}
}

// Side projects the role onto attacker/defender.
func (r WarRole) Side() Side {
	if r == RoleMainAttacker || r == RoleSecondaryAttacker {
		return SideAttacker
	}
	return SideDefender
}

// Main reports whether the role is one of the two main combatants.
func (r WarRole) Main() bool {
	return r == RoleMainAttacker || r == RoleMainDefender
}

// ScoreCategory identifies one of the six war score counters.
type ScoreCategory int

const (
	ScoreOccupation ScoreCategory = iota
	ScoreDecisiveBattle
	ScoreEnemyUnitDestroyed
	ScoreEnemyImprovementDestroyed
	ScoreCapture
	ScoreNuclearStrike
)

// WarScoreData holds one side's six counters plus a cached total.
// Field names match the existing save format and must not change.
type WarScoreData struct {
	Occupation                 int `json:"occupation"`
	DecisiveBattles            int `json:"decisiveBattles"`
	EnemyUnitsDestroyed        int `json:"enemyUnitsDestroyed"`
	EnemyImprovementsDestroyed int `json:"enemyImprovementsDestroyed"`
	Captures                   int `json:"captures"`
	NuclearStrikes             int `json:"nuclearStrikes"`
	Total                      int `json:"total"`
}

// Sum recomputes the total from the six counters.
func (d *WarScoreData) Sum() int {
	return d.Occupation + d.DecisiveBattles + d.EnemyUnitsDestroyed +
		d.EnemyImprovementsDestroyed + d.Captures + d.NuclearStrikes
}

func (d *WarScoreData) add(category ScoreCategory, amount int) {
	switch category {
	case ScoreOccupation:
		d.Occupation += amount
	case ScoreDecisiveBattle:
		d.DecisiveBattles += amount
	case ScoreEnemyUnitDestroyed:
		d.EnemyUnitsDestroyed += amount
	case ScoreEnemyImprovementDestroyed:
		d.EnemyImprovementsDestroyed += amount
	case ScoreCapture:
		d.Captures += amount
	case ScoreNuclearStrike:
		d.NuclearStrikes += amount
	}
}

// Combatant is one nation's participation record in one war.
type Combatant struct {
	NationID      string  `json:"nationId"`
	Role          WarRole `json:"role"`
	Justification string  `json:"justification"`
	Target        string  `json:"target"`
	// Claims maps claimed region id to its owner at claim time. Claims
	// whose owner changed mid-war are dropped at resolution.
	Claims map[string]string `json:"claims,omitempty"`

	AttacksMade           int `json:"attacksMade"`
	BattlesWon            int `json:"battlesWon"`
	BattlesLost           int `json:"battlesLost"`
	UnitsDestroyed        int `json:"unitsDestroyed"`
	UnitsLost             int `json:"unitsLost"`
	ImprovementsDestroyed int `json:"improvementsDestroyed"`
	ImprovementsLost      int `json:"improvementsLost"`
	MissilesLaunched      int `json:"missilesLaunched"`
	NukesLaunched         int `json:"nukesLaunched"`
}

// War is a single armed conflict. A war leaves the game only through
// archival; the Outcome/EndTurn pair is the lifecycle invariant:
// Outcome is pending exactly while EndTurn is 0.
type War struct {
	Name          string                `json:"name"`
	StartTurn     int                   `json:"startTurn"`
	EndTurn       int                   `json:"endTurn"`
	Outcome       Outcome               `json:"outcome"`
	Log           []string              `json:"combatLog"`
	AttackerScore WarScoreData          `json:"attackerWarScore"`
	DefenderScore WarScoreData          `json:"defenderWarScore"`
	Combatants    map[string]*Combatant `json:"combatants"`
}

// Pending reports whether the war is still ongoing.
func (w *War) Pending() bool {
	return w.Outcome == OutcomePending
}

// Combatant returns the participation record for a nation, or
// ErrNotBelligerent if the nation is not in this war.
func (w *War) Combatant(nationID string) (*Combatant, error) {
	c, ok := w.Combatants[nationID]
	if !ok {
		return nil, fmt.Errorf("%w: nation %s in war %q", ErrNotBelligerent, nationID, w.Name)
	}
	return c, nil
}

// HasCombatant reports whether a nation is part of this war.
func (w *War) HasCombatant(nationID string) bool {
	_, ok := w.Combatants[nationID]
	return ok
}

// MainCombatant returns the main combatant of the given side.
func (w *War) MainCombatant(side Side) *Combatant {
	for _, c := range w.Combatants {
		if c.Role.Main() && c.Role.Side() == side {
			return c
		}
	}
	return nil
}

// SideOf returns the war side of a nation.
func (w *War) SideOf(nationID string) (Side, error) {
	c, err := w.Combatant(nationID)
	if err != nil {
		return SideAttacker, err
	}
	return c.Role.Side(), nil
}

// Score returns the score record for a side.
func (w *War) Score(side Side) *WarScoreData {
	if side == SideAttacker {
		return &w.AttackerScore
	}
	return &w.DefenderScore
}

// Award credits war score to the side a nation actually fights on.
// Every combat path funnels through here: an encounter's local
// attacker may well be this war's defender (a counter-raid), so the
// target ledger is always resolved through the combatant's stored role,
// never through who initiated the clash.
func (w *War) Award(nationID string, category ScoreCategory, amount int) error {
	c, err := w.Combatant(nationID)
	if err != nil {
		return err
	}
	w.Score(c.Role.Side()).add(category, amount)
	return nil
}

// Appendf appends a formatted entry to the war's combat log. The log is
// best-effort narration for later export; it never gates state changes.
func (w *War) Appendf(format string, args ...any) {
	w.Log = append(w.Log, fmt.Sprintf(format, args...))
}

// NationsOn returns the nation ids fighting on the given side.
func (w *War) NationsOn(side Side) []string {
	var ids []string
	for id, c := range w.Combatants {
		if c.Role.Side() == side {
			ids = append(ids, id)
		}
	}
	return ids
}
