package war

import (
	"errors"
	"testing"
)

func TestPendingInvariant(t *testing.T) {
	gs, w := newTestState(t)

	if !w.Pending() || w.EndTurn != 0 {
		t.Fatalf("new war should be pending with end turn 0, got %v / %d", w.Outcome, w.EndTurn)
	}

	if err := gs.EndWar(w, OutcomeWhitePeace); err != nil {
		t.Fatalf("EndWar: %v", err)
	}
	if w.Pending() || w.EndTurn == 0 {
		t.Errorf("ended war should not be pending and must have an end turn, got %v / %d", w.Outcome, w.EndTurn)
	}

	// Terminal: a second transition must be refused.
	if err := gs.EndWar(w, OutcomeAttackerVictory); !errors.Is(err, ErrWarEnded) {
		t.Errorf("EndWar on ended war = %v, want ErrWarEnded", err)
	}
	if w.Outcome != OutcomeWhitePeace {
		t.Errorf("outcome reverted to %v", w.Outcome)
	}
}

func TestDeclareWarRoles(t *testing.T) {
	_, w := newTestState(t)

	mains := 0
	for _, c := range w.Combatants {
		if c.Role.Main() {
			mains++
		}
	}
	if mains != 2 {
		t.Fatalf("expected exactly 2 main combatants, got %d", mains)
	}
	if c := w.MainCombatant(SideAttacker); c == nil || c.NationID != "red" {
		t.Errorf("main attacker = %+v, want red", c)
	}
	if c := w.MainCombatant(SideDefender); c == nil || c.NationID != "blue" {
		t.Errorf("main defender = %+v, want blue", c)
	}
	if w.Combatants["blue"].Justification != JustificationTBD {
		t.Errorf("defender justification = %q, want TBD", w.Combatants["blue"].Justification)
	}
}

func TestAwardTranslatesThroughWarRole(t *testing.T) {
	_, w := newTestState(t)

	// Blue is this war's defender. However the clash started, score
	// credited to blue must land on the defender ledger.
	if err := w.Award("blue", ScoreDecisiveBattle, 2); err != nil {
		t.Fatalf("Award: %v", err)
	}
	if w.DefenderScore.DecisiveBattles != 2 {
		t.Errorf("defender decisiveBattles = %d, want 2", w.DefenderScore.DecisiveBattles)
	}
	if w.AttackerScore.DecisiveBattles != 0 {
		t.Errorf("attacker decisiveBattles = %d, want 0", w.AttackerScore.DecisiveBattles)
	}

	if err := w.Award("green", ScoreDecisiveBattle, 1); !errors.Is(err, ErrNotBelligerent) {
		t.Errorf("Award for outsider = %v, want ErrNotBelligerent", err)
	}
}

func TestWarScoreSumIdempotent(t *testing.T) {
	gs, w := newTestState(t)

	w.AttackerScore = WarScoreData{
		Occupation: 3, DecisiveBattles: 4, EnemyUnitsDestroyed: 2,
		EnemyImprovementsDestroyed: 1, Captures: 5, NuclearStrikes: 3,
	}
	gs.UpdateWarScores()
	if w.AttackerScore.Total != 18 {
		t.Fatalf("total = %d, want 18", w.AttackerScore.Total)
	}
	gs.UpdateWarScores()
	if w.AttackerScore.Total != 18 {
		t.Errorf("second recomputation changed total to %d", w.AttackerScore.Total)
	}
}

func TestRoleSides(t *testing.T) {
	tests := []struct {
		role WarRole
		side Side
		main bool
	}{
		{RoleMainAttacker, SideAttacker, true},
		{RoleMainDefender, SideDefender, true},
		{RoleSecondaryAttacker, SideAttacker, false},
		{RoleSecondaryDefender, SideDefender, false},
	}
	for _, tt := range tests {
		if got := tt.role.Side(); got != tt.side {
			t.Errorf("%v.Side() = %v, want %v", tt.role, got, tt.side)
		}
		if got := tt.role.Main(); got != tt.main {
			t.Errorf("%v.Main() = %v, want %v", tt.role, got, tt.main)
		}
	}
	if SideAttacker.Opposite() != SideDefender || SideDefender.Opposite() != SideAttacker {
		t.Error("Opposite() is not an involution")
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{103, "103rd"},
	}
	for _, tt := range tests {
		if got := ordinal(tt.n); got != tt.want {
			t.Errorf("ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
