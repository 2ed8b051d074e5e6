package war

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrAlreadyAtWar is returned by DeclareWar when the two nations
	// already share a pending war.
	ErrAlreadyAtWar = errors.New("nations are already at war")

	// ErrWarEnded is returned when a terminal transition is requested on
	// a war that is no longer pending.
	ErrWarEnded = errors.New("war has already ended")
)

// DefaultTruceLength applies when a war ends without a resolved
// justification (white peace, or a victor who never settled on one).
const DefaultTruceLength = 4

// DeclareWar opens a war between two nations under the given
// justification, registers the main combatants, and calls in allies on
// both sides.
func (gs *GameState) DeclareWar(attackerID, defenderID, justification string) (*War, error) {
	attacker, err := gs.Nation(attackerID)
	if err != nil {
		return nil, err
	}
	defender, err := gs.Nation(defenderID)
	if err != nil {
		return nil, err
	}
	if _, already := gs.WarBetween(attackerID, defenderID); already {
		return nil, fmt.Errorf("%w: %s vs %s", ErrAlreadyAtWar, attackerID, defenderID)
	}
	j, ok := gs.Scenario.JustificationFor(justification)
	if !ok {
		return nil, fmt.Errorf("unknown justification %q", justification)
	}

	w := &War{
		Name:       gs.warName(j.WarName, attacker.Name, defender.Name),
		StartTurn:  gs.Turn,
		Combatants: make(map[string]*Combatant),
	}
	w.Combatants[attackerID] = &Combatant{
		NationID:      attackerID,
		Role:          RoleMainAttacker,
		Justification: justification,
		Target:        defenderID,
	}
	w.Combatants[defenderID] = &Combatant{
		NationID:      defenderID,
		Role:          RoleMainDefender,
		Justification: JustificationTBD,
		Target:        attackerID,
	}

	gs.enlistAllies(w, attacker, defender)

	gs.Wars[w.Name] = w
	w.Appendf("%s declared war on %s (%s).", attacker.Name, defender.Name, justification)
	gs.Notifier.Notify(PriorityHigh, fmt.Sprintf("%s has started! %s declared war on %s.", w.Name, attacker.Name, defender.Name))
	return w, nil
}

// warName renders the justification's name template and retries with
// ordinal prefixes until the name is unique among all wars, archived
// ones excluded since archival removes the record.
func (gs *GameState) warName(template, attackerName, defenderName string) string {
	base := fmt.Sprintf(template, attackerName, defenderName)
	name := base
	for n := 2; ; n++ {
		if _, taken := gs.Wars[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s %s", ordinal(n), base)
	}
}

// ordinal renders 2 -> "2nd", 3 -> "3rd", 11 -> "11th", 21 -> "21st".
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// enlistAllies pulls eligible allies into the war: the attacker brings
// its puppet states, the defender brings its puppets, defense-pact
// allies, and overlord. A nation already at war with, truced with, or
// allied to the opposing main combatant stays out.
func (gs *GameState) enlistAllies(w *War, attacker, defender *Nation) {
	for _, puppet := range gs.Puppets(attacker) {
		gs.enlist(w, puppet, RoleSecondaryAttacker, defender.ID)
	}

	for _, puppet := range gs.Puppets(defender) {
		gs.enlist(w, puppet, RoleSecondaryDefender, attacker.ID)
	}
	for _, allyID := range gs.DefensePactAllies(defender.ID) {
		if ally, ok := gs.Nations[allyID]; ok {
			gs.enlist(w, ally, RoleSecondaryDefender, attacker.ID)
		}
	}
	if overlord, ok := gs.Overlord(defender); ok {
		gs.enlist(w, overlord, RoleSecondaryDefender, attacker.ID)
	}
}

func (gs *GameState) enlist(w *War, nation *Nation, role WarRole, opposingMainID string) {
	if nation.ID == opposingMainID || w.HasCombatant(nation.ID) {
		return
	}
	if gs.IsAtWar(nation.ID, opposingMainID) ||
		gs.IsTruced(nation.ID, opposingMainID) ||
		gs.IsAllied(nation.ID, opposingMainID) {
		return
	}
	w.Combatants[nation.ID] = &Combatant{
		NationID:      nation.ID,
		Role:          role,
		Justification: JustificationTBD,
		Target:        opposingMainID,
	}
	w.Appendf("%s joined the war as %s.", nation.Name, role)
}

// SetClaims records a combatant's territorial claims, snapshotting each
// region's current owner and charging the justification's claim cost.
// Claims beyond the justification's limit are refused.
func (gs *GameState) SetClaims(w *War, nationID string, regionIDs []string) error {
	c, err := w.Combatant(nationID)
	if err != nil {
		return err
	}
	j, ok := gs.Scenario.JustificationFor(c.Justification)
	if !ok {
		return fmt.Errorf("combatant %s has no resolved justification", nationID)
	}
	if len(c.Claims)+len(regionIDs) > j.ClaimLimit {
		return fmt.Errorf("claim limit %d exceeded for %s", j.ClaimLimit, nationID)
	}
	nation, err := gs.Nation(nationID)
	if err != nil {
		return err
	}
	for _, id := range regionIDs {
		r, err := gs.Region(id)
		if err != nil {
			return err
		}
		if c.Claims == nil {
			c.Claims = make(map[string]string)
		}
		c.Claims[id] = r.Owner
		nation.AdjustStockpile("Political Power", -j.ClaimCost)
	}
	return nil
}

// EndWar moves a pending war to a terminal outcome: justification
// resolution for the victors (skipped for white peace), truces between
// every attacker/defender pair, occupation clearing, and forced
// withdrawal of stranded units.
func (gs *GameState) EndWar(w *War, outcome Outcome) error {
	if !w.Pending() {
		return fmt.Errorf("%w: %s", ErrWarEnded, w.Name)
	}
	if outcome == OutcomePending {
		return fmt.Errorf("cannot end war %s without an outcome", w.Name)
	}

	truceLength := DefaultTruceLength
	if outcome == OutcomeAttackerVictory || outcome == OutcomeDefenderVictory {
		winningSide := SideAttacker
		if outcome == OutcomeDefenderVictory {
			winningSide = SideDefender
		}
		truceLength = gs.resolveVictory(w, winningSide)
	}

	gs.createPostwarTruces(w, truceLength)
	gs.clearOccupations(w)
	gs.withdrawStrandedUnits(w)

	w.Outcome = outcome
	w.EndTurn = gs.Turn
	w.Appendf("%s ended in %s on turn %d.", w.Name, outcome, gs.Turn)
	gs.Notifier.Notify(PriorityHigh, fmt.Sprintf("%s has ended: %s.", w.Name, outcome))
	return nil
}

// resolveVictory applies every winning combatant's justification and
// returns the truce length dictated by the main victor's justification
// (DefaultTruceLength if the main victor never resolved one).
func (gs *GameState) resolveVictory(w *War, winningSide Side) int {
	truceLength := DefaultTruceLength

	for _, c := range w.Combatants {
		if c.Role.Side() != winningSide {
			continue
		}
		if c.Justification == JustificationTBD && gs.Prompter != nil {
			if nation, ok := gs.Nations[c.NationID]; ok {
				just, claims := gs.Prompter.ResolveJustification(nation, w)
				if just != JustificationTBD && just != "" {
					c.Justification = just
					if len(claims) > 0 {
						if err := gs.SetClaims(w, c.NationID, claims); err != nil {
							w.Appendf("Claims by %s were refused: %v.", c.NationID, err)
						}
					}
				}
			}
		}
		if c.Justification == JustificationTBD {
			continue
		}
		length := gs.applyJustification(w, c)
		if c.Role.Main() {
			truceLength = length
		}
	}
	return truceLength
}

// applyJustification settles one victorious combatant's war goals:
// claimed territory, stockpile swings, penalty tags, and status changes.
// Returns the justification's truce length.
func (gs *GameState) applyJustification(w *War, victor *Combatant) int {
	j, ok := gs.Scenario.JustificationFor(victor.Justification)
	if !ok {
		return DefaultTruceLength
	}
	winner, err := gs.Nation(victor.NationID)
	if err != nil {
		return j.TruceLength
	}
	loser, err := gs.Nation(victor.Target)
	if err != nil {
		return j.TruceLength
	}

	// Territorial claims transfer only while the snapshot still holds;
	// regions that changed hands mid-war are silently dropped.
	for regionID, originalOwner := range victor.Claims {
		r, err := gs.Region(regionID)
		if err != nil || r.Owner != originalOwner {
			continue
		}
		r.Owner = winner.ID
		r.Occupier = ""
		w.Appendf("%s annexed %s.", winner.Name, regionID)
	}

	for resource, delta := range j.WinnerStockpile {
		winner.AdjustStockpile(resource, delta)
	}
	for resource, delta := range j.LoserStockpile {
		loser.AdjustStockpile(resource, delta)
	}

	if j.PenaltyTag != "" {
		loser.AddTag(j.PenaltyTag, Tag{Expires: gs.Turn + j.PenaltyDuration})
	}

	if j.Independence && winner.OverlordName() == loser.Name {
		winner.Status = StatusIndependent
		w.Appendf("%s won its independence from %s.", winner.Name, loser.Name)
	}
	if j.Puppet {
		// A new overlord releases the loser's own puppets first.
		gs.releasePuppets(loser)
		loser.MakePuppetOf(winner)
		w.Appendf("%s became a puppet state of %s.", loser.Name, winner.Name)
	}

	return j.TruceLength
}

// releasePuppets frees every puppet of the given overlord.
func (gs *GameState) releasePuppets(overlord *Nation) {
	for _, puppet := range gs.Puppets(overlord) {
		puppet.Status = StatusIndependent
	}
}

// createPostwarTruces issues a truce for every attacker/defender
// combatant pair.
func (gs *GameState) createPostwarTruces(w *War, length int) {
	for _, attackerID := range w.NationsOn(SideAttacker) {
		for _, defenderID := range w.NationsOn(SideDefender) {
			gs.CreateTruce(attackerID, defenderID, length)
		}
	}
}

// clearOccupations removes occupier flags between the two sides of the
// ended war. Occupations involving third parties are untouched.
func (gs *GameState) clearOccupations(w *War) {
	for _, r := range gs.Regions {
		if !r.IsOccupied() {
			continue
		}
		occSide, occErr := w.SideOf(r.Occupier)
		ownSide, ownErr := w.SideOf(r.Owner)
		if occErr != nil || ownErr != nil {
			continue
		}
		if occSide != ownSide {
			r.Occupier = ""
		}
	}
}

// withdrawStrandedUnits force-moves every combatant unit sitting in
// territory it neither owns nor occupies to the nearest friendly,
// unoccupied, unit-free region. A unit with nowhere to go disbands.
func (gs *GameState) withdrawStrandedUnits(w *War) {
	for _, id := range gs.sortedRegionIDs() {
		r := gs.Regions[id]
		u := r.Unit
		if u == nil || !w.HasCombatant(u.Owner) {
			continue
		}
		if r.Owner == u.Owner || r.Occupier == u.Owner {
			continue
		}

		dest, ok := gs.nearestWithdrawRegion(r.ID, u.Owner)
		if !ok {
			if owner, err := gs.Nation(u.Owner); err == nil && owner.UnitCount > 0 {
				owner.UnitCount--
			}
			w.Appendf("The %s %s in %s had nowhere to withdraw and disbanded.", u.Owner, u.Name, r.ID)
			r.Unit = nil
			continue
		}
		dest.Unit = u
		r.Unit = nil
		w.Appendf("The %s %s withdrew from %s to %s.", u.Owner, u.Name, r.ID, dest.ID)
	}
}

// nearestWithdrawRegion finds the closest region (BFS) owned by the
// nation, unoccupied, and without a unit. Returns false when the nation
// has no such region anywhere reachable.
func (gs *GameState) nearestWithdrawRegion(from, nationID string) (*Region, bool) {
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, id := range gs.Graph.Neighbors(current) {
			if visited[id] {
				continue
			}
			visited[id] = true
			r, ok := gs.Regions[id]
			if ok && r.Owner == nationID && !r.IsOccupied() && r.Unit == nil {
				return r, true
			}
			queue = append(queue, id)
		}
	}
	return nil, false
}

// ArchiveWar exports the war's combat log to a file in dir and removes
// the war from the game. This is the only path that deletes a war.
func (gs *GameState) ArchiveWar(w *War, dir string) error {
	if w.Pending() {
		return fmt.Errorf("cannot archive pending war %s", w.Name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("archive war: %w", err)
	}
	path := filepath.Join(dir, sanitizeFilename(w.Name)+".log")
	content := strings.Join(w.Log, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("archive war %s: %w", w.Name, err)
	}
	delete(gs.Wars, w.Name)
	return nil
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
}
