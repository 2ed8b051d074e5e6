package war

// Prompter supplies a war justification and territorial claims for a
// combatant whose justification is still the TBD placeholder when its
// war ends in victory. The engine blocks on the call and does not care
// whether the answer comes from a human operator, a script, or a test
// fixture. Returning JustificationTBD declines: the combatant's
// justification is left unresolved and skipped.
type Prompter interface {
	ResolveJustification(nation *Nation, w *War) (justification string, claimRegionIDs []string)
}

// StaticPrompter answers every prompt with the same justification and
// claim list. Useful for scripted games and tests.
type StaticPrompter struct {
	Justification string
	ClaimRegions  []string
}

func (p StaticPrompter) ResolveJustification(*Nation, *War) (string, []string) {
	return p.Justification, p.ClaimRegions
}
