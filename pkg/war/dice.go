package war

// rollD10 rolls the engine's standard combat die.
func (gs *GameState) rollD10() int {
	return 1 + gs.Rng.Intn(10)
}

// chance draws once and reports success with probability p. Values at
// or below 0 never succeed; values of 1 or more always do.
func (gs *GameState) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return gs.Rng.Float64() < p
}

// accuracyHit draws once against a missile accuracy value, which is a
// miss threshold: the strike lands when the draw meets or beats it. An
// accuracy of 0 always hits and anything above 1 never does.
func (gs *GameState) accuracyHit(accuracy float64) bool {
	return gs.Rng.Float64() >= accuracy
}

// pickIndex selects uniformly among n eligible entries. Used for the
// shortage-pruning tie-breaks, which are deliberately uniform random
// with no preference ordering.
func (gs *GameState) pickIndex(n int) int {
	return gs.Rng.Intn(n)
}
