package war

import "fmt"

// fieldedRegions returns the regions holding a unit of the given
// nation, in stable order, so random draws over the set replay under a
// fixed seed.
func (gs *GameState) fieldedRegions(nationID string) []*Region {
	var held []*Region
	for _, id := range gs.sortedRegionIDs() {
		r := gs.Regions[id]
		if r.Unit != nil && r.Unit.Owner == nationID {
			held = append(held, r)
		}
	}
	return held
}

// DecayFallout ticks every region's fallout counter down by one.
func (gs *GameState) DecayFallout() {
	for _, r := range gs.Regions {
		if r.Fallout > 0 {
			r.Fallout--
		}
	}
}

// ExpireTruces drops truce records whose last turn has passed.
func (gs *GameState) ExpireTruces() {
	kept := gs.Truces[:0]
	for _, t := range gs.Truces {
		if t.Expires >= gs.Turn {
			kept = append(kept, t)
		}
	}
	gs.Truces = kept
}

// ExpireTags drops every nation tag whose last turn has passed.
func (gs *GameState) ExpireTags() {
	for _, n := range gs.Nations {
		for name, tag := range n.Tags {
			if tag.Expires < gs.Turn {
				delete(n.Tags, name)
			}
		}
	}
}

// HealUnits regenerates one health on every unit, clamped to the type's
// maximum.
func (gs *GameState) HealUnits() {
	for _, r := range gs.Regions {
		if r.Unit == nil {
			continue
		}
		st, ok := gs.Scenario.Unit(r.Unit.Name)
		if !ok {
			continue
		}
		if r.Unit.Health < st.MaxHealth {
			r.Unit.Health++
		}
	}
}

// EnforceMilitaryCapacity disbands units uniformly at random from any
// nation fielding more units than its military capacity. The tie-break
// is deliberately uniform among the eligible set; there is no smarter
// preference ordering.
func (gs *GameState) EnforceMilitaryCapacity() {
	for _, id := range gs.sortedNationIDs() {
		n := gs.Nations[id]
		if n.MilitaryCapacity <= 0 {
			continue
		}
		held := gs.fieldedRegions(n.ID)
		for len(held) > n.MilitaryCapacity {
			i := gs.pickIndex(len(held))
			r := held[i]
			gs.Notifier.Notify(PriorityNormal, fmt.Sprintf("%s disbanded its %s in %s: over military capacity.", n.Name, r.Unit.Name, r.ID))
			r.Unit = nil
			if n.UnitCount > 0 {
				n.UnitCount--
			}
			held = append(held[:i], held[i+1:]...)
		}
	}
}

// CollectUpkeep charges every nation its fielded units' upkeep in
// dollars. A nation that cannot cover the bill disbands units uniformly
// at random until it can, then pays what remains due.
func (gs *GameState) CollectUpkeep() {
	for _, id := range gs.sortedNationIDs() {
		n := gs.Nations[id]
		held := gs.fieldedRegions(n.ID)
		total := 0
		for _, r := range held {
			if st, ok := gs.Scenario.Unit(r.Unit.Name); ok {
				total += st.Upkeep
			}
		}
		for total > n.Stockpile("Dollars") && len(held) > 0 {
			i := gs.pickIndex(len(held))
			r := held[i]
			if st, ok := gs.Scenario.Unit(r.Unit.Name); ok {
				total -= st.Upkeep
			}
			gs.Notifier.Notify(PriorityNormal, fmt.Sprintf("%s disbanded its %s in %s: upkeep unpaid.", n.Name, r.Unit.Name, r.ID))
			r.Unit = nil
			if n.UnitCount > 0 {
				n.UnitCount--
			}
			held = append(held[:i], held[i+1:]...)
		}
		n.AdjustStockpile("Dollars", -total)
	}
}

// AdvanceTurn runs the end-of-turn sequence in its fixed order: score
// totals and forced surrenders first (after the caller has applied all
// combat), then decay and expiry, then the turn counter.
func (gs *GameState) AdvanceTurn() {
	gs.AwardOccupationScores()
	gs.UpdateWarScores()
	gs.CheckForcedSurrenders()
	gs.DecayFallout()
	gs.HealUnits()
	gs.EnforceMilitaryCapacity()
	gs.CollectUpkeep()
	gs.Turn++
	gs.ExpireTruces()
	gs.ExpireTags()
}
