package war

import (
	"sort"
	"testing"
)

func TestRegionGraphSymmetry(t *testing.T) {
	g := testGraph()
	if !g.Adjacent("r1", "b1") || !g.Adjacent("b1", "r1") {
		t.Error("edges should be symmetric")
	}
	if g.Adjacent("r1", "b3") {
		t.Error("r1 and b3 are not adjacent")
	}
}

func TestWithinRange(t *testing.T) {
	g := testGraph()
	tests := []struct {
		origin string
		radius int
		want   []string
	}{
		{"r1", 0, []string{"r1"}},
		{"r1", 1, []string{"b1", "r1", "r2"}},
		{"r1", 2, []string{"b1", "b2", "r1", "r2", "r3"}},
		{"b3", 1, []string{"b2", "b3"}},
	}
	for _, tt := range tests {
		got := g.WithinRange(tt.origin, tt.radius)
		sort.Strings(got)
		if len(got) != len(tt.want) {
			t.Errorf("WithinRange(%s, %d) = %v, want %v", tt.origin, tt.radius, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("WithinRange(%s, %d) = %v, want %v", tt.origin, tt.radius, got, tt.want)
				break
			}
		}
	}
}

func TestRegionControl(t *testing.T) {
	r := &Region{ID: "x", Owner: "red"}
	if r.IsOccupied() || r.ControlledBy() != "red" {
		t.Error("unoccupied region should be controlled by its owner")
	}
	r.Occupier = "blue"
	if !r.IsOccupied() || r.ControlledBy() != "blue" {
		t.Error("occupied region should be controlled by its occupier")
	}
}

func TestCapitalFlags(t *testing.T) {
	capital := &Improvement{Name: CapitalName, Health: 10}
	if !capital.IsCapital() || !capital.Functional() {
		t.Error("fresh capital should be functional")
	}
	capital.Health = 0
	if capital.Functional() {
		t.Error("capital at 0 health is non-functional")
	}
	if (&Improvement{Name: "Outpost", Health: 3}).IsCapital() {
		t.Error("outpost is not a capital")
	}
}
