package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTablesComplete(t *testing.T) {
	s := Default()

	for _, name := range []string{
		"Infantry", "Mechanized Infantry", "Light Tank", "Heavy Tank",
		"Anti-Armor Brigade", "Artillery", "Special Forces", "Garrison",
	} {
		if _, ok := s.Unit(name); !ok {
			t.Errorf("default unit %q missing", name)
		}
	}
	for _, name := range []string{
		"Capital", "Military Base", "Missile Defense System",
		"Oil Refinery", "Research Institute", "Radar Array",
	} {
		if _, ok := s.Improvement(name); !ok {
			t.Errorf("default improvement %q missing", name)
		}
	}
	for _, name := range []string{"Standard Missile", "Nuclear Missile"} {
		if _, ok := s.Missile(name); !ok {
			t.Errorf("default missile %q missing", name)
		}
	}
	for _, name := range []string{
		"Animosity", "Border Skirmish", "Conquest", "Subjugation", "Independence",
	} {
		if _, ok := s.JustificationFor(name); !ok {
			t.Errorf("default justification %q missing", name)
		}
	}
}

func TestDefaultSanity(t *testing.T) {
	s := Default()

	nuke, _ := s.Missile("Nuclear Missile")
	if nuke.Class != ClassNuclear || nuke.FalloutDuration != 4 {
		t.Errorf("nuclear missile sheet = %+v", nuke)
	}
	sf, _ := s.Unit("Special Forces")
	if !sf.SpecialForces {
		t.Error("special forces lack the armor-piercing flag")
	}
	radar, _ := s.Improvement("Radar Array")
	if radar.Health != 99 {
		t.Errorf("radar array health = %d, want the no-health-bar sentinel", radar.Health)
	}
	conquest, _ := s.JustificationFor("Conquest")
	if conquest.TruceLength != 6 || conquest.PenaltyTag != "Reparations" {
		t.Errorf("conquest sheet = %+v", conquest)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := `
units:
  Infantry:
    class: infantry
    hitValue: 5
    maxHealth: 12
    damage: 2
    victoryDamage: 2
    drawDamage: 1
  Partisans:
    class: infantry
    hitValue: 7
    maxHealth: 4
    damage: 1
    victoryDamage: 1
    drawDamage: 1
justifications:
  Animosity:
    warName: "%s-%s Feud"
    truceLength: 2
    claimLimit: 0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	inf, ok := s.Unit("Infantry")
	if !ok || inf.HitValue != 5 || inf.MaxHealth != 12 {
		t.Errorf("overridden infantry = %+v", inf)
	}
	if _, ok := s.Unit("Partisans"); !ok {
		t.Error("new unit from the file is missing")
	}
	// Untouched tables keep their defaults.
	if _, ok := s.Unit("Heavy Tank"); !ok {
		t.Error("default unit lost in the merge")
	}
	j, _ := s.JustificationFor("Animosity")
	if j.TruceLength != 2 {
		t.Errorf("overridden truce length = %d, want 2", j.TruceLength)
	}
	if j2, _ := s.JustificationFor("Conquest"); j2.TruceLength != 6 {
		t.Error("default justification lost in the merge")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
