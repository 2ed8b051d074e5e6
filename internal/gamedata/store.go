// Package gamedata persists a game snapshot to disk as JSON. Field
// names follow the existing save format (see the json tags on the war
// package entities) and must be preserved for compatibility.
package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"
	"github.com/ian-hampton/divided-we-stand-prototype-sub001/pkg/war"
)

// Snapshot is the serialized form of a game's mutable state. Static
// scenario tables and the adjacency graph are not part of a save; they
// are reloaded from scenario data.
type Snapshot struct {
	Turn      int            `json:"turn"`
	Nations   []*war.Nation  `json:"nations"`
	Regions   []*war.Region  `json:"regions"`
	Wars      []*war.War     `json:"wars"`
	Alliances []war.Alliance `json:"alliances,omitempty"`
	Truces    []war.Truce    `json:"truces,omitempty"`
}

// FileStore reads and writes snapshots under a base directory, one
// JSON file per save name.
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

// Save writes the game state to <dir>/<name>.json. Entities are sorted
// by id so saves diff cleanly.
func (s *FileStore) Save(name string, gs *war.GameState) error {
	snap := Snapshot{
		Turn:      gs.Turn,
		Alliances: gs.Alliances,
		Truces:    gs.Truces,
	}
	for _, n := range gs.Nations {
		snap.Nations = append(snap.Nations, n)
	}
	for _, r := range gs.Regions {
		snap.Regions = append(snap.Regions, r)
	}
	for _, w := range gs.Wars {
		snap.Wars = append(snap.Wars, w)
	}
	sort.Slice(snap.Nations, func(i, j int) bool { return snap.Nations[i].ID < snap.Nations[j].ID })
	sort.Slice(snap.Regions, func(i, j int) bool { return snap.Regions[i].ID < snap.Regions[j].ID })
	sort.Slice(snap.Wars, func(i, j int) bool { return snap.Wars[i].Name < snap.Wars[j].Name })

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Load reads <dir>/<name>.json and reconstructs a game state around the
// given scenario tables, adjacency graph, and random seed.
func (s *FileStore) Load(name string, sc *scenario.Scenario, g *war.RegionGraph, seed int64) (*war.GameState, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse save %s: %w", name, err)
	}

	gs := war.NewGameState(sc, g, seed)
	gs.Turn = snap.Turn
	gs.Alliances = snap.Alliances
	gs.Truces = snap.Truces
	for _, n := range snap.Nations {
		gs.AddNation(n)
	}
	for _, r := range snap.Regions {
		gs.AddRegion(r)
	}
	for _, w := range snap.Wars {
		gs.Wars[w.Name] = w
	}
	return gs, nil
}
