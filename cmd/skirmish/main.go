// Command skirmish runs a scripted demonstration game against the war
// engine: two nations and their allies fight until the war ends or the
// turn limit runs out. Useful for eyeballing engine behavior and for
// generating save files.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/config"
	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/gamedata"
	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/logger"
	"github.com/ian-hampton/divided-we-stand-prototype-sub001/internal/scenario"
	"github.com/ian-hampton/divided-we-stand-prototype-sub001/pkg/war"
)

func main() {
	var (
		seed       int64
		turns      int
		scenPath   string
		saveName   string
		launchNuke bool
	)
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	flag.IntVar(&turns, "turns", 20, "Maximum turns to simulate")
	flag.StringVar(&scenPath, "scenario", "", "Scenario YAML file (empty = built-in tables)")
	flag.StringVar(&saveName, "save", "", "Save name to write after the run (empty = no save)")
	flag.BoolVar(&launchNuke, "nuke", false, "Fire a nuclear missile on turn 5")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	if scenPath == "" {
		scenPath = cfg.ScenarioPath
	}

	sc := scenario.Default()
	if scenPath != "" {
		loaded, err := scenario.Load(scenPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load scenario")
		}
		sc = loaded
	}

	gs := buildDemoWorld(sc, seed)
	gs.Notifier = war.LogNotifier{Logger: log.Logger}
	gs.Prompter = war.StaticPrompter{Justification: "Border Skirmish", ClaimRegions: []string{"b2"}}

	w, err := gs.DeclareWar("alderia", "borvia", "Conquest")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to declare war")
	}
	if err := gs.SetClaims(w, "alderia", []string{"b1", "b2"}); err != nil {
		log.Fatal().Err(err).Msg("Failed to set claims")
	}
	log.Info().Str("war", w.Name).Int64("seed", seed).Msg("War declared")

	for turn := 0; turn < turns && w.Pending(); turn++ {
		runScriptedTurn(gs, w, launchNuke)
		gs.AdvanceTurn()
		log.Info().
			Int("turn", gs.Turn).
			Int("attackerScore", w.AttackerScore.Total).
			Int("defenderScore", w.DefenderScore.Total).
			Msg("Turn complete")
	}

	if w.Pending() {
		if err := gs.EndWar(w, war.OutcomeWhitePeace); err != nil {
			log.Fatal().Err(err).Msg("Failed to end war")
		}
	}
	log.Info().Str("war", w.Name).Stringer("outcome", w.Outcome).Msg("Simulation finished")
	for _, line := range w.Log {
		fmt.Println(line)
	}

	if saveName != "" {
		store := gamedata.NewFileStore(cfg.SaveDir)
		if err := store.Save(saveName, gs); err != nil {
			log.Fatal().Err(err).Msg("Failed to save game")
		}
		log.Info().Str("save", saveName).Str("dir", cfg.SaveDir).Msg("Game saved")
	}

	if err := gs.ArchiveWar(w, cfg.ArchiveDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to archive war")
	}
	log.Info().Str("war", w.Name).Str("dir", cfg.ArchiveDir).Msg("War archived")
}

// runScriptedTurn pushes the front: every Alderian unit bordering a
// Borvian target attacks it, and every few turns a missile goes up.
func runScriptedTurn(gs *war.GameState, w *war.War, launchNuke bool) {
	for _, id := range []string{"a1", "a2", "a3", "b1", "b2"} {
		r, err := gs.Region(id)
		if err != nil || r.Unit == nil || r.Unit.Owner != "alderia" {
			continue
		}
		for _, nid := range gs.Graph.Neighbors(id) {
			n, err := gs.Region(nid)
			if err != nil {
				continue
			}
			defender := n.Owner
			if n.Unit != nil {
				defender = n.Unit.Owner
			}
			if defender == "alderia" || (n.Unit == nil && n.Improvement == nil) {
				continue
			}
			if !gs.IsAtWar("alderia", defender) {
				continue
			}
			if _, err := gs.ResolveEncounter(id, nid); err != nil {
				log.Warn().Err(err).Str("from", id).Str("to", nid).Msg("Encounter failed")
			}
			break
		}
	}

	if gs.Turn%3 == 0 {
		strike := war.Strike{NationID: "alderia", TargetNationID: "borvia", TargetRegionID: "b3", Missile: "Standard Missile"}
		if launchNuke && gs.Turn == 6 {
			strike.Missile = "Nuclear Missile"
		}
		if _, err := gs.ResolveStrike(strike); err != nil {
			log.Warn().Err(err).Msg("Strike failed")
		}
	}
}

// buildDemoWorld assembles a 3x3 front: Alderia holds column a, Borvia
// columns b and c, with Cassia as Borvia's defense-pact ally.
func buildDemoWorld(sc *scenario.Scenario, seed int64) *war.GameState {
	graph := war.NewRegionGraph(map[string][]string{
		"a1": {"a2", "b1"},
		"a2": {"a3", "b2"},
		"a3": {"b3"},
		"b1": {"b2", "c1"},
		"b2": {"b3", "c2"},
		"b3": {"c3"},
		"c1": {"c2"},
		"c2": {"c3"},
	})
	gs := war.NewGameState(sc, graph, seed)

	gs.AddNation(&war.Nation{
		ID: "alderia", Name: "Alderia", Government: "Military Junta",
		Research:     map[string]bool{scenario.TechSuperiorTraining: true},
		Stockpiles:   map[string]int{"Dollars": 100, "Political Power": 50},
		MissileCount: 5, NukeCount: 1, MilitaryCapacity: 6,
	})
	gs.AddNation(&war.Nation{
		ID: "borvia", Name: "Borvia", Government: "Republic",
		Research:         map[string]bool{scenario.TechDefensiveTactics: true},
		Stockpiles:       map[string]int{"Dollars": 80, "Political Power": 40},
		MilitaryCapacity: 6,
	})
	gs.AddNation(&war.Nation{
		ID: "cassia", Name: "Cassia", Government: "Republic",
		Stockpiles:       map[string]int{"Dollars": 40},
		MilitaryCapacity: 3,
	})
	gs.Alliances = append(gs.Alliances, war.Alliance{Kind: war.AllianceDefensePact, A: "borvia", B: "cassia"})

	for _, id := range []string{"a1", "a2", "a3"} {
		gs.AddRegion(&war.Region{ID: id, Owner: "alderia"})
	}
	for _, id := range []string{"b1", "b2", "b3", "c1", "c2", "c3"} {
		gs.AddRegion(&war.Region{ID: id, Owner: "borvia"})
	}

	must(gs.PlaceUnit("a1", "Heavy Tank", "alderia"))
	must(gs.PlaceUnit("a2", "Mechanized Infantry", "alderia"))
	must(gs.PlaceUnit("a3", "Special Forces", "alderia"))
	must(gs.PlaceUnit("b1", "Infantry", "borvia"))
	must(gs.PlaceUnit("b2", "Garrison", "borvia"))
	must(gs.PlaceImprovement("b3", "Military Base"))
	must(gs.PlaceImprovement("c1", "Missile Defense System"))
	must(gs.PlaceImprovement("c2", "Capital"))
	must(gs.PlaceUnit("c3", "Light Tank", "borvia"))

	return gs
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build demo world")
	}
}
