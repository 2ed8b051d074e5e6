package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario YAML file and merges it over the built-in
// defaults. Tables present in the file replace same-named entries;
// everything else keeps its default sheet.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var override Scenario
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	s := Default()
	for name, st := range override.Units {
		s.Units[name] = st
	}
	for name, st := range override.Improvements {
		s.Improvements[name] = st
	}
	for name, st := range override.Missiles {
		s.Missiles[name] = st
	}
	for name, j := range override.Justifications {
		s.Justifications[name] = j
	}
	return s, nil
}
