package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed base_game.yaml
var baseGameYAML []byte

var (
	baseOnce sync.Once
	baseGame *Game
	baseErr  error
)

// BaseGame returns the embedded base-game catalog. The embedded data is
// validated once on first use; a corrupt embed is a build defect and
// panics.
func BaseGame() *Game {
	baseOnce.Do(func() {
		baseGame, baseErr = Load(baseGameYAML)
	})
	if baseErr != nil {
		panic(fmt.Sprintf("catalog: embedded base game invalid: %v", baseErr))
	}
	return baseGame
}

// Load parses and validates a catalog from YAML.
func Load(data []byte) (*Game, error) {
	var g Game
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// LoadFile parses and validates a catalog from a YAML file.
func LoadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Load(data)
}

func (g *Game) validate() error {
	if g.MinPlayers < 1 || g.MaxPlayers < g.MinPlayers {
		return fmt.Errorf("catalog: bad player bounds [%d, %d]", g.MinPlayers, g.MaxPlayers)
	}
	if len(g.Factions) == 0 {
		return fmt.Errorf("catalog: no factions declared")
	}

	// Tile numbers must be unique across the whole set.
	seen := map[int]bool{}
	for _, t := range g.Tiles.AllTiles() {
		if t.Number <= 0 {
			return fmt.Errorf("catalog: tile number %d out of range", t.Number)
		}
		if seen[t.Number] {
			return fmt.Errorf("catalog: duplicate tile number %d", t.Number)
		}
		seen[t.Number] = true
	}

	for _, t := range g.Tiles.AllTiles() {
		for _, p := range t.Planets {
			if p.Resources < 0 || p.Influence < 0 {
				return fmt.Errorf("catalog: tile %d planet %q has negative values", t.Number, p.Name)
			}
		}
	}

	// The home tile race tags must exactly cover the declared factions.
	homeRaces := map[string]int{}
	for _, t := range g.Tiles.Homes {
		if t.Race == "" {
			return fmt.Errorf("catalog: home tile %d has no faction tag", t.Number)
		}
		homeRaces[t.Race]++
	}
	var missing, extra []string
	for _, f := range g.Factions {
		switch homeRaces[f.Name] {
		case 0:
			missing = append(missing, f.Name)
		case 1:
			delete(homeRaces, f.Name)
		default:
			return fmt.Errorf("catalog: faction %q has %d home tiles", f.Name, homeRaces[f.Name])
		}
	}
	for race := range homeRaces {
		extra = append(extra, race)
	}
	sort.Strings(extra)
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("catalog: home tiles do not match factions (missing %v, extra %v)", missing, extra)
	}
	return nil
}
