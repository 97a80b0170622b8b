// Package catalog holds the static game data: tiles with their planets
// and hazards, factions, and the partitioned tile set drafts are built
// from. Catalog values are immutable once loaded.
package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Wormhole is a tile's wormhole class.
type Wormhole int

const (
	WormholeNone Wormhole = iota
	WormholeAlpha
	WormholeBeta
)

// String returns the lowercase name of the wormhole class.
func (w Wormhole) String() string {
	switch w {
	case WormholeNone:
		return "none"
	case WormholeAlpha:
		return "alpha"
	case WormholeBeta:
		return "beta"
	default:
		return fmt.Sprintf("wormhole(%d)", int(w))
	}
}

// UnmarshalYAML parses a wormhole class from its name, case-insensitively.
func (w *Wormhole) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "", "none":
		*w = WormholeNone
	case "alpha":
		*w = WormholeAlpha
	case "beta":
		*w = WormholeBeta
	default:
		return fmt.Errorf("catalog: unknown wormhole %q", value.Value)
	}
	return nil
}

// Anomaly is a tile's anomaly class, including empty systems.
type Anomaly int

const (
	AnomalyNone Anomaly = iota
	AnomalyEmpty
	AnomalyGravityRift
	AnomalyNebula
	AnomalyAsteroidField
	AnomalySupernova
)

func (a Anomaly) String() string {
	switch a {
	case AnomalyNone:
		return "none"
	case AnomalyEmpty:
		return "empty"
	case AnomalyGravityRift:
		return "gravity-rift"
	case AnomalyNebula:
		return "nebula"
	case AnomalyAsteroidField:
		return "asteroid-field"
	case AnomalySupernova:
		return "supernova"
	default:
		return fmt.Sprintf("anomaly(%d)", int(a))
	}
}

// UnmarshalYAML parses an anomaly class from its name.
func (a *Anomaly) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.ReplaceAll(value.Value, "_", "-")) {
	case "", "none":
		*a = AnomalyNone
	case "empty":
		*a = AnomalyEmpty
	case "gravity-rift":
		*a = AnomalyGravityRift
	case "nebula":
		*a = AnomalyNebula
	case "asteroid-field":
		*a = AnomalyAsteroidField
	case "supernova":
		*a = AnomalySupernova
	default:
		return fmt.Errorf("catalog: unknown anomaly %q", value.Value)
	}
	return nil
}

// Trait is a planet's trait.
type Trait int

const (
	TraitNone Trait = iota
	TraitCultural
	TraitHazardous
	TraitIndustrial
)

func (t Trait) String() string {
	switch t {
	case TraitNone:
		return "none"
	case TraitCultural:
		return "cultural"
	case TraitHazardous:
		return "hazardous"
	case TraitIndustrial:
		return "industrial"
	default:
		return fmt.Sprintf("trait(%d)", int(t))
	}
}

// UnmarshalYAML parses a planet trait from its name.
func (t *Trait) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "", "none":
		*t = TraitNone
	case "cultural":
		*t = TraitCultural
	case "hazardous":
		*t = TraitHazardous
	case "industrial":
		*t = TraitIndustrial
	default:
		return fmt.Errorf("catalog: unknown trait %q", value.Value)
	}
	return nil
}

// TechSpecialty is a planet's technology specialty (skip).
type TechSpecialty int

const (
	TechNone TechSpecialty = iota
	TechRed
	TechYellow
	TechGreen
	TechBlue
)

func (t TechSpecialty) String() string {
	switch t {
	case TechNone:
		return "none"
	case TechRed:
		return "red"
	case TechYellow:
		return "yellow"
	case TechGreen:
		return "green"
	case TechBlue:
		return "blue"
	default:
		return fmt.Sprintf("tech(%d)", int(t))
	}
}

// UnmarshalYAML parses a tech specialty from its name.
func (t *TechSpecialty) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "", "none":
		*t = TechNone
	case "red":
		*t = TechRed
	case "yellow":
		*t = TechYellow
	case "green":
		*t = TechGreen
	case "blue":
		*t = TechBlue
	default:
		return fmt.Errorf("catalog: unknown tech specialty %q", value.Value)
	}
	return nil
}

// Planet is one planet on a tile.
type Planet struct {
	Name      string        `yaml:"name"`
	Resources int           `yaml:"resources"`
	Influence int           `yaml:"influence"`
	Trait     Trait         `yaml:"trait,omitempty"`
	Tech      TechSpecialty `yaml:"tech,omitempty"`
}

// Tile is one catalog entry. Tiles are identified by Number; Race tags
// home tiles with their owning faction.
type Tile struct {
	Number   int      `yaml:"number"`
	Race     string   `yaml:"race,omitempty"`
	Wormhole Wormhole `yaml:"wormhole,omitempty"`
	Anomaly  Anomaly  `yaml:"anomaly,omitempty"`
	Planets  []Planet `yaml:"planets,omitempty"`
}

// HasPlanets reports whether the tile carries at least one planet.
// Hazard tiles without planets are never treated as draftable resources.
func (t Tile) HasPlanets() bool {
	return len(t.Planets) > 0
}

// Same reports whether two tiles are the same catalog entry.
func (t Tile) Same(o Tile) bool {
	return t.Number == o.Number
}

// TileSet partitions the catalog tiles: one center tile, the blue
// (planet) tier, the red (hazard) tier, and one home tile per faction.
type TileSet struct {
	Center Tile   `yaml:"center"`
	Blue   []Tile `yaml:"blue"`
	Red    []Tile `yaml:"red"`
	Homes  []Tile `yaml:"homes"`
}

// AllTiles returns every tile in the set, center first.
func (ts TileSet) AllTiles() []Tile {
	res := make([]Tile, 0, 1+len(ts.Blue)+len(ts.Red)+len(ts.Homes))
	res = append(res, ts.Center)
	res = append(res, ts.Blue...)
	res = append(res, ts.Red...)
	res = append(res, ts.Homes...)
	return res
}

// Faction is a playable faction.
type Faction struct {
	Name string `yaml:"name"`
	Wiki string `yaml:"wiki,omitempty"`
}

// Game is the full setup catalog: player bounds, factions, and tiles.
type Game struct {
	MinPlayers int       `yaml:"min_players"`
	MaxPlayers int       `yaml:"max_players"`
	Factions   []Faction `yaml:"factions"`
	Tiles      TileSet   `yaml:"tiles"`
}

// FactionNames returns the declared faction names in catalog order.
func (g *Game) FactionNames() []string {
	names := make([]string, len(g.Factions))
	for i, f := range g.Factions {
		names[i] = f.Name
	}
	return names
}

// TileByNumber looks up a tile by its catalog number.
func (g *Game) TileByNumber(n int) (Tile, bool) {
	for _, t := range g.Tiles.AllTiles() {
		if t.Number == n {
			return t, true
		}
	}
	return Tile{}, false
}

// HomeForFaction returns the home tile tagged with the faction name.
func (g *Game) HomeForFaction(name string) (Tile, bool) {
	for _, t := range g.Tiles.Homes {
		if t.Race == name {
			return t, true
		}
	}
	return Tile{}, false
}

// FactionHomes returns the home tiles in faction catalog order.
func (g *Game) FactionHomes() []Tile {
	res := make([]Tile, len(g.Factions))
	for i, f := range g.Factions {
		res[i], _ = g.HomeForFaction(f.Name)
	}
	return res
}
