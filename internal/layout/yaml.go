package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lox/galaxydraft/internal/hexgrid"
)

//go:embed layouts/*.yaml
var layoutFS embed.FS

// coordSpec accepts a coordinate as a 2- or 3-element YAML sequence.
// Two elements are completed to three by the zero-sum rule.
type coordSpec hexgrid.Coord

func (c *coordSpec) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("layout: coordinate must be a list of ints: %w", err)
	}
	switch len(parts) {
	case 2:
		*c = coordSpec(hexgrid.FromAxial(parts[0], parts[1]))
	case 3:
		coord, err := hexgrid.New(parts[0], parts[1], parts[2])
		if err != nil {
			return err
		}
		*c = coordSpec(coord)
	default:
		return fmt.Errorf("layout: coordinate needs 2 or 3 components, got %d", len(parts))
	}
	return nil
}

type fixedTileSpec struct {
	At     coordSpec `yaml:"at"`
	Number int       `yaml:"number"`
}

// homeSlotSpec accepts either a bare coordinate or an {at, label} record.
type homeSlotSpec struct {
	At    coordSpec
	Label string
}

func (h *homeSlotSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		return value.Decode(&h.At)
	}
	var rec struct {
		At    coordSpec `yaml:"at"`
		Label string    `yaml:"label"`
	}
	if err := value.Decode(&rec); err != nil {
		return err
	}
	h.At, h.Label = rec.At, rec.Label
	return nil
}

type layoutSpec struct {
	Name       string          `yaml:"name"`
	Players    int             `yaml:"players"`
	FixedTiles []fixedTileSpec `yaml:"fixed_tiles"`
	HomeTiles  []homeSlotSpec  `yaml:"home_tiles"`
	FreeTiles  []coordSpec     `yaml:"free_tiles"`
}

func (s *layoutSpec) layout() (*Layout, error) {
	l := &Layout{
		Name:    s.Name,
		Players: s.Players,
		Fixed:   make(map[hexgrid.Coord]int, len(s.FixedTiles)),
	}
	for _, ft := range s.FixedTiles {
		l.Fixed[hexgrid.Coord(ft.At)] = ft.Number
	}
	for _, ht := range s.HomeTiles {
		l.Homes = append(l.Homes, HomeSlot{At: hexgrid.Coord(ht.At), Label: ht.Label})
	}
	for _, ft := range s.FreeTiles {
		l.Free = append(l.Free, hexgrid.Coord(ft))
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Parse decodes and validates a layout definition from YAML.
func Parse(data []byte) (*Layout, error) {
	var spec layoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	return spec.layout()
}

// ParseFile decodes and validates a layout definition from a YAML file.
func ParseFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Parse(data)
}

// All returns the embedded standard layouts, sorted by player count then
// name.
func All() ([]*Layout, error) {
	entries, err := fs.ReadDir(layoutFS, "layouts")
	if err != nil {
		return nil, err
	}
	var res []*Layout
	for _, e := range entries {
		data, err := layoutFS.ReadFile("layouts/" + e.Name())
		if err != nil {
			return nil, err
		}
		l, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("layout: embedded %s: %w", e.Name(), err)
		}
		res = append(res, l)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Players != res[j].Players {
			return res[i].Players < res[j].Players
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

// ByName returns the embedded layout with the given name.
func ByName(name string) (*Layout, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}
	for _, l := range all {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("layout: no layout named %q", name)
}

// ForPlayers returns the first embedded layout for the player count.
func ForPlayers(n int) (*Layout, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}
	for _, l := range all {
		if l.Players == n {
			return l, nil
		}
	}
	return nil, fmt.Errorf("layout: no layout for %d players", n)
}
