package draft

import (
	"fmt"

	"github.com/lox/galaxydraft/internal/catalog"
)

// testGame builds a compact catalog: 6 factions, 18 blue tiles, 12 red
// tiles, one home per faction. Only one wormhole of each kind exists,
// so random partitions can never produce a clash.
func testGame() *catalog.Game {
	g := &catalog.Game{
		MinPlayers: 3,
		MaxPlayers: 6,
	}
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("Faction %c", 'A'+i)
		g.Factions = append(g.Factions, catalog.Faction{Name: name})
		g.Tiles.Homes = append(g.Tiles.Homes, catalog.Tile{
			Number: 81 + i,
			Race:   name,
			Planets: []catalog.Planet{
				{Name: fmt.Sprintf("Home %c", 'A'+i), Resources: 4, Influence: 2},
			},
		})
	}
	g.Tiles.Center = catalog.Tile{
		Number:  18,
		Planets: []catalog.Planet{{Name: "Mecatol Rex", Resources: 1, Influence: 6}},
	}
	for i := 0; i < 18; i++ {
		tile := catalog.Tile{
			Number: 200 + i,
			Planets: []catalog.Planet{
				{Name: fmt.Sprintf("Planet %d", i), Resources: 1 + i%3, Influence: i % 4},
			},
		}
		switch i {
		case 0:
			tile.Wormhole = catalog.WormholeAlpha
		case 1:
			tile.Wormhole = catalog.WormholeBeta
		}
		g.Tiles.Blue = append(g.Tiles.Blue, tile)
	}
	for i := 0; i < 12; i++ {
		g.Tiles.Red = append(g.Tiles.Red, catalog.Tile{Number: 300 + i, Anomaly: catalog.AnomalyEmpty})
	}
	return g
}

// testSlices builds n wormhole-free slices over distinct tiles with a
// flat value profile.
func testSlices(n int) []*Slice {
	res := make([]*Slice, 0, n)
	for i := 0; i < n; i++ {
		tiles := make([]catalog.Tile, 5)
		for j := range tiles {
			tiles[j] = planetTile(400+i*5+j, catalog.Planet{Resources: 2, Influence: 1})
		}
		s, err := SliceFromTiles(tiles)
		if err != nil {
			panic(err)
		}
		res = append(res, s)
	}
	return res
}
