package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseGameLoads(t *testing.T) {
	g := BaseGame()

	assert.Equal(t, 3, g.MinPlayers)
	assert.Equal(t, 6, g.MaxPlayers)
	assert.Len(t, g.Factions, 17)
	assert.Len(t, g.Tiles.Blue, 20)
	assert.Len(t, g.Tiles.Red, 12)
	assert.Len(t, g.Tiles.Homes, 17)
	assert.Equal(t, 18, g.Tiles.Center.Number)
}

func TestBaseGameHomeTilesMatchFactions(t *testing.T) {
	g := BaseGame()
	for _, f := range g.Factions {
		home, ok := g.HomeForFaction(f.Name)
		require.True(t, ok, "faction %q has no home tile", f.Name)
		assert.Equal(t, f.Name, home.Race)
	}
	homes := g.FactionHomes()
	require.Len(t, homes, len(g.Factions))
}

func TestBaseGameWormholes(t *testing.T) {
	g := BaseGame()

	byNumber := func(n int) Tile {
		tile, ok := g.TileByNumber(n)
		require.True(t, ok, "tile %d missing", n)
		return tile
	}

	assert.Equal(t, WormholeAlpha, byNumber(26).Wormhole)
	assert.Equal(t, WormholeBeta, byNumber(25).Wormhole)
	assert.Equal(t, WormholeAlpha, byNumber(39).Wormhole)
	assert.Equal(t, WormholeBeta, byNumber(40).Wormhole)
	assert.Equal(t, WormholeNone, byNumber(19).Wormhole)
}

func TestRedTilesHaveNoPlanets(t *testing.T) {
	g := BaseGame()
	for _, tile := range g.Tiles.Red {
		assert.False(t, tile.HasPlanets(), "red tile %d should be planetless", tile.Number)
		assert.NotEqual(t, AnomalyNone, tile.Anomaly, "red tile %d should carry an anomaly class", tile.Number)
	}
}

func TestLoadRejectsMismatchedHomes(t *testing.T) {
	data := `
min_players: 2
max_players: 2
factions:
  - name: Alpha Clan
  - name: Beta Clan
tiles:
  center: { number: 18 }
  blue:
    - { number: 19 }
  red:
    - { number: 39 }
  homes:
    - { number: 1, race: Alpha Clan }
    - { number: 2, race: Gamma Clan }
`
	_, err := Load([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "home tiles do not match factions")
}

func TestLoadRejectsDuplicateTileNumbers(t *testing.T) {
	data := `
min_players: 2
max_players: 2
factions:
  - name: Alpha Clan
tiles:
  center: { number: 18 }
  blue:
    - { number: 19 }
    - { number: 19 }
  homes:
    - { number: 1, race: Alpha Clan }
`
	_, err := Load([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tile number")
}

func TestEnumParsing(t *testing.T) {
	data := `
min_players: 1
max_players: 1
factions:
  - name: Solo
tiles:
  center: { number: 18 }
  blue:
    - number: 20
      wormhole: ALPHA
      planets:
        - { name: P, resources: 1, influence: 2, trait: Cultural, tech: GREEN }
  red:
    - { number: 41, anomaly: gravity_rift }
  homes:
    - { number: 1, race: Solo }
`
	g, err := Load([]byte(data))
	require.NoError(t, err)

	tile := g.Tiles.Blue[0]
	assert.Equal(t, WormholeAlpha, tile.Wormhole)
	assert.Equal(t, TraitCultural, tile.Planets[0].Trait)
	assert.Equal(t, TechGreen, tile.Planets[0].Tech)
	assert.Equal(t, AnomalyGravityRift, g.Tiles.Red[0].Anomaly)
}

func TestEnumParseErrors(t *testing.T) {
	data := `
min_players: 1
max_players: 1
factions:
  - name: Solo
tiles:
  center: { number: 18 }
  blue:
    - { number: 20, wormhole: gamma }
  homes:
    - { number: 1, race: Solo }
`
	_, err := Load([]byte(data))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown wormhole"))
}
