package main

import (
	"fmt"
	"strings"

	"github.com/lox/galaxydraft/internal/board"
	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/draft"
)

// ImportMapCmd renders an existing galaxy from its map string
type ImportMapCmd struct {
	MapString []string `kong:"arg,help='36 space-separated tile numbers, 0 for open home slots'"`
}

func (c *ImportMapCmd) Run() error {
	game := catalog.BaseGame()

	b, err := board.ParseMapString(strings.Join(c.MapString, " "), game)
	if err != nil {
		return err
	}

	fmt.Println(renderBoard(b))

	total := draft.Value{}
	for _, at := range b.Coords() {
		cell, _ := b.At(at)
		if cell.Tile != nil {
			total = total.Add(draft.EvaluateTile(*cell.Tile, nil))
		}
	}
	fmt.Printf("%s %s\n", headerStyle.Render("Galaxy value"), total)
	return nil
}
