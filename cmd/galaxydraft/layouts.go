package main

import (
	"fmt"

	"github.com/lox/galaxydraft/internal/layout"
)

// LayoutsCmd lists the embedded galaxy layouts
type LayoutsCmd struct{}

func (c *LayoutsCmd) Run() error {
	layouts, err := layout.All()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Layouts"))
	for _, l := range layouts {
		fmt.Printf("%s  %d players, %d fixed, %d home, %d free\n",
			headerStyle.Render(l.Name),
			l.Players, len(l.Fixed), len(l.Homes), len(l.Free))
	}
	return nil
}
