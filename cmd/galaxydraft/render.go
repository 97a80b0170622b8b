package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/galaxydraft/internal/board"
	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/draft"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Faint(true)
)

func renderSlices(st *draft.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Slices"))
	b.WriteString("\n")
	for i, s := range st.Slices() {
		b.WriteString(fmt.Sprintf("%s %s\n",
			headerStyle.Render(fmt.Sprintf("Slice %d", i)),
			s.Evaluate(nil)))
	}
	return b.String()
}

func renderAssignments(st *draft.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Players"))
	b.WriteString("\n")
	for p := 0; p < st.PlayerCount(); p++ {
		b.WriteString(headerStyle.Render(st.PlayerName(p)))

		if seat, ok := st.Seat(p); ok {
			if seat == 0 {
				b.WriteString("  Speaker (Seat 0)")
			} else {
				b.WriteString(fmt.Sprintf("  Seat %d", seat))
			}
		} else {
			b.WriteString(dimStyle.Render("  no seat"))
		}

		if idx, ok := st.SliceIndex(p); ok {
			b.WriteString(fmt.Sprintf("  Slice %d", idx))
		} else {
			b.WriteString(dimStyle.Render("  no slice"))
		}

		if idx, ok := st.FactionIndex(p); ok {
			b.WriteString("  " + st.Factions()[idx].Name)
		} else {
			b.WriteString(dimStyle.Render("  no faction"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderMapString(s string) string {
	return titleStyle.Render("Map string") + "\n" + s
}

// renderBoard lists the galaxy in spiral order with each tile's planet
// summary.
func renderBoard(b *board.Board) string {
	var out strings.Builder
	out.WriteString(titleStyle.Render("Galaxy"))
	out.WriteString("\n")
	for _, at := range b.Coords() {
		cell, _ := b.At(at)
		pos := fmt.Sprintf("(%+d %+d %+d)", at.Q, at.R, at.S)
		switch {
		case cell.Tile != nil:
			out.WriteString(fmt.Sprintf("%s  %s\n", pos, describeTile(*cell.Tile)))
		case cell.Home:
			label := cell.Label
			if label == "" {
				label = "?"
			}
			out.WriteString(fmt.Sprintf("%s  %s\n", pos, dimStyle.Render("home slot "+label)))
		default:
			out.WriteString(fmt.Sprintf("%s  %s\n", pos, dimStyle.Render("open")))
		}
	}
	return out.String()
}

func describeTile(t catalog.Tile) string {
	var parts []string
	for _, p := range t.Planets {
		parts = append(parts, fmt.Sprintf("%s %d/%d", p.Name, p.Resources, p.Influence))
	}
	if t.Wormhole != catalog.WormholeNone {
		parts = append(parts, t.Wormhole.String())
	}
	if t.Anomaly != catalog.AnomalyNone {
		parts = append(parts, t.Anomaly.String())
	}
	desc := strings.Join(parts, ", ")
	if desc == "" {
		desc = dimStyle.Render("empty")
	}
	return fmt.Sprintf("tile %d: %s", t.Number, desc)
}
