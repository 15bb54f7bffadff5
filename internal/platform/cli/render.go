// Package cli renders boards and solutions for terminal output. It is
// presentation glue only: the solver knows nothing about it, and it never
// feeds anything back into the search.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vagnervjs/slider/internal/board"
	"github.com/vagnervjs/slider/internal/solver"
)

// Renderer formats boards and action lists. With styling disabled it emits
// plain text suitable for pipes and logs.
type Renderer struct {
	styled bool

	tileStyle  lipgloss.Style
	blankStyle lipgloss.Style
	gridStyle  lipgloss.Style
	dimStyle   lipgloss.Style
}

// NewRenderer creates a renderer. styled enables lipgloss colors/borders.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{
		styled:     styled,
		tileStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		blankStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		gridStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		dimStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Grid renders the board as a side×side grid, one row per line. Boards
// whose length is not a perfect square fall back to the flat form.
func (r *Renderer) Grid(b board.Board) string {
	side, err := board.Side(len(b))
	if err != nil {
		return b.String()
	}

	// Widest tile label decides the cell width.
	width := len(fmt.Sprint(len(b) - 1))

	var rows []string
	for row := 0; row < side; row++ {
		cells := make([]string, 0, side)
		for col := 0; col < side; col++ {
			v := b[row*side+col]
			if v == board.Blank {
				cell := fmt.Sprintf("%*s", width, "·")
				if r.styled {
					cell = r.blankStyle.Render(cell)
				}
				cells = append(cells, cell)
				continue
			}
			cell := fmt.Sprintf("%*d", width, v)
			if r.styled {
				cell = r.tileStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	grid := strings.Join(rows, "\n")
	if r.styled {
		return r.gridStyle.Render(grid)
	}
	return grid
}

// Actions renders a numbered move list, one action per line.
func (r *Renderer) Actions(actions []solver.Action) string {
	var sb strings.Builder
	for i, a := range actions {
		line := fmt.Sprintf("%3d. tile %d: slot %d -> slot %d", i+1, a.Tile, a.From, a.To)
		if r.styled {
			line = r.dimStyle.Render(line)
		}
		sb.WriteString(line)
		if i < len(actions)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Outcome renders the user-facing verdict line. The three outcomes stay
// three distinct messages.
func (r *Renderer) Outcome(res solver.Result) string {
	switch res.Status {
	case solver.StatusAlreadySolved:
		return "Already solved."
	case solver.StatusSolved:
		if len(res.Actions) == 1 {
			return "Solved in 1 move."
		}
		return fmt.Sprintf("Solved in %d moves.", len(res.Actions))
	case solver.StatusUnsolvable:
		return "No solution exists."
	default:
		return res.Status.String()
	}
}
