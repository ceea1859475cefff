package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// RenderBoard prints the grid with every label right-aligned to the width of the
// largest cell number, so columns line up on any board size.
func RenderBoard(w io.Writer, snapshot entity.Snapshot) error {
	width := len(strconv.Itoa(snapshot.Size * snapshot.Size))

	var sb strings.Builder
	sb.WriteString("\n")

	for row := 0; row < snapshot.Size; row++ {
		for col, cell := range snapshot.Row(row) {
			if col == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(" | ")
			}
			fmt.Fprintf(&sb, "%*s", width, cell.Label)
		}
		sb.WriteString(" \n")

		if row < snapshot.Size-1 {
			sb.WriteString(strings.Repeat("-", (width+3)*snapshot.Size-1))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func RenderInstruction(w io.Writer, snapshot entity.Snapshot) error {
	var line string

	switch {
	case snapshot.Status == entity.StatusOngoing:
		line = fmt.Sprintf("%s, choose a box to place an '%s' into:", snapshot.Turn.Name, snapshot.Turn.Signature())
	case snapshot.Winner != nil:
		line = fmt.Sprintf("Congratulations %s! You have won.", snapshot.Winner.Name)
	default:
		line = "Game ended, it is a draw."
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write instruction: %w", err)
	}

	return nil
}
