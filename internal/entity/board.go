package entity

import (
	"fmt"
	"slices"
	"strings"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is an n×n grid stored row-major.
type Board struct {
	Size  int    `json:"size"`
	Cells []Mark `json:"cells"`
}

func NewBoard(size int) Board {
	return Board{
		Size:  size,
		Cells: make([]Mark, size*size),
	}
}

func (that Board) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < that.Size && cell.Col >= 0 && cell.Col < that.Size
}

// At - returns the mark on the cell. The cell must be in bounds.
func (that Board) At(cell Cell) Mark {
	return that.Cells[cell.Index(that.Size)]
}

func (that Board) IsFull() bool {
	return !slices.Contains(that.Cells, EmptyCell)
}

// AvailableCells - returns the empty cells in row-major order.
func (that Board) AvailableCells() []Cell {
	cells := make([]Cell, 0, len(that.Cells))
	for i, mark := range that.Cells {
		if mark == EmptyCell {
			cells = append(cells, CellAt(i, that.Size))
		}
	}

	return cells
}

// place returns a copy of the board with the mark set, the receiver is left untouched.
func (that Board) place(cell Cell, mark Mark) Board {
	cells := slices.Clone(that.Cells)
	cells[cell.Index(that.Size)] = mark

	return Board{Size: that.Size, Cells: cells}
}

// Render - lays the cells out row by row, cell renders one "index:mark" entry.
func (that Board) Render(cell func(index int, mark Mark) string) string {
	var sb strings.Builder
	for i, mark := range that.Cells {
		sb.WriteString(cell(i, mark))
		sb.WriteString("   ")

		if (i+1)%that.Size == 0 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// String - renders the board the way the prompt numbers it: "index:mark" per cell.
func (that Board) String() string {
	return that.Render(func(index int, mark Mark) string {
		symbol := string(mark)
		if mark == EmptyCell {
			symbol = " "
		}
		return fmt.Sprintf("%d:%s", index, symbol)
	})
}
