package entity

import "fmt"

// Cell is a board coordinate, zero-based.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellAt - converts a row-major index on a board of the given size into a Cell.
func CellAt(index, size int) Cell {
	return Cell{Row: index / size, Col: index % size}
}

// Index - returns the row-major index of the cell on a board of the given size.
func (that Cell) Index(size int) int {
	return that.Row*size + that.Col
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Pattern is a line of cells that wins the game when one player owns all of them.
type Pattern []Cell

// GeneratePatterns - returns the 2n+2 winning lines of an n×n board:
// row 0, column 0, row 1, column 1, ..., then the main and the anti diagonal.
func GeneratePatterns(size int) []Pattern {
	if size < 1 {
		return nil
	}

	patterns := make([]Pattern, 0, 2*size+2)
	for i := 0; i < size; i++ {
		row := make(Pattern, 0, size)
		col := make(Pattern, 0, size)
		for j := 0; j < size; j++ {
			row = append(row, Cell{Row: i, Col: j})
			col = append(col, Cell{Row: j, Col: i})
		}
		patterns = append(patterns, row, col)
	}

	diagonal := make(Pattern, 0, size)
	antiDiagonal := make(Pattern, 0, size)
	for i := 0; i < size; i++ {
		diagonal = append(diagonal, Cell{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, Cell{Row: i, Col: size - 1 - i})
	}

	return append(patterns, diagonal, antiDiagonal)
}
