package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrUnreadableInput = errors.New("unreadable position")

// ParseCell - accepts a row-major index ("4") or a row and a column ("1 1", "1,1").
// Range checks are left to the game, which knows the board.
func ParseCell(input string, size int) (entity.Cell, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		number, err := strconv.Atoi(field)
		if err != nil {
			return entity.Cell{}, fmt.Errorf("%w: %q", ErrUnreadableInput, input)
		}
		numbers = append(numbers, number)
	}

	switch len(numbers) {
	case 1:
		if numbers[0] < 0 {
			return entity.Cell{Row: -1, Col: -1}, nil
		}
		return entity.CellAt(numbers[0], size), nil
	case 2:
		return entity.Cell{Row: numbers[0], Col: numbers[1]}, nil
	default:
		return entity.Cell{}, fmt.Errorf("%w: %q", ErrUnreadableInput, input)
	}
}
