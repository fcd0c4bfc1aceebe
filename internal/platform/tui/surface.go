package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Smallest terminal the game and its info panel fit in.
const (
	MinWidth  = 60
	MinHeight = 16
)

// ErrNoSurface is returned when there is no usable terminal to draw on.
var ErrNoSurface = errors.New("tui: no drawable surface")

// CheckSurface verifies that f is a terminal of at least MinWidth x MinHeight
// and returns its size.
func CheckSurface(f *os.File) (width, height int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%w: %s is not a terminal", ErrNoSurface, f.Name())
	}

	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cannot get terminal size: %w", ErrNoSurface, err)
	}

	if err := checkSize(width, height); err != nil {
		return width, height, err
	}
	return width, height, nil
}

// checkSize rejects terminals smaller than the minimum drawable area.
func checkSize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("%w: terminal is %dx%d, need at least %dx%d",
			ErrNoSurface, width, height, MinWidth, MinHeight)
	}
	return nil
}
