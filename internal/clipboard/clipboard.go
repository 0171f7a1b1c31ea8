// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the platform clipboard.
type System struct{}

var _ Writer = System{}

// NewSystem returns the platform clipboard writer.
func NewSystem() System {
	return System{}
}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
