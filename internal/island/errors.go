package island

import "fmt"

// FormatError reports an island id string that does not have the
// island:<method>:<width>:<height>:<seed> shape.
type FormatError struct {
	ID     string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("island id %q: %s", e.ID, e.Reason)
}

// ValidationError reports island parameters the generator cannot work with.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid island %s %d: %s", e.Field, e.Value, e.Reason)
}

// UnclassifiedError is the panic value raised when an outline cell matches
// no tiling rule. It means the mask was not properly gap-closed.
type UnclassifiedError struct {
	Cell Coord
	Land Direction
}

func (e *UnclassifiedError) Error() string {
	return fmt.Sprintf("outline cell (%d,%d) with land at %v matches no tile rule", e.Cell.X, e.Cell.Y, e.Land)
}
