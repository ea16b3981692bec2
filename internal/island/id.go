package island

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// IDPrefix tags ids of procedurally generated islands.
const IDPrefix = "island"

const (
	// MethodSmall builds a standard island for one slot of the 3x3 map grid.
	MethodSmall = 0
	// MethodLarge builds a single large island.
	MethodLarge = 1

	// MinDimension is the smallest width or height that leaves room for
	// shape anchors, which are kept 8 cells away from every border.
	MinDimension = 2 * anchorMargin
)

var idPattern = regexp.MustCompile(`^` + IDPrefix + `:([0-9]+):([0-9]+):([0-9]+):(-?[0-9]+)$`)

// Params fully determines an island's terrain.
type Params struct {
	Method int
	Width  int
	Height int
	Seed   int64
}

// ID encodes the params as an island id string.
func (p Params) ID() string {
	return fmt.Sprintf("%s:%d:%d:%d:%d", IDPrefix, p.Method, p.Width, p.Height, p.Seed)
}

// Validate checks that the generator can build an island from p.
func (p Params) Validate() error {
	if p.Method != MethodSmall && p.Method != MethodLarge {
		return &ValidationError{Field: "creation method", Value: p.Method, Reason: "must be 0 or 1"}
	}
	if p.Width < MinDimension {
		return &ValidationError{Field: "width", Value: p.Width, Reason: fmt.Sprintf("must be at least %d", MinDimension)}
	}
	if p.Height < MinDimension {
		return &ValidationError{Field: "height", Value: p.Height, Reason: fmt.Sprintf("must be at least %d", MinDimension)}
	}
	return nil
}

// IsRandomIslandID reports whether s refers to a generated island rather
// than some other kind of map reference.
func IsRandomIslandID(s string) bool {
	return idPattern.MatchString(s)
}

// ParseID decodes an island id string. Malformed ids yield a *FormatError.
func ParseID(s string) (Params, error) {
	m := idPattern.FindStringSubmatch(s)
	if m == nil {
		return Params{}, &FormatError{ID: s, Reason: describeMismatch(s)}
	}

	var ints [3]int
	for i := range ints {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Params{}, &FormatError{ID: s, Reason: fmt.Sprintf("field %d out of range", i+1)}
		}
		ints[i] = v
	}
	seed, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return Params{}, &FormatError{ID: s, Reason: "seed out of range"}
	}

	return Params{Method: ints[0], Width: ints[1], Height: ints[2], Seed: seed}, nil
}

// describeMismatch explains why s failed to match the id pattern.
func describeMismatch(s string) string {
	fields := strings.Split(s, ":")
	switch {
	case fields[0] != IDPrefix:
		return fmt.Sprintf("missing %q prefix", IDPrefix)
	case len(fields) != 5:
		return fmt.Sprintf("expected 4 fields after prefix, got %d", len(fields)-1)
	default:
		return "fields must be integers and only the seed may be negative"
	}
}
