package players

import "strings"

// Position is one of the five basketball position labels used by the API.
type Position string

const (
	PositionBase     Position = "Base"
	PositionEscolta  Position = "Escolta"
	PositionAlero    Position = "Alero"
	PositionAlaPivot Position = "Ala-pívot"
	PositionPivot    Position = "Pívot"
	PositionUnknown  Position = ""
)

var positions = []Position{
	PositionBase,
	PositionEscolta,
	PositionAlero,
	PositionAlaPivot,
	PositionPivot,
}

// Positions returns the ordered set of known positions.
func Positions() []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	return out
}

// Index returns the position's place in the ordered set, or -1 if unknown.
func (p Position) Index() int {
	for i, candidate := range positions {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	return p.Index() >= 0
}

func (p Position) String() string {
	return string(p)
}

// ParsePosition matches a label case-insensitively. Unknown labels yield PositionUnknown.
func ParsePosition(raw string) Position {
	raw = strings.TrimSpace(raw)
	for _, candidate := range positions {
		if strings.EqualFold(string(candidate), raw) {
			return candidate
		}
	}
	return PositionUnknown
}
