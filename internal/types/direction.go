package types

// SearchDirection selects which part of a row or document a search covers.
type SearchDirection int

const (
	// Forward searches from the given position towards the end.
	Forward SearchDirection = iota
	// Backward searches from the given position towards the start.
	Backward
)

func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
