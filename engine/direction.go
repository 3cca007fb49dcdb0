package engine

import "github.com/kuredoro/snake_grid/core"

// Arbitrate decides the heading after a turn request. A snake longer than
// one cell cannot reverse into its own neck, so the exact opposite of
// current is rejected; any other request wins.
func Arbitrate(current, requested core.Direction, length int) core.Direction {
	if !requested.Valid() {
		return current
	}
	if length > 1 && requested == current.Opposite() {
		return current
	}
	return requested
}
