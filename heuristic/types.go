// Package heuristic defines identifiers and sentinel errors for selecting
// a heuristic by name, used by dispatchers and command-line front-ends.
package heuristic

import (
	"errors"
	"strings"
)

// ErrUnknownHeuristic is returned when an ID or name does not correspond
// to a registered heuristic.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// ID selects one of the provided heuristics by stable identifier.
type ID int

const (
	// ManhattanID selects Manhattan.
	ManhattanID ID = iota
	// MisplacedTilesID selects MisplacedTiles.
	MisplacedTilesID
)

// idNames indexes ID values for String; kept in declaration order.
var idNames = [...]string{"manhattan", "misplaced"}

// String returns the canonical lowercase name of the ID.
func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return "unknown"
	}
	return idNames[id]
}

// ForID returns the Func registered under id.
func ForID(id ID) (Func, error) {
	switch id {
	case ManhattanID:
		return Manhattan, nil
	case MisplacedTilesID:
		return MisplacedTiles, nil
	default:
		return nil, ErrUnknownHeuristic
	}
}

// ParseID resolves a case-insensitive heuristic name ("manhattan",
// "misplaced") into its ID.
func ParseID(name string) (ID, error) {
	switch strings.ToLower(name) {
	case "manhattan":
		return ManhattanID, nil
	case "misplaced", "misplaced-tiles":
		return MisplacedTilesID, nil
	default:
		return 0, ErrUnknownHeuristic
	}
}
