package board

import (
	"math/rand"
	"time"
)

const (
	// BoardSize is the number of cells on the playing field.
	BoardSize = 40
	// MinBorder and MaxBorder bound a single die value, inclusive.
	MinBorder = 1
	MaxBorder = 6
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Advance moves a token by the sum of two dice with modular wraparound.
// Passing the last cell wraps to 0 and keeps counting within the same roll.
func Advance(position, die1, die2 int) int {
	return (position + die1 + die2) % BoardSize
}

// Step moves a token by an arbitrary delta, which may be negative.
func Step(position, delta int) int {
	return ((position+delta)%BoardSize + BoardSize) % BoardSize
}

// RollDie returns a uniformly distributed die value in [MinBorder, MaxBorder].
func RollDie() int {
	return rand.Intn(MaxBorder-MinBorder+1) + MinBorder
}
