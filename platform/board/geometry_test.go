package board

import "testing"

func TestAdvanceWrapsAroundForAllPositions(t *testing.T) {
	for position := 0; position < BoardSize; position++ {
		for die1 := MinBorder; die1 <= MaxBorder; die1++ {
			for die2 := MinBorder; die2 <= MaxBorder; die2++ {
				got := Advance(position, die1, die2)
				want := (position + die1 + die2) % BoardSize
				if got != want {
					t.Fatalf("Advance(%d, %d, %d) = %d, want %d", position, die1, die2, got, want)
				}
				if got < 0 || got >= BoardSize {
					t.Fatalf("Advance(%d, %d, %d) = %d, outside the board", position, die1, die2, got)
				}
			}
		}
	}
}

func TestAdvancePassesTheLastCell(t *testing.T) {
	// From cell 38 a roll of 1+3 passes cell 39 and keeps counting from 0.
	if got := Advance(38, 1, 3); got != 2 {
		t.Errorf("Advance(38, 1, 3) = %d, want 2", got)
	}
}

func TestStepHandlesNegativeDeltas(t *testing.T) {
	if got := Step(1, -3); got != BoardSize-2 {
		t.Errorf("Step(1, -3) = %d, want %d", got, BoardSize-2)
	}
	if got := Step(39, 3); got != 2 {
		t.Errorf("Step(39, 3) = %d, want 2", got)
	}
}

func TestRollDieStaysWithinBorders(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		value := RollDie()
		if value < MinBorder || value > MaxBorder {
			t.Fatalf("RollDie() = %d, want value in [%d, %d]", value, MinBorder, MaxBorder)
		}
		seen[value] = true
	}
	for value := MinBorder; value <= MaxBorder; value++ {
		if !seen[value] {
			t.Errorf("RollDie() never produced %d in 10000 draws", value)
		}
	}
}
