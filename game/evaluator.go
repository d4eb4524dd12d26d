// game/evaluator.go
package game

// BestDistance concatenates a player's hole digits with the community digits,
// enumerates every ordering of the combined multiset, reads each ordering as a
// base-10 integer (leading zeros kept, so [0,7] yields 7 via "07"), and
// returns the minimum absolute distance to answer.
//
// ok is false when the digit set is empty; such a hand compares worse than any
// real hand and can never win. Duplicate digit values produce duplicate
// candidates but never change the minimum.
//
// Cost grows factorially with the digit count (7 digits -> 5040 orderings).
// Call it once per non-folded player at showdown, never per broadcast.
func BestDistance(hole, community []Digit, answer int64) (distance int64, ok bool) {
	digits := make([]Digit, 0, len(hole)+len(community))
	digits = append(digits, hole...)
	digits = append(digits, community...)
	if len(digits) == 0 {
		return 0, false
	}

	used := make([]bool, len(digits))
	best := int64(-1)

	var walk func(depth int, value int64)
	walk = func(depth int, value int64) {
		if depth == len(digits) {
			delta := value - answer
			if delta < 0 {
				delta = -delta
			}
			if best < 0 || delta < best {
				best = delta
			}
			return
		}
		for i, d := range digits {
			if used[i] {
				continue
			}
			used[i] = true
			walk(depth+1, value*10+int64(d))
			used[i] = false
		}
	}
	walk(0, 0)

	return best, true
}
