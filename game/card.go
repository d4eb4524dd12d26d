// game/card.go
package game

import (
	"math/rand"
)

// Digit is a single numeric card value in [0,9]. It is a plain value type
// with no identity; two cards with the same digit are interchangeable.
type Digit int

// DealCard draws one uniformly random digit card.
func DealCard() Digit {
	return Digit(rand.Intn(10))
}

func dealHand(n int) []Digit {
	hand := make([]Digit, n)
	for i := range hand {
		hand[i] = DealCard()
	}
	return hand
}
