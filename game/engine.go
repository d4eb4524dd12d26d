// game/engine.go
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Engine precondition errors. A failed transition returns the input state
// untouched together with one of these, so callers can surface the violation
// to the acting client without ever publishing a partial mutation.
var (
	ErrWrongPhase    = errors.New("action not allowed in current phase")
	ErrRoomFull      = errors.New("room is full")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrNoQuestion    = errors.New("no question assigned")
)

// Winner identifies the round winner and its evaluated distance.
type Winner struct {
	PlayerID string `json:"playerId"`
	Distance int64  `json:"distance"`
}

// AddPlayer appends a seat with the configured starting bankroll. Adding an
// id that is already seated is a no-op, not an error; the roster must never
// hold duplicates.
func (g GameState) AddPlayer(id, name string) (GameState, error) {
	if g.playerIndex(id) >= 0 {
		return g, nil
	}
	if g.MaxPlayers > 0 && len(g.Players) >= g.MaxPlayers {
		return g, fmt.Errorf("%w: %d seats", ErrRoomFull, g.MaxPlayers)
	}
	out := g.clone()
	out.Players = append(out.Players, PlayerState{
		ID:       id,
		Name:     name,
		Bankroll: g.StartingBankroll,
	})
	return out, nil
}

// RemovePlayer drops a seat by id. Removing an unknown id is harmless.
// The pot and dealer index are not rebalanced beyond the modulo-by-count
// rule applied at round end.
func (g GameState) RemovePlayer(id string) GameState {
	idx := g.playerIndex(id)
	if idx < 0 {
		return g
	}
	out := g.clone()
	out.Players = append(out.Players[:idx], out.Players[idx+1:]...)
	return out
}

// StartGame moves the room out of the lobby.
func (g GameState) StartGame() (GameState, error) {
	if g.Phase != PhaseLobby {
		return g, fmt.Errorf("%w: startGame in %s", ErrWrongPhase, g.Phase)
	}
	out := g.clone()
	out.Phase = PhaseQuestion
	return out, nil
}

// AssignQuestion attaches a uniformly random question from the pool to the
// current round. Allowed from the lobby or the question phase; either way the
// room ends up in the question phase.
func (g GameState) AssignQuestion() (GameState, error) {
	if g.Phase != PhaseLobby && g.Phase != PhaseQuestion {
		return g, fmt.Errorf("%w: setQuestion in %s", ErrWrongPhase, g.Phase)
	}
	q := randomQuestion()
	out := g.clone()
	out.Phase = PhaseQuestion
	out.Round.Question = &q
	return out, nil
}

// DealInitialCards generates the 5 community digits and every player's 2 hole
// digits in one atomic step and enters the betting phase. This is the only
// point in a round where community cards come into existence; later deal
// signals are presentation triggers and must not regenerate them.
func (g GameState) DealInitialCards() (GameState, error) {
	if g.Phase != PhaseQuestion {
		return g, fmt.Errorf("%w: dealInitialCards in %s", ErrWrongPhase, g.Phase)
	}
	out := g.clone()
	out.Phase = PhaseBetting
	out.Round.CommunityCards = dealHand(5)
	for i := range out.Players {
		out.Players[i].Hand = dealHand(2)
	}
	return out, nil
}

// DealCommunityCards is the presentation trigger for revealing the already
// dealt community cards. It changes nothing.
func (g GameState) DealCommunityCards() (GameState, error) {
	return g, nil
}

// PlaceBet moves amount into the pot. The bankroll is clamped at zero while
// the pot is credited the full requested amount; the mismatch when a player
// bets past their bankroll is intentional, documented behavior. Zero and
// negative amounts are no-ops by contract, not errors.
func (g GameState) PlaceBet(playerID string, amount int64) (GameState, error) {
	idx := g.playerIndex(playerID)
	if idx < 0 {
		return g, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	if amount <= 0 {
		return g, nil
	}
	out := g.clone()
	p := &out.Players[idx]
	p.Bankroll -= amount
	if p.Bankroll <= 0 {
		p.Bankroll = 0
		p.IsAllIn = true
	}
	out.Round.Pot += amount
	return out, nil
}

// Fold marks a player as out of the current round.
func (g GameState) Fold(playerID string) (GameState, error) {
	idx := g.playerIndex(playerID)
	if idx < 0 {
		return g, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	out := g.clone()
	out.Players[idx].HasFolded = true
	return out, nil
}

// RevealAnswer ends betting and enters the showdown.
func (g GameState) RevealAnswer() (GameState, error) {
	if g.Phase != PhaseBetting {
		return g, fmt.Errorf("%w: revealAnswer in %s", ErrWrongPhase, g.Phase)
	}
	out := g.clone()
	out.Phase = PhaseShowdown
	return out, nil
}

// DetermineWinner evaluates every non-folded hand against the answer and
// returns the player with the strictly smallest distance. Ties go to the
// earlier seat in roster order; the first player to reach the minimum keeps
// it. Returns (nil, nil) when no non-folded player exists.
func (g GameState) DetermineWinner() (*Winner, error) {
	if g.Round.Question == nil {
		return nil, ErrNoQuestion
	}
	var winner *Winner
	for i := range g.Players {
		p := &g.Players[i]
		if p.HasFolded {
			continue
		}
		d, ok := BestDistance(p.Hand, g.Round.CommunityCards, g.Round.Question.Answer)
		if !ok {
			// Empty hand, infinitely far away.
			continue
		}
		if winner == nil || d < winner.Distance {
			winner = &Winner{PlayerID: p.ID, Distance: d}
		}
	}
	return winner, nil
}

// Payout credits the pot to the winner and empties it.
func (g GameState) Payout(winnerID string) (GameState, error) {
	idx := g.playerIndex(winnerID)
	if idx < 0 {
		return g, fmt.Errorf("%w: %s", ErrUnknownPlayer, winnerID)
	}
	out := g.clone()
	out.Players[idx].Bankroll += out.Round.Pot
	out.Round.Pot = 0
	return out, nil
}

// EndRound settles the round and returns the room to the lobby: winner
// determined and paid (at most one evaluator pass per player), round id
// bumped, question and cards cleared, dealer advanced, fold/all-in flags
// reset. The winner is also returned so callers can record it.
func (g GameState) EndRound() (GameState, *Winner, error) {
	winner, err := g.DetermineWinner()
	if err != nil && !errors.Is(err, ErrNoQuestion) {
		return g, nil, err
	}

	settled := g
	if winner != nil {
		settled, err = g.Payout(winner.PlayerID)
		if err != nil {
			return g, nil, err
		}
	}

	out := settled.clone()
	out.Phase = PhaseLobby
	out.Round = RoundState{
		RoundID:        nextRoundID(g.Round.RoundID),
		Question:       nil,
		CommunityCards: nil,
		Pot:            0,
		DealerIndex:    (g.Round.DealerIndex + 1) % maxInt(1, len(g.Players)),
	}
	for i := range out.Players {
		out.Players[i].Hand = nil
		out.Players[i].HasFolded = false
		out.Players[i].IsAllIn = false
	}
	return out, winner, nil
}

// nextRoundID increments the numeric suffix of a round id ("r3" -> "r4").
// Unparseable ids restart the sequence at r1.
func nextRoundID(prev string) string {
	var digits strings.Builder
	for _, r := range prev {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, _ := strconv.Atoi(digits.String())
	return fmt.Sprintf("r%d", n+1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
