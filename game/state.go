// game/state.go
package game

import (
	"time"
)

// Phase is the coarse position of a room inside the round loop.
type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhaseQuestion Phase = "question"
	PhaseBetting  Phase = "betting"
	PhaseShowdown Phase = "showdown"

	// Reserved labels; the baseline loop does not enter these.
	PhaseReveal       Phase = "reveal"
	PhasePayout       Phase = "payout"
	PhaseIntermission Phase = "intermission"
)

// PlayerState is one seat at the table. ID is connection-derived and stable
// for the lifetime of the connection. The hand holds 0 digits outside an
// active round and exactly 2 after the initial deal, never 1.
type PlayerState struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Bankroll  int64   `json:"bankroll"`
	Hand      []Digit `json:"hand"`
	HasFolded bool    `json:"hasFolded"`
	IsAllIn   bool    `json:"isAllIn"`
}

// RoundState is the per-round sub-state. CommunityCards is all-or-nothing:
// empty until the initial deal, then exactly 5 for the rest of the round.
type RoundState struct {
	RoundID        string    `json:"roundId"`
	Question       *Question `json:"question"`
	CommunityCards []Digit   `json:"communityCards"`
	Pot            int64     `json:"pot"`
	DealerIndex    int       `json:"dealerIndex"`
}

// GameState is the authoritative state of one room. Transitions never mutate
// a GameState in place; they return a fresh value the directory swaps in
// atomically. Player order is join order and is load-bearing: dealer rotation
// and winner tie-breaks both depend on it.
type GameState struct {
	Code             string        `json:"code"`
	HostID           string        `json:"hostId"`
	CreatedAt        int64         `json:"createdAt"` // unix millis
	Phase            Phase         `json:"phase"`
	StartingBankroll int64         `json:"startingBankroll"`
	BigBlind         int64         `json:"bigBlind"`
	SmallBlind       int64         `json:"smallBlind"`
	MinPlayers       int           `json:"minPlayers"`
	MaxPlayers       int           `json:"maxPlayers"`
	Round            RoundState    `json:"round"`
	Players          []PlayerState `json:"players"`
}

// Settings are the per-room tuning knobs fixed at creation time.
type Settings struct {
	StartingBankroll int64
	BigBlind         int64
	SmallBlind       int64
	MinPlayers       int
	MaxPlayers       int
}

func DefaultSettings() Settings {
	return Settings{
		StartingBankroll: 1000,
		BigBlind:         20,
		SmallBlind:       10,
		MinPlayers:       2,
		MaxPlayers:       8,
	}
}

// NewGame creates an empty lobby-phase room.
func NewGame(code, hostID string, s Settings) GameState {
	return GameState{
		Code:             code,
		HostID:           hostID,
		CreatedAt:        time.Now().UnixMilli(),
		Phase:            PhaseLobby,
		StartingBankroll: s.StartingBankroll,
		BigBlind:         s.BigBlind,
		SmallBlind:       s.SmallBlind,
		MinPlayers:       s.MinPlayers,
		MaxPlayers:       s.MaxPlayers,
		Round: RoundState{
			RoundID:        "r1",
			Question:       nil,
			CommunityCards: nil,
			Pot:            0,
			DealerIndex:    0,
		},
		Players: nil,
	}
}

// clone deep-copies the state so a transition can build its result without
// aliasing slices held by the previous value.
func (g GameState) clone() GameState {
	out := g
	if g.Round.Question != nil {
		q := *g.Round.Question
		out.Round.Question = &q
	}
	if g.Round.CommunityCards != nil {
		out.Round.CommunityCards = append([]Digit(nil), g.Round.CommunityCards...)
	}
	if g.Players != nil {
		out.Players = make([]PlayerState, len(g.Players))
		for i, p := range g.Players {
			cp := p
			if p.Hand != nil {
				cp.Hand = append([]Digit(nil), p.Hand...)
			}
			out.Players[i] = cp
		}
	}
	return out
}

func (g GameState) playerIndex(id string) int {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return i
		}
	}
	return -1
}
