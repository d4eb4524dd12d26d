// network/actions.go
package network

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown action type")

// Action is the closed set of things a client can ask the engine to do.
// Every variant carries its own typed payload; the gateway switches over the
// set exhaustively.
type Action interface {
	isAction()
}

type (
	StartGame          struct{}
	SetQuestion        struct{}
	DealInitialCards   struct{}
	DealCommunityCards struct{}
	RevealAnswer       struct{}
	EndRound           struct{}
	NewGame            struct{}

	Bet struct {
		PlayerID string `json:"playerId"`
		Amount   int64  `json:"amount"`
	}

	Fold struct {
		PlayerID string `json:"playerId"`
	}
)

func (StartGame) isAction()          {}
func (SetQuestion) isAction()        {}
func (DealInitialCards) isAction()   {}
func (DealCommunityCards) isAction() {}
func (RevealAnswer) isAction()       {}
func (EndRound) isAction()           {}
func (NewGame) isAction()            {}
func (Bet) isAction()                {}
func (Fold) isAction()               {}

type actionEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction parses an action envelope into its typed variant.
func DecodeAction(data []byte) (Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed action: %w", err)
	}

	switch env.Type {
	case "startGame":
		return StartGame{}, nil
	case "setQuestion":
		return SetQuestion{}, nil
	case "dealInitialCards":
		return DealInitialCards{}, nil
	case "dealCommunityCards":
		return DealCommunityCards{}, nil
	case "revealAnswer":
		return RevealAnswer{}, nil
	case "endRound":
		return EndRound{}, nil
	case "newGame":
		return NewGame{}, nil
	case "bet":
		var a Bet
		if err := json.Unmarshal(env.Payload, &a); err != nil {
			return nil, fmt.Errorf("malformed bet payload: %w", err)
		}
		return a, nil
	case "fold":
		var a Fold
		if err := json.Unmarshal(env.Payload, &a); err != nil {
			return nil, fmt.Errorf("malformed fold payload: %w", err)
		}
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
}

// EncodeAction wraps a typed action back into its wire envelope. Used by the
// CLI client and tests.
func EncodeAction(a Action) ([]byte, error) {
	var env actionEnvelope
	switch v := a.(type) {
	case StartGame:
		env.Type = "startGame"
	case SetQuestion:
		env.Type = "setQuestion"
	case DealInitialCards:
		env.Type = "dealInitialCards"
	case DealCommunityCards:
		env.Type = "dealCommunityCards"
	case RevealAnswer:
		env.Type = "revealAnswer"
	case EndRound:
		env.Type = "endRound"
	case NewGame:
		env.Type = "newGame"
	case Bet:
		env.Type = "bet"
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		env.Payload = payload
	case Fold:
		env.Type = "fold"
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		env.Payload = payload
	default:
		return nil, ErrUnknownAction
	}
	return json.Marshal(env)
}
