// network/protocol.go
package network

import (
	"errors"
	"fmt"
)

// Message ids. Client-to-server below 200, server-to-client at 200 and up.
const (
	MsgTypeHeartbeat uint16 = 1

	MsgTypeHello  uint16 = 101
	MsgTypeAction uint16 = 102

	MsgTypeAck   uint16 = 201
	MsgTypeState uint16 = 202
	MsgTypeToast uint16 = 203
	MsgTypeCue   uint16 = 204
)

// Role is what a connection is for. Only players get a seat in the roster;
// hosts drive phase transitions and displays just watch.
type Role string

const (
	RoleHost    Role = "host"
	RolePlayer  Role = "player"
	RoleDisplay Role = "display"
)

var ErrInvalidHello = errors.New("invalid hello")

// Hello is the join handshake. The room code is an opaque key chosen by the
// host; saying hello to an existing code joins that room.
type Hello struct {
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	RoomCode string `json:"roomCode"`
}

func (h Hello) Validate() error {
	switch h.Role {
	case RoleHost, RolePlayer, RoleDisplay:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidHello, h.Role)
	}
	if h.RoomCode == "" {
		return fmt.Errorf("%w: empty room code", ErrInvalidHello)
	}
	return nil
}

// Ack answers a hello. PlayerID tells the client the id it is seated under,
// so bet and fold payloads can name it.
type Ack struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	PlayerID string `json:"playerId,omitempty"`
}

// Toast is a short-lived, non-authoritative notification. Receivers must not
// derive game state from it.
type Toast struct {
	Message string `json:"message"`
}

// Cue is a fire-and-forget presentation trigger, e.g. a dealing animation.
type Cue struct {
	Name string `json:"name"`
}

const (
	CueDealingCards          = "dealingCards"
	CueDealingCommunityCards = "dealingCommunityCards"
)
