// broadcast/broadcast.go
package broadcast

import (
	"github.com/wfunc/quizpoker/session"
)

// Broadcaster fans a packet out to a broadcast group.
type Broadcaster interface {
	BroadcastToRoom(roomCode string, msgID uint16, data []byte) error
	BroadcastToAll(msgID uint16, data []byte) error
}

// RoomBroadcaster sends to every session joined to a room code. Sends are
// best-effort: a dead connection is skipped and will be reaped by its own
// read loop, never by the broadcaster.
type RoomBroadcaster struct {
	sessionManager *session.Manager
}

func NewRoomBroadcaster(sessionManager *session.Manager) *RoomBroadcaster {
	return &RoomBroadcaster{
		sessionManager: sessionManager,
	}
}

func (b *RoomBroadcaster) BroadcastToRoom(roomCode string, msgID uint16, data []byte) error {
	for _, s := range b.sessionManager.GetByRoom(roomCode) {
		if err := s.Send(msgID, data); err != nil {
			continue
		}
	}
	return nil
}

func (b *RoomBroadcaster) BroadcastToAll(msgID uint16, data []byte) error {
	for _, s := range b.sessionManager.Snapshot() {
		if err := s.Send(msgID, data); err != nil {
			continue
		}
	}
	return nil
}
