package broadcast

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/wfunc/quizpoker/network"
	"github.com/wfunc/quizpoker/session"
)

// MockConnection records every packet sent through it.
type MockConnection struct {
	mutex sync.Mutex
	sent  []uint16
}

func (m *MockConnection) Send(msgID uint16, data []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sent = append(m.sent, msgID)
	return nil
}

func (m *MockConnection) Close() error                         { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                 { return &net.TCPAddr{} }
func (m *MockConnection) SetHeartbeat(interval time.Duration)  {}
func (m *MockConnection) ReadPacket() (*network.Packet, error) { return nil, nil }

func (m *MockConnection) sentCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.sent)
}

func joinedSession(m *session.Manager, id, roomCode string) *MockConnection {
	conn := &MockConnection{}
	sess := session.NewSession(id, conn)
	sess.RoomCode = roomCode
	m.Add(sess)
	return conn
}

func TestBroadcastToRoom(t *testing.T) {
	sessions := session.NewManager()
	inRoom1 := joinedSession(sessions, "s1", "ROOM-A")
	inRoom2 := joinedSession(sessions, "s2", "ROOM-A")
	outside := joinedSession(sessions, "s3", "ROOM-B")

	b := NewRoomBroadcaster(sessions)
	if err := b.BroadcastToRoom("ROOM-A", network.MsgTypeState, []byte(`{}`)); err != nil {
		t.Fatalf("BroadcastToRoom failed: %v", err)
	}

	if inRoom1.sentCount() != 1 || inRoom2.sentCount() != 1 {
		t.Error("Every session in the room must receive the broadcast")
	}
	if outside.sentCount() != 0 {
		t.Error("Sessions in other rooms must not receive the broadcast")
	}
}

func TestBroadcastToRoom_EmptyRoom(t *testing.T) {
	b := NewRoomBroadcaster(session.NewManager())
	if err := b.BroadcastToRoom("GHOST", network.MsgTypeToast, nil); err != nil {
		t.Errorf("Broadcasting to an empty room is not an error, got: %v", err)
	}
}

func TestBroadcastToAll(t *testing.T) {
	sessions := session.NewManager()
	a := joinedSession(sessions, "s1", "ROOM-A")
	c := joinedSession(sessions, "s2", "ROOM-B")

	b := NewRoomBroadcaster(sessions)
	if err := b.BroadcastToAll(network.MsgTypeToast, []byte(`{}`)); err != nil {
		t.Fatalf("BroadcastToAll failed: %v", err)
	}

	if a.sentCount() != 1 || c.sentCount() != 1 {
		t.Error("Every live session must receive a global broadcast")
	}
}
