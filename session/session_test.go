package session

import (
	"net"
	"testing"
	"time"

	"github.com/wfunc/quizpoker/network"
)

// MockConnection is a test double for the network.Connection interface.
type MockConnection struct{}

func (m *MockConnection) Send(msgID uint16, data []byte) error { return nil }
func (m *MockConnection) Close() error                         { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                 { return &net.TCPAddr{} }
func (m *MockConnection) SetHeartbeat(interval time.Duration)  {}
func (m *MockConnection) ReadPacket() (*network.Packet, error) { return nil, nil }

func TestNewManager(t *testing.T) {
	manager := NewManager()
	if manager == nil {
		t.Fatal("NewManager should not return nil")
	}
	if manager.sessions == nil {
		t.Fatal("NewManager should initialize the sessions map")
	}
}

func TestManager_Add_Get_Remove(t *testing.T) {
	manager := NewManager()
	sessionID := "test_session_1"
	sess := NewSession(sessionID, &MockConnection{})

	manager.Add(sess)
	if manager.Count() != 1 {
		t.Fatalf("Expected session count to be 1, got %d", manager.Count())
	}

	retrievedSess, exists := manager.Get(sessionID)
	if !exists {
		t.Fatal("Get should find the added session")
	}
	if retrievedSess != sess {
		t.Fatal("Get should return the same session instance")
	}

	manager.Remove(sessionID)
	if manager.Count() != 0 {
		t.Fatalf("Expected session count to be 0 after removal, got %d", manager.Count())
	}

	if _, exists = manager.Get(sessionID); exists {
		t.Fatal("Get should not find the removed session")
	}
}

func TestManager_GetByRoom(t *testing.T) {
	manager := NewManager()

	sess1 := NewSession("session1", &MockConnection{})
	sess1.RoomCode = "ROOM-A"
	sess1.Role = network.RoleHost

	sess2 := NewSession("session2", &MockConnection{})
	sess2.RoomCode = "ROOM-B"
	sess2.Role = network.RolePlayer

	sess3 := NewSession("session3", &MockConnection{})
	sess3.RoomCode = "ROOM-A"
	sess3.Role = network.RoleDisplay

	manager.Add(sess1)
	manager.Add(sess2)
	manager.Add(sess3)

	roomA := manager.GetByRoom("ROOM-A")
	if len(roomA) != 2 {
		t.Errorf("Expected 2 sessions in ROOM-A, got %d", len(roomA))
	}

	roomB := manager.GetByRoom("ROOM-B")
	if len(roomB) != 1 {
		t.Errorf("Expected 1 session in ROOM-B, got %d", len(roomB))
	}

	if empty := manager.GetByRoom("ROOM-C"); len(empty) != 0 {
		t.Errorf("Expected 0 sessions in ROOM-C, got %d", len(empty))
	}
}

func TestSession_Touch(t *testing.T) {
	sess := NewSession("test_session", &MockConnection{})
	before := sess.LastActive()

	time.Sleep(5 * time.Millisecond)
	sess.Touch()

	if !sess.LastActive().After(before) {
		t.Error("Touch should advance the last-active timestamp")
	}
}
