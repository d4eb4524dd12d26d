// server/server.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/rpc"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wfunc/quizpoker/broadcast"
	"github.com/wfunc/quizpoker/config"
	"github.com/wfunc/quizpoker/game"
	"github.com/wfunc/quizpoker/logger"
	"github.com/wfunc/quizpoker/monitor"
	"github.com/wfunc/quizpoker/network"
	"github.com/wfunc/quizpoker/persistence"
	"github.com/wfunc/quizpoker/room"
	quizrpc "github.com/wfunc/quizpoker/rpc"
	"github.com/wfunc/quizpoker/services"
	"github.com/wfunc/quizpoker/session"
	"github.com/wfunc/quizpoker/timer"
)

// GameServer is the realtime gateway: it accepts websocket connections, tags
// each with a session, applies actions to room state through the engine and
// fans the resulting state out to the room's broadcast group.
type GameServer struct {
	addr           string
	metricsAddr    string
	upgrader       websocket.Upgrader
	directory      *room.Directory
	sessionManager *session.Manager
	broadcaster    broadcast.Broadcaster
	statsService   *services.StatsService
	monitor        *monitor.Monitor
	timers         *timer.Manager
	rpcServer      *quizrpc.Server
	settings       game.Settings
	idleTimeout    time.Duration
	shutdownChan   chan struct{}
}

func NewGameServer(cfg *config.Config, db persistence.Database) *GameServer {
	s := &GameServer{
		addr:           cfg.Server.HTTPAddress,
		metricsAddr:    cfg.Server.MetricsAddress,
		directory:      room.NewDirectory(),
		sessionManager: session.NewManager(),
		statsService:   services.NewStatsService(db),
		monitor:        monitor.NewMonitor("quizpoker"),
		timers:         timer.NewManager(),
		idleTimeout:    time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
		shutdownChan:   make(chan struct{}),
		settings: game.Settings{
			StartingBankroll: cfg.Game.StartingBankroll,
			BigBlind:         cfg.Game.BigBlind,
			SmallBlind:       cfg.Game.SmallBlind,
			MinPlayers:       cfg.Game.MinPlayers,
			MaxPlayers:       cfg.Game.MaxPlayers,
		},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // host/player/display apps are served from other origins
			},
		},
	}

	s.broadcaster = broadcast.NewRoomBroadcaster(s.sessionManager)

	rpcServer, err := quizrpc.NewServer(cfg.Server.RPCAddress)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	admin := quizrpc.NewAdminService(s.directory, s.statsService)
	rpc.Register(admin)

	return s
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()
	s.monitor.StartServer(s.metricsAddr)

	// Housekeeping: room gauge refresh and idle-session sweep. Phases are
	// host-driven only; no timer ever advances a game.
	s.timers.AddTimer(10*time.Second, 10*time.Second, func() {
		s.monitor.SetActiveRooms(s.directory.Count())
	})
	s.timers.AddTimer(s.idleTimeout, time.Minute, s.sweepIdleSessions)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	logger.Log.Infof("Game server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.timers.Stop()
	s.rpcServer.Stop()
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessionManager.Add(sess)
	s.monitor.IncOnlineClients()

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.handleDisconnect(sess)
		s.sessionManager.Remove(sess.GetID())
		s.monitor.DecOnlineClients()
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			packet, err := wsConn.ReadPacket()
			if err != nil {
				return
			}
			s.handlePacket(sess, packet)
		}
	}
}

func (s *GameServer) handlePacket(sess *session.Session, packet *network.Packet) {
	start := time.Now()
	s.monitor.IncMessagesReceived()
	defer func() {
		s.monitor.ObserveMessageLatency(time.Since(start))
	}()

	switch packet.MsgID {
	case network.MsgTypeHeartbeat:
		sess.Touch()
	case network.MsgTypeHello:
		s.handleHello(sess, packet)
	case network.MsgTypeAction:
		s.handleAction(sess, packet)
	default:
		logger.Log.Infof("Unknown message type: %d", packet.MsgID)
	}
}

// handleHello joins the connection to a room's broadcast group. Players also
// get a seat; hosts and displays only watch. The room is created lazily on
// first contact, with the creating host's session id as hostId.
func (s *GameServer) handleHello(sess *session.Session, packet *network.Packet) {
	var hello network.Hello
	if err := json.Unmarshal(packet.Data, &hello); err != nil {
		s.sendAck(sess, false, "malformed hello")
		return
	}
	if err := hello.Validate(); err != nil {
		s.sendAck(sess, false, err.Error())
		return
	}

	sess.Role = hello.Role
	sess.Name = hello.Name
	sess.RoomCode = hello.RoomCode

	hostID := ""
	if hello.Role == network.RoleHost {
		hostID = sess.GetID()
	}
	state := s.directory.GetOrCreate(hello.RoomCode, hostID, s.settings)

	if hello.Role == network.RolePlayer {
		var err error
		state, err = s.directory.Update(hello.RoomCode, func(st game.GameState) (game.GameState, error) {
			return st.AddPlayer(sess.GetID(), hello.Name)
		})
		if err != nil {
			s.monitor.IncActionErrors()
			s.sendAck(sess, false, err.Error())
			s.broadcastState(hello.RoomCode, state)
			return
		}
	}

	logger.Log.Infof("Session %s joined room %s as %s", sess.GetID(), hello.RoomCode, hello.Role)
	s.sendAck(sess, true, "Connected successfully")
	s.broadcastState(hello.RoomCode, state)
}

// handleAction resolves the sender's room, applies the matching engine
// transition inside the room's critical section and broadcasts the result.
// Precondition failures produce a private toast and nothing else.
func (s *GameServer) handleAction(sess *session.Session, packet *network.Packet) {
	code := sess.RoomCode
	if code == "" {
		s.sendToast(sess, "No room found")
		s.monitor.IncActionErrors()
		return
	}

	act, err := network.DecodeAction(packet.Data)
	if err != nil {
		s.sendToast(sess, "Error: "+err.Error())
		s.monitor.IncActionErrors()
		return
	}

	var (
		winner   *game.Winner
		settled  game.GameState
		showdown time.Time
	)

	newState, err := s.directory.Update(code, func(st game.GameState) (game.GameState, error) {
		switch a := act.(type) {
		case network.StartGame:
			return st.StartGame()
		case network.SetQuestion:
			return st.AssignQuestion()
		case network.DealInitialCards:
			return st.DealInitialCards()
		case network.DealCommunityCards:
			return st.DealCommunityCards()
		case network.Bet:
			return st.PlaceBet(a.PlayerID, a.Amount)
		case network.Fold:
			return st.Fold(a.PlayerID)
		case network.RevealAnswer:
			return st.RevealAnswer()
		case network.EndRound:
			showdown = time.Now()
			settled = st
			next, w, err := st.EndRound()
			winner = w
			return next, err
		case network.NewGame:
			return game.NewGame(st.Code, st.HostID, s.settings), nil
		default:
			return st, network.ErrUnknownAction
		}
	})
	if err != nil {
		logger.Log.Warnf("Action rejected in room %s: %v", code, err)
		s.sendToast(sess, "Error: "+err.Error())
		s.monitor.IncActionErrors()
		return
	}

	s.broadcastState(code, newState)

	switch a := act.(type) {
	case network.StartGame:
		s.broadcastToast(code, "Game started!")
	case network.SetQuestion:
		s.broadcastToast(code, "Question set!")
	case network.DealInitialCards:
		s.broadcastCue(code, network.CueDealingCards)
		s.broadcastToast(code, "Initial cards dealt!")
	case network.DealCommunityCards:
		s.broadcastCue(code, network.CueDealingCommunityCards)
		s.broadcastToast(code, "Community cards dealt!")
	case network.Bet:
		s.broadcastToast(code, fmt.Sprintf("%s bet $%d", a.PlayerID, a.Amount))
	case network.Fold:
		s.broadcastToast(code, fmt.Sprintf("%s folded", a.PlayerID))
	case network.RevealAnswer:
		s.broadcastToast(code, "Answer revealed!")
	case network.EndRound:
		s.monitor.ObserveShowdown(time.Since(showdown))
		s.broadcastToast(code, "Round ended!")
		if s.statsService.Enabled() {
			go s.statsService.RecordRound(settled, winner)
		}
	case network.NewGame:
		s.broadcastToast(code, "New game started! All players removed.")
	}
}

// handleDisconnect removes the session's seat from its room and publishes
// the shrunken state. Disconnection never aborts an in-flight transition;
// transitions are synchronous.
func (s *GameServer) handleDisconnect(sess *session.Session) {
	code := sess.RoomCode
	if code == "" {
		return
	}

	state, err := s.directory.Update(code, func(st game.GameState) (game.GameState, error) {
		return st.RemovePlayer(sess.GetID()), nil
	})
	if err != nil {
		return
	}
	s.broadcastState(code, state)
}

func (s *GameServer) sweepIdleSessions() {
	if s.idleTimeout <= 0 {
		return
	}
	deadline := time.Now().Add(-s.idleTimeout)
	for _, sess := range s.sessionManager.Snapshot() {
		if sess.LastActive().Before(deadline) {
			logger.Log.Infof("Closing idle session %s", sess.GetID())
			sess.Close() // the read loop handles removal
		}
	}
}

func (s *GameServer) sendAck(sess *session.Session, ok bool, message string) {
	data, _ := json.Marshal(network.Ack{OK: ok, Message: message, PlayerID: sess.GetID()})
	sess.Send(network.MsgTypeAck, data)
}

func (s *GameServer) sendToast(sess *session.Session, message string) {
	data, _ := json.Marshal(network.Toast{Message: message})
	sess.Send(network.MsgTypeToast, data)
}

func (s *GameServer) broadcastState(code string, state game.GameState) {
	data, err := json.Marshal(state)
	if err != nil {
		logger.Log.Errorf("Error marshalling state for room %s: %v", code, err)
		return
	}
	s.broadcaster.BroadcastToRoom(code, network.MsgTypeState, data)
}

func (s *GameServer) broadcastToast(code, message string) {
	data, _ := json.Marshal(network.Toast{Message: message})
	s.broadcaster.BroadcastToRoom(code, network.MsgTypeToast, data)
}

func (s *GameServer) broadcastCue(code, name string) {
	data, _ := json.Marshal(network.Cue{Name: name})
	s.broadcaster.BroadcastToRoom(code, network.MsgTypeCue, data)
}
