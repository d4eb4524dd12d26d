// rpc/rpc.go
package rpc

import (
	"net"
	"net/rpc"

	"github.com/wfunc/quizpoker/game"
	"github.com/wfunc/quizpoker/logger"
	"github.com/wfunc/quizpoker/models"
	"github.com/wfunc/quizpoker/room"
	"github.com/wfunc/quizpoker/services"
)

// Server manages the RPC listener.
type Server struct {
	listener net.Listener
	address  string
}

func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// AdminService exposes operational queries over net/rpc: room inventory,
// room snapshots and player stats.
type AdminService struct {
	directory *room.Directory
	stats     *services.StatsService
}

func NewAdminService(directory *room.Directory, stats *services.StatsService) *AdminService {
	return &AdminService{directory: directory, stats: stats}
}

type ListRoomsArgs struct{}

type ListRoomsReply struct {
	Codes []string
}

func (a *AdminService) ListRooms(args *ListRoomsArgs, reply *ListRoomsReply) error {
	reply.Codes = a.directory.Codes()
	return nil
}

type GetRoomArgs struct {
	Code string
}

type GetRoomReply struct {
	Found bool
	State game.GameState
}

func (a *AdminService) GetRoom(args *GetRoomArgs, reply *GetRoomReply) error {
	state, found := a.directory.Get(args.Code)
	reply.Found = found
	reply.State = state
	return nil
}

type PlayerStatsArgs struct {
	PlayerID string
}

type PlayerStatsReply struct {
	Stats models.PlayerStats
}

func (a *AdminService) GetPlayerStats(args *PlayerStatsArgs, reply *PlayerStatsReply) error {
	stats, err := a.stats.PlayerStats(args.PlayerID)
	if err != nil {
		return err
	}
	reply.Stats = *stats
	return nil
}
