// services/stats_service.go
package services

import (
	"errors"
	"time"

	"github.com/wfunc/quizpoker/game"
	"github.com/wfunc/quizpoker/logger"
	"github.com/wfunc/quizpoker/models"
	"github.com/wfunc/quizpoker/persistence"
)

var ErrStatsUnavailable = errors.New("stats persistence disabled")

// StatsService records settled rounds and answers player stats queries.
// A nil database turns it into a no-op; the game plays fine without history.
type StatsService struct {
	db persistence.Database
}

func NewStatsService(db persistence.Database) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Enabled() bool {
	return s.db != nil
}

// RecordRound persists the outcome of a round. state must be the showdown
// state captured before endRound reset it; winner may be nil when everyone
// folded.
func (s *StatsService) RecordRound(state game.GameState, winner *game.Winner) {
	if s.db == nil {
		return
	}

	rec := &models.RoundRecord{
		RoomCode:  state.Code,
		RoundID:   state.Round.RoundID,
		Pot:       state.Round.Pot,
		CreatedAt: time.Now(),
	}
	if q := state.Round.Question; q != nil {
		rec.QuestionID = q.ID
		rec.QuestionText = q.Text
		rec.Answer = q.Answer
	}
	if winner != nil {
		rec.WinnerID = winner.PlayerID
		rec.Distance = winner.Distance
	}
	for _, p := range state.Players {
		if winner != nil && p.ID == winner.PlayerID {
			rec.WinnerName = p.Name
		}
		rec.Players = append(rec.Players, models.RoundPlayer{
			ID:       p.ID,
			Name:     p.Name,
			Bankroll: p.Bankroll,
			Folded:   p.HasFolded,
			AllIn:    p.IsAllIn,
		})
	}

	if err := s.db.SaveRoundRecord(rec); err != nil {
		logger.Log.Errorf("Failed to save round record for room %s: %v", rec.RoomCode, err)
	}
}

func (s *StatsService) PlayerStats(playerID string) (*models.PlayerStats, error) {
	if s.db == nil {
		return nil, ErrStatsUnavailable
	}
	return s.db.GetPlayerStats(playerID)
}
