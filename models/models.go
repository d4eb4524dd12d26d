// models/models.go
package models

import (
	"time"
)

// RoundRecord is the settled outcome of one round, written after endRound.
// It is an audit/stats artifact: live rooms never read it back.
type RoundRecord struct {
	RoomCode     string        `json:"room_code"`
	RoundID      string        `json:"round_id"`
	QuestionID   string        `json:"question_id"`
	QuestionText string        `json:"question_text"`
	Answer       int64         `json:"answer"`
	WinnerID     string        `json:"winner_id"`
	WinnerName   string        `json:"winner_name"`
	Distance     int64         `json:"distance"`
	Pot          int64         `json:"pot"`
	Players      []RoundPlayer `json:"players"`
	CreatedAt    time.Time     `json:"created_at"`
}

// RoundPlayer is one seat's outcome inside a RoundRecord.
type RoundPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bankroll int64  `json:"bankroll"`
	Folded   bool   `json:"folded"`
	AllIn    bool   `json:"all_in"`
}

// PlayerStats are lifetime aggregates for one player id.
type PlayerStats struct {
	PlayerID      string `json:"player_id"`
	Name          string `json:"name"`
	RoundsPlayed  int64  `json:"rounds_played"`
	RoundsWon     int64  `json:"rounds_won"`
	TotalWinnings int64  `json:"total_winnings"`
}
