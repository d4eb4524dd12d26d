// models/gorm_models.go
package models

import (
	"gorm.io/gorm"
)

// GormRoundRecord is the round_records row.
type GormRoundRecord struct {
	gorm.Model
	RoomCode     string        `gorm:"index;not null"`
	RoundID      string        `gorm:"not null"`
	QuestionID   string        `gorm:"not null"`
	QuestionText string        `gorm:"not null"`
	Answer       int64         `gorm:"not null"`
	WinnerID     string        `gorm:"index"`
	WinnerName   string
	Distance     int64
	Pot          int64
	Players      []RoundPlayer `gorm:"type:jsonb;serializer:json"`
}

// GormPlayerTotals is the player_totals row, one per player id.
type GormPlayerTotals struct {
	gorm.Model
	PlayerID      string `gorm:"uniqueIndex;not null"`
	Name          string
	RoundsPlayed  int64 `gorm:"default:0"`
	RoundsWon     int64 `gorm:"default:0"`
	TotalWinnings int64 `gorm:"default:0"`
}

func (GormRoundRecord) TableName() string  { return "round_records" }
func (GormPlayerTotals) TableName() string { return "player_totals" }
