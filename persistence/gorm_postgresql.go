// persistence/gorm_postgresql.go
package persistence

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wfunc/quizpoker/models"
)

// GormPostgreSQL is the GORM-backed Database implementation.
type GormPostgreSQL struct {
	db *gorm.DB
}

func NewGormPostgreSQL(host string, port int, user, password, dbname string) (*GormPostgreSQL, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Silent,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.GormRoundRecord{}, &models.GormPlayerTotals{}); err != nil {
		return nil, err
	}

	return &GormPostgreSQL{db: db}, nil
}

func (p *GormPostgreSQL) SaveRoundRecord(rec *models.RoundRecord) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		row := models.GormRoundRecord{
			RoomCode:     rec.RoomCode,
			RoundID:      rec.RoundID,
			QuestionID:   rec.QuestionID,
			QuestionText: rec.QuestionText,
			Answer:       rec.Answer,
			WinnerID:     rec.WinnerID,
			WinnerName:   rec.WinnerName,
			Distance:     rec.Distance,
			Pot:          rec.Pot,
			Players:      rec.Players,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for _, pl := range rec.Players {
			if err := bumpTotals(tx, pl, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func bumpTotals(tx *gorm.DB, pl models.RoundPlayer, rec *models.RoundRecord) error {
	var totals models.GormPlayerTotals
	result := tx.Where("player_id = ?", pl.ID).First(&totals)

	wonDelta := int64(0)
	winningsDelta := int64(0)
	if pl.ID == rec.WinnerID {
		wonDelta = 1
		winningsDelta = rec.Pot
	}

	if result.Error == gorm.ErrRecordNotFound {
		totals = models.GormPlayerTotals{
			PlayerID:      pl.ID,
			Name:          pl.Name,
			RoundsPlayed:  1,
			RoundsWon:     wonDelta,
			TotalWinnings: winningsDelta,
		}
		return tx.Create(&totals).Error
	} else if result.Error != nil {
		return result.Error
	}

	return tx.Model(&totals).Updates(map[string]interface{}{
		"name":           pl.Name,
		"rounds_played":  gorm.Expr("rounds_played + 1"),
		"rounds_won":     gorm.Expr("rounds_won + ?", wonDelta),
		"total_winnings": gorm.Expr("total_winnings + ?", winningsDelta),
	}).Error
}

func (p *GormPostgreSQL) GetPlayerStats(playerID string) (*models.PlayerStats, error) {
	var totals models.GormPlayerTotals
	if err := p.db.Where("player_id = ?", playerID).First(&totals).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &models.PlayerStats{
		PlayerID:      totals.PlayerID,
		Name:          totals.Name,
		RoundsPlayed:  totals.RoundsPlayed,
		RoundsWon:     totals.RoundsWon,
		TotalWinnings: totals.TotalWinnings,
	}, nil
}

func (p *GormPostgreSQL) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
