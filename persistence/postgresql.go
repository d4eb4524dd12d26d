// persistence/postgresql.go
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/wfunc/quizpoker/models"
)

// PostgreSQL is a plain database/sql implementation of Database, for
// deployments that prefer hand-written SQL over the ORM.
type PostgreSQL struct {
	db *sql.DB
}

func NewPostgreSQL(host string, port int, user, password, dbname string) (*PostgreSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &PostgreSQL{db: db}, nil
}

func initTables(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS round_records (
            id SERIAL PRIMARY KEY,
            room_code VARCHAR(255) NOT NULL,
            round_id VARCHAR(64) NOT NULL,
            question_id VARCHAR(64) NOT NULL,
            question_text TEXT NOT NULL,
            answer BIGINT NOT NULL,
            winner_id VARCHAR(255),
            winner_name VARCHAR(255),
            distance BIGINT,
            pot BIGINT,
            players JSONB NOT NULL,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS player_totals (
            id SERIAL PRIMARY KEY,
            player_id VARCHAR(255) UNIQUE NOT NULL,
            name VARCHAR(255),
            rounds_played BIGINT DEFAULT 0,
            rounds_won BIGINT DEFAULT 0,
            total_winnings BIGINT DEFAULT 0,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )
    `)
	return err
}

func (p *PostgreSQL) SaveRoundRecord(rec *models.RoundRecord) error {
	players, err := json.Marshal(rec.Players)
	if err != nil {
		return err
	}

	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
        INSERT INTO round_records
            (room_code, round_id, question_id, question_text, answer,
             winner_id, winner_name, distance, pot, players)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.RoomCode, rec.RoundID, rec.QuestionID, rec.QuestionText, rec.Answer,
		rec.WinnerID, rec.WinnerName, rec.Distance, rec.Pot, players,
	)
	if err != nil {
		return err
	}

	for _, pl := range rec.Players {
		wonDelta := 0
		winningsDelta := int64(0)
		if pl.ID == rec.WinnerID {
			wonDelta = 1
			winningsDelta = rec.Pot
		}
		_, err = tx.Exec(`
            INSERT INTO player_totals (player_id, name, rounds_played, rounds_won, total_winnings)
            VALUES ($1, $2, 1, $3, $4)
            ON CONFLICT (player_id) DO UPDATE SET
                name = EXCLUDED.name,
                rounds_played = player_totals.rounds_played + 1,
                rounds_won = player_totals.rounds_won + EXCLUDED.rounds_won,
                total_winnings = player_totals.total_winnings + EXCLUDED.total_winnings,
                updated_at = CURRENT_TIMESTAMP`,
			pl.ID, pl.Name, wonDelta, winningsDelta,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (p *PostgreSQL) GetPlayerStats(playerID string) (*models.PlayerStats, error) {
	stats := &models.PlayerStats{PlayerID: playerID}
	err := p.db.QueryRow(`
        SELECT name, rounds_played, rounds_won, total_winnings
        FROM player_totals WHERE player_id = $1`, playerID,
	).Scan(&stats.Name, &stats.RoundsPlayed, &stats.RoundsWon, &stats.TotalWinnings)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (p *PostgreSQL) Close() error {
	return p.db.Close()
}
