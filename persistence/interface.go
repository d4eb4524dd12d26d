// persistence/interface.go
package persistence

import (
	"errors"

	"github.com/wfunc/quizpoker/models"
)

// Database stores settled rounds and lifetime player aggregates. The game
// never reads persisted state back into a live room; losing the database
// loses history, not games.
type Database interface {
	// SaveRoundRecord inserts the record and updates every participant's
	// totals in one transaction.
	SaveRoundRecord(rec *models.RoundRecord) error
	GetPlayerStats(playerID string) (*models.PlayerStats, error)
	Close() error
}

var ErrRecordNotFound = errors.New("record not found")
