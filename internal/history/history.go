package history

import (
	"fmt"

	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"autovid/models"
)

// Store writes chat-history records to the persistence collaborator. Reads
// and the table's schema belong to that collaborator; this is a write-only
// view of it.
type Store struct {
	db  *supa.Client
	log *logrus.Logger
}

// NewStore creates a chat-history store. A nil client yields a store whose
// writes are no-ops, for deployments without persistence configured.
func NewStore(db *supa.Client, log *logrus.Logger) *Store {
	return &Store{db: db, log: log}
}

// SaveChatRecord inserts one record of an attempted render. Failures are
// returned for logging but must never fail the render itself.
func (s *Store) SaveChatRecord(rec models.ChatRecord) error {
	if s.db == nil {
		return nil
	}

	_, _, err := s.db.From("chat_history").
		Insert(rec, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("inserting chat record: %w", err)
	}

	s.log.WithField("user_id", rec.UserID).Info("chat record saved")
	return nil
}
