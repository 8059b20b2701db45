package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/anonb-dev/anonb/internal/domain"
	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

// CreateReply inserts a reply and bumps the thread in one transaction, so
// the thread's bumped_on always equals the newest reply's created_on.
// Replying to a missing thread has no 404 contract; it is a server fault.
func (s *Storage) CreateReply(threadId domain.ThreadId, text, deletePassword string) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // ignored once the tx is committed

	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	var id domain.ThreadId
	err = tx.QueryRow(`
        UPDATE threads
        SET bumped_on = $1
        WHERE id = $2
        RETURNING id
    `, createdTs, threadId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "thread not found",
				StatusCode: http.StatusInternalServerError,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to bump thread: %w", err)
	}

	_, err = tx.Exec(`
        INSERT INTO replies (thread_id, text, delete_password, created_on)
        VALUES ($1, $2, $3, $4)
    `, threadId, text, deletePassword, createdTs)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetThread(threadId)
}

func (s *Storage) ReportReply(threadId domain.ThreadId, replyId domain.ReplyId) error {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM threads WHERE id = $1", threadId).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.ErrorWithStatusCode{
				Message:    "thread_id not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return fmt.Errorf("failed to check thread: %w", err)
	}

	result, err := s.db.Exec(
		"UPDATE replies SET reported = TRUE WHERE id = $1 AND thread_id = $2",
		replyId, threadId,
	)
	if err != nil {
		return fmt.Errorf("failed to report reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "reply_id not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

// DeleteReply removes a single reply. The parent thread keeps its
// bumped_on; deleting a reply never un-bumps.
func (s *Storage) DeleteReply(threadId domain.ThreadId, replyId domain.ReplyId) error {
	result, err := s.db.Exec(
		"DELETE FROM replies WHERE id = $1 AND thread_id = $2",
		replyId, threadId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "reply_id not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}
