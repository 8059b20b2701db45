package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/anonb-dev/anonb/internal/domain"
	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

func (s *Storage) CreateThread(board domain.Board, text, deletePassword string) (domain.Thread, error) {
	thread := domain.Thread{
		Board:          board,
		Text:           text,
		DeletePassword: deletePassword,
		Replies:        []domain.Reply{},
	}
	err := s.db.QueryRow(`
        INSERT INTO threads (board, text, delete_password)
        VALUES ($1, $2, $3)
        RETURNING id, reported, created_on, bumped_on
    `, board, text, deletePassword).Scan(&thread.Id, &thread.Reported, &thread.CreatedOn, &thread.BumpedOn)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT id, board, text, delete_password, reported, created_on, bumped_on
        FROM threads
        WHERE id = $1
    `, id).Scan(
		&thread.Id, &thread.Board, &thread.Text, &thread.DeletePassword,
		&thread.Reported, &thread.CreatedOn, &thread.BumpedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	replies, err := s.repliesForThreads([]domain.ThreadId{id})
	if err != nil {
		return domain.Thread{}, err
	}
	thread.Replies = replies[id]
	if thread.Replies == nil {
		thread.Replies = []domain.Reply{}
	}
	return thread, nil
}

// ListThreads returns up to limit threads of a board, most recently bumped
// first with id as tie-break, each carrying its full reply sequence newest
// first. An unknown board yields an empty slice.
func (s *Storage) ListThreads(board domain.Board, limit int) ([]domain.Thread, error) {
	rows, err := s.db.Query(`
        SELECT id, board, text, delete_password, reported, created_on, bumped_on
        FROM threads
        WHERE board = $1
        ORDER BY bumped_on DESC, id DESC
        LIMIT $2
    `, board, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	ids := []domain.ThreadId{}
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(
			&thread.Id, &thread.Board, &thread.Text, &thread.DeletePassword,
			&thread.Reported, &thread.CreatedOn, &thread.BumpedOn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		thread.Replies = []domain.Reply{}
		threads = append(threads, thread)
		ids = append(ids, thread.Id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	if len(threads) == 0 {
		return threads, nil
	}

	replies, err := s.repliesForThreads(ids)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		if r, ok := replies[threads[i].Id]; ok {
			threads[i].Replies = r
		}
	}
	return threads, nil
}

// repliesForThreads fetches the replies of the given threads newest first,
// grouped by thread id.
func (s *Storage) repliesForThreads(ids []domain.ThreadId) (map[domain.ThreadId][]domain.Reply, error) {
	rows, err := s.db.Query(`
        SELECT id, thread_id, text, delete_password, reported, created_on
        FROM replies
        WHERE thread_id = ANY($1)
        ORDER BY created_on DESC, id DESC
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := make(map[domain.ThreadId][]domain.Reply, len(ids))
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(
			&reply.Id, &reply.ThreadId, &reply.Text, &reply.DeletePassword,
			&reply.Reported, &reply.CreatedOn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies[reply.ThreadId] = append(replies[reply.ThreadId], reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *Storage) ReportThread(id domain.ThreadId) error {
	result, err := s.db.Exec("UPDATE threads SET reported = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to report thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "thread not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

// DeleteThread removes the thread; its replies go with it via the foreign
// key cascade.
func (s *Storage) DeleteThread(id domain.ThreadId) error {
	result, err := s.db.Exec("DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "thread not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}
