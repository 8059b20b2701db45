package service

import (
	"net/http"

	"github.com/anonb-dev/anonb/internal/domain"
	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

type ThreadService interface {
	Create(board domain.Board, text, deletePassword string) (domain.Thread, error)
	List(board domain.Board) ([]domain.ThreadPreview, error)
	Get(id domain.ThreadId) (domain.ThreadView, error)
	Report(id domain.ThreadId) error
	Delete(id domain.ThreadId, deletePassword string) error
}

type ThreadStorage interface {
	CreateThread(board domain.Board, text, deletePassword string) (domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	ListThreads(board domain.Board, limit int) ([]domain.Thread, error)
	ReportThread(id domain.ThreadId) error
	DeleteThread(id domain.ThreadId) error
}

type Thread struct {
	storage        ThreadStorage
	listingWindow  int // threads per board listing
	repliesPreview int // newest replies embedded per listed thread
}

func NewThread(storage ThreadStorage, listingWindow, repliesPreview int) *Thread {
	return &Thread{storage, listingWindow, repliesPreview}
}

// Create inserts a new thread and returns the full record, password
// included: the author needs it echoed back to delete the thread later.
func (t *Thread) Create(board domain.Board, text, deletePassword string) (domain.Thread, error) {
	return t.storage.CreateThread(board, text, deletePassword)
}

// List returns the board listing: the most recently bumped threads,
// sanitized, each carrying only its newest replies plus the total reply
// count. An unknown board is just an empty listing.
func (t *Thread) List(board domain.Board) ([]domain.ThreadPreview, error) {
	threads, err := t.storage.ListThreads(board, t.listingWindow)
	if err != nil {
		return nil, err
	}

	previews := make([]domain.ThreadPreview, 0, len(threads))
	for _, thread := range threads {
		previews = append(previews, thread.Preview(t.repliesPreview))
	}
	return previews, nil
}

// Get returns a sanitized thread with every reply, newest first.
func (t *Thread) Get(id domain.ThreadId) (domain.ThreadView, error) {
	thread, err := t.storage.GetThread(id)
	if err != nil {
		return domain.ThreadView{}, err
	}
	return thread.View(), nil
}

// Report flags a thread. No password needed; reporting is unauthenticated.
func (t *Thread) Report(id domain.ThreadId) error {
	return t.storage.ReportThread(id)
}

// Delete removes a thread and, through it, all of its replies. The stored
// password must match exactly; a mismatch leaves the thread untouched.
func (t *Thread) Delete(id domain.ThreadId, deletePassword string) error {
	thread, err := t.storage.GetThread(id)
	if err != nil {
		// there is no 404 contract for deleting a missing thread;
		// it surfaces as a server-side fault
		if internal_errors.StatusCode(err, 0) == http.StatusNotFound {
			return &internal_errors.ErrorWithStatusCode{Message: "thread not found", StatusCode: http.StatusInternalServerError}
		}
		return err
	}

	if thread.DeletePassword != deletePassword {
		return &internal_errors.ErrorWithStatusCode{Message: "incorrect password", StatusCode: http.StatusForbidden}
	}

	return t.storage.DeleteThread(id)
}
