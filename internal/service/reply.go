package service

import (
	"net/http"

	"github.com/anonb-dev/anonb/internal/domain"
	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

type ReplyService interface {
	Create(threadId domain.ThreadId, text, deletePassword string) (domain.Thread, error)
	Report(threadId domain.ThreadId, replyId domain.ReplyId) error
	Delete(threadId domain.ThreadId, replyId domain.ReplyId, deletePassword string) error
}

type ReplyStorage interface {
	GetThread(id domain.ThreadId) (domain.Thread, error)
	CreateReply(threadId domain.ThreadId, text, deletePassword string) (domain.Thread, error)
	ReportReply(threadId domain.ThreadId, replyId domain.ReplyId) error
	DeleteReply(threadId domain.ThreadId, replyId domain.ReplyId) error
}

type Reply struct {
	storage ReplyStorage
}

func NewReply(storage ReplyStorage) *Reply {
	return &Reply{storage}
}

// Create prepends a reply to the thread, bumps the thread and returns the
// full unsanitized thread, as the thread-create operation does.
func (r *Reply) Create(threadId domain.ThreadId, text, deletePassword string) (domain.Thread, error) {
	return r.storage.CreateReply(threadId, text, deletePassword)
}

// Report flags a single reply. The caller can tell a missing thread from a
// missing reply by the error message.
func (r *Reply) Report(threadId domain.ThreadId, replyId domain.ReplyId) error {
	return r.storage.ReportReply(threadId, replyId)
}

// Delete removes one reply after checking the reply's own password (not
// the thread's). Sibling replies and the thread itself are untouched, and
// the thread is not re-bumped.
func (r *Reply) Delete(threadId domain.ThreadId, replyId domain.ReplyId, deletePassword string) error {
	thread, err := r.storage.GetThread(threadId)
	if err != nil {
		if internal_errors.StatusCode(err, 0) == http.StatusNotFound {
			return &internal_errors.ErrorWithStatusCode{Message: "thread_id not found", StatusCode: http.StatusNotFound}
		}
		return err
	}

	var reply *domain.Reply
	for i := range thread.Replies {
		if thread.Replies[i].Id == replyId {
			reply = &thread.Replies[i]
			break
		}
	}
	if reply == nil {
		return &internal_errors.ErrorWithStatusCode{Message: "reply_id not found", StatusCode: http.StatusNotFound}
	}

	if reply.DeletePassword != deletePassword {
		return &internal_errors.ErrorWithStatusCode{Message: "incorrect password", StatusCode: http.StatusForbidden}
	}

	return r.storage.DeleteReply(threadId, replyId)
}
