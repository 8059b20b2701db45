package handler

import (
	"net/http"
	"strconv"

	"github.com/anonb-dev/anonb/internal/api"
	"github.com/anonb-dev/anonb/internal/utils"
)

// CreateReply handles POST /api/replies/{board}. Like thread creation, the
// response is the full unsanitized thread.
func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := parseId(body.ThreadId, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.reply.Create(threadId, body.Text, body.DeletePassword)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}

// GetThread handles GET /api/replies/{board}?thread_id=: the sanitized
// thread with every reply, newest first.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseId(r.URL.Query().Get("thread_id"), "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	view, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, view)
}

// ReportReply handles PUT /api/replies/{board}.
func (h *Handler) ReportReply(w http.ResponseWriter, r *http.Request) {
	var body api.ReportReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := parseId(body.ThreadId, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// A reply id that does not parse can never match a stored reply, so
	// it maps to the same signal as an absent one. This differs from the
	// thread id above on purpose; the lookup is by value, not by reference.
	replyId, err := strconv.ParseInt(body.ReplyId, 10, 64)
	if err != nil {
		http.Error(w, "reply_id not found", http.StatusNotFound)
		return
	}

	if err := h.reply.Report(threadId, replyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}

// DeleteReply handles DELETE /api/replies/{board}.
func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := parseId(body.ThreadId, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	replyId, err := parseId(body.ReplyId, "reply_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.reply.Delete(threadId, replyId, body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}
