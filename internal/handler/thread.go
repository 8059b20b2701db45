package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anonb-dev/anonb/internal/api"
	"github.com/anonb-dev/anonb/internal/utils"
)

// CreateThread handles POST /api/threads/{board}. The response is the full
// stored record, delete password included: that echo is how the author
// learns the credential for deleting the thread later.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(board, body.Text, body.DeletePassword)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}

// GetBoard handles GET /api/threads/{board}: the sanitized board listing.
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	previews, err := h.thread.List(board)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, previews)
}

// ReportThread handles PUT /api/threads/{board}.
func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	var body api.ReportThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := parseId(body.ThreadId, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Report(threadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}

// DeleteThread handles DELETE /api/threads/{board}.
func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := parseId(body.ThreadId, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Delete(threadId, body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w)
}
