package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anonb-dev/anonb/internal/logger"
	"github.com/anonb-dev/anonb/internal/service"
)

// HealthChecker reports storage reachability for the readiness probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread service.ThreadService
	reply  service.ReplyService
	health HealthChecker
}

func New(thread service.ThreadService, reply service.ReplyService, health HealthChecker) *Handler {
	return &Handler{thread, reply, health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
}

func writeSuccess(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}
