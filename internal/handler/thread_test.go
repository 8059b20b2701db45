package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/anonb-dev/anonb/internal/domain"
	internal_errors "github.com/anonb-dev/anonb/internal/errors"
)

type MockThreadService struct {
	MockCreate func(board domain.Board, text, deletePassword string) (domain.Thread, error)
	MockList   func(board domain.Board) ([]domain.ThreadPreview, error)
	MockGet    func(id domain.ThreadId) (domain.ThreadView, error)
	MockReport func(id domain.ThreadId) error
	MockDelete func(id domain.ThreadId, deletePassword string) error
}

func (m *MockThreadService) Create(board domain.Board, text, deletePassword string) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(board, text, deletePassword)
	}
	return domain.Thread{Board: board, Text: text, DeletePassword: deletePassword, Replies: []domain.Reply{}}, nil
}

func (m *MockThreadService) List(board domain.Board) ([]domain.ThreadPreview, error) {
	if m.MockList != nil {
		return m.MockList(board)
	}
	return []domain.ThreadPreview{}, nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.ThreadView, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.ThreadView{Id: id}, nil
}

func (m *MockThreadService) Report(id domain.ThreadId) error {
	if m.MockReport != nil {
		return m.MockReport(id)
	}
	return nil
}

func (m *MockThreadService) Delete(id domain.ThreadId, deletePassword string) error {
	if m.MockDelete != nil {
		return m.MockDelete(id, deletePassword)
	}
	return nil
}

func newThreadRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/threads/{board}", h.CreateThread).Methods("POST")
	router.HandleFunc("/api/threads/{board}", h.GetBoard).Methods("GET")
	router.HandleFunc("/api/threads/{board}", h.ReportThread).Methods("PUT")
	router.HandleFunc("/api/threads/{board}", h.DeleteThread).Methods("DELETE")
	return router
}

func TestCreateThreadHandler(t *testing.T) {
	h := &Handler{}
	router := newThreadRouter(h)
	route := "/api/threads/b"

	// Test case 1: successful request echoes the full record
	h.thread = &MockThreadService{
		MockCreate: func(board domain.Board, text, deletePassword string) (domain.Thread, error) {
			return domain.Thread{Id: 1, Board: board, Text: text, DeletePassword: deletePassword, Replies: []domain.Reply{}}, nil
		},
	}
	body := []byte(`{"text": "hello", "delete_password": "pw"}`)
	req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, but got %d", http.StatusOK, rr.Code)
	}
	var thread domain.Thread
	if err := json.NewDecoder(rr.Body).Decode(&thread); err != nil {
		t.Errorf("error decoding response body: %v", err)
	}
	if thread.Board != "b" || thread.Text != "hello" || thread.DeletePassword != "pw" {
		t.Errorf("unexpected thread in response: %+v", thread)
	}
	if thread.Replies == nil || len(thread.Replies) != 0 {
		t.Errorf("expected empty replies array, got %v", thread.Replies)
	}

	// Test case 2: invalid json
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer([]byte(`{invalid json::}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, but got %d", http.StatusBadRequest, rr.Code)
	}

	// Test case 3: missing required field
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer([]byte(`{"text": "hello"}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, but got %d", http.StatusInternalServerError, rr.Code)
	}
}

func TestGetBoardHandler(t *testing.T) {
	h := &Handler{}
	router := newThreadRouter(h)

	h.thread = &MockThreadService{
		MockList: func(board domain.Board) ([]domain.ThreadPreview, error) {
			if board != "b" {
				t.Errorf("expected board 'b', got %q", board)
			}
			return []domain.ThreadPreview{
				{ThreadView: domain.ThreadView{Id: 2, Board: board, Replies: []domain.ReplyView{}}, ReplyCount: 0},
				{ThreadView: domain.ThreadView{Id: 1, Board: board, Replies: []domain.ReplyView{{Id: 9}}}, ReplyCount: 5},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/api/threads/b", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, but got %d", http.StatusOK, rr.Code)
	}
	payload := rr.Body.String()
	if strings.Contains(payload, "delete_password") || strings.Contains(payload, "reported") {
		t.Errorf("listing leaked sanitized fields: %s", payload)
	}
	var previews []domain.ThreadPreview
	if err := json.Unmarshal([]byte(payload), &previews); err != nil {
		t.Fatalf("error decoding response body: %v", err)
	}
	if len(previews) != 2 {
		t.Fatalf("expected 2 previews, got %d", len(previews))
	}
	if previews[1].ReplyCount != 5 {
		t.Errorf("expected replycount 5, got %d", previews[1].ReplyCount)
	}
}

func TestReportThreadHandler(t *testing.T) {
	h := &Handler{}
	router := newThreadRouter(h)
	route := "/api/threads/b"

	// Test case 1: success
	h.thread = &MockThreadService{
		MockReport: func(id domain.ThreadId) error {
			if id != 42 {
				t.Errorf("expected thread id 42, got %d", id)
			}
			return nil
		},
	}
	req := httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer([]byte(`{"thread_id": "42"}`)))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, but got %d", http.StatusOK, rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "success" {
		t.Errorf("expected body 'success', got %q", got)
	}

	// Test case 2: not found
	h.thread = &MockThreadService{
		MockReport: func(id domain.ThreadId) error {
			return &internal_errors.ErrorWithStatusCode{Message: "thread not found", StatusCode: http.StatusNotFound}
		},
	}
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer([]byte(`{"thread_id": "43"}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, but got %d", http.StatusNotFound, rr.Code)
	}

	// Test case 3: malformed id is an internal error, not a 404
	reportCalled := false
	h.thread = &MockThreadService{
		MockReport: func(id domain.ThreadId) error {
			reportCalled = true
			return nil
		},
	}
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer([]byte(`{"thread_id": "not-an-id"}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, but got %d", http.StatusInternalServerError, rr.Code)
	}
	if reportCalled {
		t.Error("service must not be called for a malformed id")
	}
}

func TestDeleteThreadHandler(t *testing.T) {
	h := &Handler{}
	router := newThreadRouter(h)
	route := "/api/threads/b"

	// Test case 1: correct password
	h.thread = &MockThreadService{
		MockDelete: func(id domain.ThreadId, deletePassword string) error {
			if id != 7 || deletePassword != "pw" {
				t.Errorf("unexpected args: id=%d password=%q", id, deletePassword)
			}
			return nil
		},
	}
	req := httptest.NewRequest(http.MethodDelete, route, bytes.NewBuffer([]byte(`{"thread_id": "7", "delete_password": "pw"}`)))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, but got %d", http.StatusOK, rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "success" {
		t.Errorf("expected body 'success', got %q", got)
	}

	// Test case 2: wrong password
	h.thread = &MockThreadService{
		MockDelete: func(id domain.ThreadId, deletePassword string) error {
			return &internal_errors.ErrorWithStatusCode{Message: "incorrect password", StatusCode: http.StatusForbidden}
		},
	}
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, route, bytes.NewBuffer([]byte(`{"thread_id": "7", "delete_password": "nope"}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, but got %d", http.StatusForbidden, rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "incorrect password" {
		t.Errorf("expected body 'incorrect password', got %q", got)
	}

	// Test case 3: malformed thread id
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, route, bytes.NewBuffer([]byte(`{"thread_id": "zzz", "delete_password": "pw"}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, but got %d", http.StatusInternalServerError, rr.Code)
	}

	// Test case 4: missing password
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, route, bytes.NewBuffer([]byte(`{"thread_id": "7"}`)))

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, but got %d", http.StatusInternalServerError, rr.Code)
	}
}
