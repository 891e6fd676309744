package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/emberhall/mystery-engine/internal/services"
	"github.com/emberhall/mystery-engine/pkg/game"
	"github.com/emberhall/mystery-engine/pkg/state"
)

// SessionHandler serves the session lifecycle:
// POST /session/start  - create a session
// POST /session/action - run one player action
type SessionHandler struct {
	store  services.Store
	engine *game.Engine
	logger *slog.Logger

	// One mutex per session id so concurrent actions on the same
	// session serialize while distinct sessions proceed
	// independently. Entries are refcounted and removed once no
	// request holds or waits on them.
	locksMu sync.Mutex
	locks   map[uuid.UUID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionHandler(store services.Store, engine *game.Engine, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		store:  store,
		engine: engine,
		logger: logger,
		locks:  make(map[uuid.UUID]*sessionLock),
	}
}

// StartRequest is the optional body for /session/start.
type StartRequest struct {
	PlayerName string `json:"player_name,omitempty"`
}

// StartResponse carries the new session id and the initial snapshot.
type StartResponse struct {
	SessionID string          `json:"session_id"`
	State     state.StateView `json:"state"`
}

// ActionRequest is the body for /session/action.
type ActionRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// ActionResponse carries the single reply message plus the full
// current-state snapshot. Every action branch returns this same
// envelope shape.
type ActionResponse struct {
	Reply []state.Message `json:"reply"`
	State state.StateView `json:"state"`
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for session endpoint", "method", r.Method, "path", r.URL.Path)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	switch r.URL.Path {
	case "/session/start":
		h.handleStart(w, r)
	case "/session/action":
		h.handleAction(w, r)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Not found.")
	}
}

func (h *SessionHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	// The body is optional; an absent or empty body starts an
	// anonymous session.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Invalid JSON in start request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	s := state.NewSession(req.PlayerName)
	if err := h.store.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save new session", "error", err, "id", s.ID)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Info("Session created", "id", s.ID, "player", s.PlayerName)
	writeJSON(w, h.logger, http.StatusOK, StartResponse{
		SessionID: s.ID.String(),
		State:     s.Snapshot(h.engine.Catalog()),
	})
}

func (h *SessionHandler) handleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in action request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	id, err := uuid.Parse(req.SessionID)
	if err != nil {
		// An unparseable id cannot name a known session; same outcome
		// as an unknown one.
		h.logger.Warn("Invalid session id", "session_id", req.SessionID)
		writeError(w, h.logger, http.StatusNotFound, "Session not found.")
		return
	}

	lock := h.acquireSession(id)
	defer h.releaseSession(id, lock)

	s, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if s == nil {
		h.logger.Warn("Session not found", "id", id)
		writeError(w, h.logger, http.StatusNotFound, "Session not found.")
		return
	}

	reply := h.engine.HandleAction(r.Context(), s, req.Text)

	if err := h.store.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ActionResponse{
		Reply: []state.Message{reply},
		State: s.Snapshot(h.engine.Catalog()),
	})
}

// acquireSession takes the per-session mutex, creating it on first
// use. The refcount covers waiters so a contended lock is never
// removed out from under them.
func (h *SessionHandler) acquireSession(id uuid.UUID) *sessionLock {
	h.locksMu.Lock()
	lock := h.locks[id]
	if lock == nil {
		lock = &sessionLock{}
		h.locks[id] = lock
	}
	lock.refs++
	h.locksMu.Unlock()

	lock.mu.Lock()
	return lock
}

func (h *SessionHandler) releaseSession(id uuid.UUID, lock *sessionLock) {
	lock.mu.Unlock()

	h.locksMu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(h.locks, id)
	}
	h.locksMu.Unlock()
}

func (h *SessionHandler) lockCount() int {
	h.locksMu.Lock()
	defer h.locksMu.Unlock()
	return len(h.locks)
}
