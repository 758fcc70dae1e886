package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"drover/internal/api"
	"drover/internal/domain"
)

// fakeService is an in-memory stand-in for the remote browser-automation
// API. It keeps per-session telemetry and applies the same query-parameter
// filtering contract the real service documents, so the full client path
// (resolve filters -> wire query -> decode) can be exercised end to end.
type fakeService struct {
	mu       sync.Mutex
	nextID   int
	sessions map[string]*fakeSession

	// lastConsoleQuery records the raw query of the most recent
	// console-logs request for wire-format assertions.
	lastConsoleQuery map[string][]string
}

type fakeSession struct {
	info    domain.SessionInfo
	url     string
	console []domain.ConsoleRecord
	network []domain.NetworkRecord
}

func newFakeService() *fakeService {
	return &fakeService{sessions: make(map[string]*fakeSession)}
}

// start returns an httptest server routing the endpoints the client uses
func (f *fakeService) start(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/create-session", f.handleCreateSession)
		r.Post("/stop-session/{id}", f.withSession(f.handleStopSession))
		r.Get("/running-sessions", f.handleRunningSessions)
		r.Get("/session/{id}", f.withSession(f.handleSessionDetails))
	})

	r.Route("/browser", func(r chi.Router) {
		r.Post("/navigate/{id}", f.withSession(f.handleNavigate))
		r.Get("/console-logs/{id}", f.withSession(f.handleConsoleLogs))
		r.Get("/network-logs/{id}", f.withSession(f.handleNetworkLogs))
		r.Post("/clear-logs/{id}", f.withSession(f.handleClearLogs))
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

// seed adds telemetry to a session outside the request path
func (f *fakeService) seed(sessionID string, console []domain.ConsoleRecord, network []domain.NetworkRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess := f.sessions[sessionID]
	sess.console = append(sess.console, console...)
	sess.network = append(sess.network, network...)
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *fakeSession)

// withSession resolves the {id} route param and 404s unknown sessions
func (f *fakeService) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		sess, ok := f.sessions[chi.URLParam(r, "id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{
				Error: domain.ErrSessionNotFound.Error(),
				Code:  domain.ErrorCode(domain.ErrSessionNotFound),
			})
			return
		}
		h(w, r, sess)
	}
}

func (f *fakeService) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := fmt.Sprintf("sess-%d", f.nextID)
	f.sessions[id] = &fakeSession{
		info: domain.SessionInfo{
			ID:        id,
			Status:    "running",
			Region:    "us-west-2",
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
	writeJSON(w, http.StatusOK, api.CreateSessionResponse{Success: true, SessionID: id})
}

func (f *fakeService) handleStopSession(w http.ResponseWriter, r *http.Request, sess *fakeSession) {
	delete(f.sessions, sess.info.ID)
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}

func (f *fakeService) handleRunningSessions(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	resp := api.SessionListResponse{Success: true, Sessions: []domain.SessionInfo{}}
	for _, sess := range f.sessions {
		resp.Sessions = append(resp.Sessions, sess.info)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (f *fakeService) handleSessionDetails(w http.ResponseWriter, r *http.Request, sess *fakeSession) {
	writeJSON(w, http.StatusOK, api.SessionDetailResponse{Success: true, Session: sess.info})
}

func (f *fakeService) handleNavigate(w http.ResponseWriter, r *http.Request, sess *fakeSession) {
	var req api.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "url is required"})
		return
	}
	sess.url = req.URL
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}

func (f *fakeService) handleConsoleLogs(w http.ResponseWriter, r *http.Request, sess *fakeSession) {
	query := r.URL.Query()
	f.lastConsoleQuery = query

	enabled := map[string]bool{
		"error":   query.Get("error") == "true",
		"warning": query.Get("warning") == "true",
		"info":    query.Get("info") == "true",
		"trace":   query.Get("trace") == "true",
	}

	logs := []domain.ConsoleRecord{}
	for _, record := range sess.console {
		if show, known := enabled[record.Type]; known && !show {
			continue
		}
		logs = append(logs, record)
	}
	writeJSON(w, http.StatusOK, api.ConsoleLogsResponse{Success: true, Logs: logs})
}

func (f *fakeService) handleNetworkLogs(w http.ResponseWriter, r *http.Request, sess *fakeSession) {
	query := r.URL.Query()

	logs := []domain.NetworkRecord{}
	for _, record := range sess.network {
		bucket := record.Status / 100
		key := map[int]string{1: "includeInfo", 2: "includeSuccess", 3: "includeRedirect", 4: "includeClientError", 5: "includeServerError"}[bucket]
		if key != "" && query.Get(key) != "true" {
			continue
		}
		logs = append(logs, record)
	}
	writeJSON(w, http.StatusOK, api.NetworkLogsResponse{Success: true, Logs: logs})
}

func (f *fakeService) handleClearLogs(w http.ResponseWriter, r *http.Request, sess *fakeSession) {
	sess.console = nil
	sess.network = nil
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// consoleQueryValue reads a single-valued key from the last console query
func (f *fakeService) consoleQueryValue(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.lastConsoleQuery[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (f *fakeService) consoleQueryValues(key string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastConsoleQuery[key]
}
