package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hackseek-app/hackseek/internal/auth"
	"github.com/hackseek-app/hackseek/internal/llm"
	"github.com/hackseek-app/hackseek/internal/pipeline"
	"github.com/hackseek-app/hackseek/internal/store"
)

// Chatter answers assistant conversations.
type Chatter interface {
	Chat(ctx context.Context, history []llm.Message) (string, error)
}

// PDFRenderer turns a markdown report or result envelope into PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, report string) ([]byte, error)
}

type Server struct {
	store   store.API
	auth    *auth.Service
	pipe    *pipeline.Pipeline
	chat    Chatter
	pdf     PDFRenderer
	logger  *log.Logger
	depth   int
	level   int
}

type Options struct {
	Store store.API
	Auth  *auth.Service
	Pipe  *pipeline.Pipeline
	// Chat and PDF are optional; their routes answer 503 when unset.
	Chat         Chatter
	PDF          PDFRenderer
	Logger       *log.Logger
	DefaultDepth int
	DefaultLevel int
}

func NewServer(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	depth, level := opts.DefaultDepth, opts.DefaultLevel
	if depth == 0 {
		depth = 3
	}
	if level == 0 {
		level = 3
	}
	s := &Server{
		store:  opts.Store,
		auth:   opts.Auth,
		pipe:   opts.Pipe,
		chat:   opts.Chat,
		pdf:    opts.PDF,
		logger: logger,
		depth:  depth,
		level:  level,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("/api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("/api/v1/auth/logout", s.requireSession(s.handleLogout))
	mux.HandleFunc("/api/v1/auth/reset-password", s.handleResetPassword)
	mux.HandleFunc("/api/v1/profile", s.requireSession(s.handleProfile))
	mux.HandleFunc("/api/v1/profile/password", s.requireSession(s.handleUpdatePassword))
	mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/v1/solutions", s.requireSession(s.handleSolutions))
	mux.HandleFunc("/api/v1/searches", s.requireSession(s.handleSearches))
	mux.HandleFunc("/api/v1/chat", s.handleChat)
	mux.HandleFunc("/api/v1/report/pdf", s.handleReportPDF)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("http %s %s %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

type sessionKey struct{}

func sessionUser(ctx context.Context) (store.User, bool) {
	u, ok := ctx.Value(sessionKey{}).(store.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, unauthorizedError("missing bearer token"))
			return
		}
		u, err := s.store.SessionUser(r.Context(), token)
		if err != nil {
			writeError(w, unauthorizedError("invalid or expired session"))
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, u)))
	}
}

// attachSession resolves a bearer token when present but lets anonymous
// requests through. Used by analyze, which only persists for known users.
func (s *Server) attachSession(r *http.Request) *http.Request {
	token := bearerToken(r)
	if token == "" {
		return r
	}
	u, err := s.store.SessionUser(r.Context(), token)
	if err != nil {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), sessionKey{}, u))
}

// --- handlers ---

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, validationError("invalid JSON body"))
		return
	}
	u, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, mapAuthError(err))
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, validationError("invalid JSON body"))
		return
	}
	u, sess, err := s.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, mapAuthError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user":       u,
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if err := s.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(w, newError(CodeInternal, err.Error(), true))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, validationError("invalid JSON body"))
		return
	}
	if err := s.auth.ResetPassword(r.Context(), req.Username, req.Email, req.NewPassword); err != nil {
		writeError(w, mapAuthError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := sessionUser(r.Context())
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, u)
	case http.MethodPatch:
		var upd store.ProfileUpdate
		if err := decodeJSON(r, &upd); err != nil {
			writeError(w, validationError("invalid JSON body"))
			return
		}
		updated, err := s.auth.UpdateProfile(r.Context(), u.ID, upd)
		if err != nil {
			writeError(w, mapAuthError(err))
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		var req struct {
			Password string `json:"password"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, validationError("invalid JSON body"))
			return
		}
		if err := s.auth.DeleteAccount(r.Context(), u.ID, req.Password); err != nil {
			writeError(w, mapAuthError(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	u, _ := sessionUser(r.Context())
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, validationError("invalid JSON body"))
		return
	}
	if err := s.auth.UpdatePassword(r.Context(), u.ID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, mapAuthError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	r = s.attachSession(r)
	var req pipeline.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, validationError("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.ProblemStatement) == "" {
		writeError(w, validationError("problem_statement is required"))
		return
	}
	if req.Depth == 0 {
		req.Depth = s.depth
	}
	if req.Level == 0 {
		req.Level = s.level
	}
	result, err := s.pipe.Run(r.Context(), req)
	if err != nil {
		writeError(w, newError(CodeInternal, err.Error(), true))
		return
	}
	env := pipeline.BuildResponse(result)

	resp := map[string]any{
		"result":          env.Result,
		"report_markdown": env.ReportMarkdown,
		"disclaimer":      env.Disclaimer,
	}
	if u, ok := sessionUser(r.Context()); ok {
		// Persistence failures are logged, never fatal to the analysis.
		search, err := s.store.SaveSearch(r.Context(), u.ID, req.ProblemStatement)
		if err != nil {
			s.logger.Printf("save search failed for user %s: %v", u.ID, err)
		} else {
			resp["search_id"] = search.ID
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSolutions(w http.ResponseWriter, r *http.Request) {
	u, _ := sessionUser(r.Context())
	switch r.Method {
	case http.MethodPost:
		var req struct {
			SearchID     string          `json:"search_id"`
			SolutionData json.RawMessage `json:"solution_data"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, validationError("invalid JSON body"))
			return
		}
		if req.SearchID == "" || len(req.SolutionData) == 0 {
			writeError(w, validationError("search_id and solution_data are required"))
			return
		}
		saved, err := s.store.SaveSolution(r.Context(), u.ID, req.SearchID, req.SolutionData)
		if err != nil {
			writeError(w, mapStoreError(err))
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	case http.MethodGet:
		solutions, err := s.store.SolutionsByUser(r.Context(), u.ID)
		if err != nil {
			writeError(w, mapStoreError(err))
			return
		}
		if solutions == nil {
			solutions = []store.SavedSolution{}
		}
		writeJSON(w, http.StatusOK, solutions)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSearches(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	u, _ := sessionUser(r.Context())
	history, err := s.store.SearchHistory(r.Context(), u.ID)
	if err != nil {
		writeError(w, mapStoreError(err))
		return
	}
	if history == nil {
		history = []store.SearchSummary{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.chat == nil {
		writeError(w, unavailableError("assistant is not configured"))
		return
	}
	var req struct {
		Messages []llm.Message `json:"messages"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, validationError("invalid JSON body"))
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, validationError("messages are required"))
		return
	}
	reply, err := s.chat.Chat(r.Context(), req.Messages)
	if err != nil {
		writeError(w, unavailableError(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.pdf == nil {
		writeError(w, unavailableError("pdf rendering is not configured"))
		return
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil || len(blob) == 0 {
		writeError(w, validationError("request body is required"))
		return
	}
	pdf, err := s.pdf.Render(r.Context(), string(blob))
	if err != nil {
		writeError(w, unavailableError(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "capability": pipeline.CapabilityAnalysis})
}

// --- helpers ---

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeJSON(r *http.Request, dst any) error {
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	return json.Unmarshal(blob, dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = newError(CodeInternal, err.Error(), true)
	}
	writeJSON(w, ae.Status, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":      ae.Code,
			"message":   ae.Message,
			"transient": ae.Transient,
		},
	})
}

func mapAuthError(err error) *Error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return unauthorizedError(err.Error())
	case errors.Is(err, auth.ErrInvalidInput), errors.Is(err, auth.ErrWeakPassword):
		return validationError(err.Error())
	default:
		return mapStoreError(err)
	}
}

func mapStoreError(err error) *Error {
	switch {
	case errors.Is(err, store.ErrDuplicateUsername), errors.Is(err, store.ErrDuplicateEmail):
		return conflictError(err.Error())
	case errors.Is(err, store.ErrNotFound):
		return notFoundError(err.Error())
	case errors.Is(err, store.ErrSessionExpired):
		return unauthorizedError(err.Error())
	default:
		return newError(CodeInternal, err.Error(), true)
	}
}
