package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hackseek-app/hackseek/internal/auth"
	"github.com/hackseek-app/hackseek/internal/llm"
	"github.com/hackseek-app/hackseek/internal/pipeline"
	"github.com/hackseek-app/hackseek/internal/store"
)

type stubChatter struct {
	reply string
	err   error
}

func (c *stubChatter) Chat(context.Context, []llm.Message) (string, error) {
	return c.reply, c.err
}

type stubPDF struct{}

func (stubPDF) Render(context.Context, string) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newTestServer(t *testing.T, opts func(*Options)) http.Handler {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	o := Options{
		Store: st,
		Auth:  auth.NewService(st),
		Pipe:  pipeline.New(rand.New(rand.NewSource(1))),
		Chat:  &stubChatter{reply: "Start with a thin demo."},
		PDF:   stubPDF{},
	}
	if opts != nil {
		opts(&o)
	}
	return NewServer(o)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func register(t *testing.T, h http.Handler, username, email, password string) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username, "email": email, "password": password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body.String())
	}
}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("no session token in login response")
	}
	return resp.Token
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantCode string) {
	t.Helper()
	var resp struct {
		OK    bool `json:"ok"`
		Error struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			Transient bool   `json:"transient"`
		} `json:"error"`
	}
	decodeBody(t, rec, &resp)
	if resp.OK {
		t.Fatalf("error envelope has ok=true: %s", rec.Body.String())
	}
	if resp.Error.Code != wantCode || resp.Error.Message == "" {
		t.Fatalf("error envelope = %+v, want code %s", resp.Error, wantCode)
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status = %d", rec.Code)
	}
	var u store.User
	decodeBody(t, rec, &u)
	if u.Username != "ada" {
		t.Fatalf("profile user = %+v", u)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "ada", "email": "other@example.com", "password": "correct-horse",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "ada", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeUnauthorized)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	h := newTestServer(t, nil)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/searches", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeUnauthorized)
}

func TestAnalyzeAnonymous(t *testing.T) {
	h := newTestServer(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/analyze", "", map[string]any{
		"problem_statement": "Healthcare providers cannot easily share patient records between hospitals due to privacy regulations.",
		"depth":             3,
		"level":             3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Result         pipeline.Result `json:"result"`
		ReportMarkdown string          `json:"report_markdown"`
		SearchID       string          `json:"search_id"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Result.Actions) == 0 || resp.ReportMarkdown == "" {
		t.Fatal("analysis result incomplete")
	}
	if resp.SearchID != "" {
		t.Fatal("anonymous analyze must not save a search")
	}
}

func TestAnalyzeAuthenticatedSavesSearch(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/analyze", token, map[string]any{
		"problem_statement": "Reduce food waste in school cafeterias.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		SearchID string `json:"search_id"`
	}
	decodeBody(t, rec, &resp)
	if resp.SearchID == "" {
		t.Fatal("authenticated analyze must save a search")
	}

	histRec := doJSON(t, h, http.MethodGet, "/api/v1/searches", token, nil)
	if histRec.Code != http.StatusOK {
		t.Fatalf("searches status = %d", histRec.Code)
	}
	var history []store.SearchSummary
	decodeBody(t, histRec, &history)
	if len(history) != 1 || history[0].ID != resp.SearchID {
		t.Fatalf("history = %+v", history)
	}
}

func TestAnalyzeRequiresProblemStatement(t *testing.T) {
	h := newTestServer(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/analyze", "", map[string]any{"problem_statement": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeValidation)
}

func TestSolutionsRoundTrip(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")

	analyzeRec := doJSON(t, h, http.MethodPost, "/api/v1/analyze", token, map[string]any{
		"problem_statement": "Improve bicycle safety at night.",
	})
	var analyzeResp struct {
		SearchID string `json:"search_id"`
	}
	decodeBody(t, analyzeRec, &analyzeResp)

	saveRec := doJSON(t, h, http.MethodPost, "/api/v1/solutions", token, map[string]any{
		"search_id":     analyzeResp.SearchID,
		"solution_data": map[string]any{"title": "Reflective Route Planner"},
	})
	if saveRec.Code != http.StatusCreated {
		t.Fatalf("save status = %d: %s", saveRec.Code, saveRec.Body.String())
	}

	listRec := doJSON(t, h, http.MethodGet, "/api/v1/solutions", token, nil)
	var solutions []store.SavedSolution
	decodeBody(t, listRec, &solutions)
	if len(solutions) != 1 || solutions[0].SearchID != analyzeResp.SearchID {
		t.Fatalf("solutions = %+v", solutions)
	}
}

func TestSaveSolutionUnknownSearch(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")
	rec := doJSON(t, h, http.MethodPost, "/api/v1/solutions", token, map[string]any{
		"search_id":     "missing",
		"solution_data": map[string]any{"title": "x"},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeNotFound)
}

func TestProfileUpdateAndPasswordChange(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")

	rec := doJSON(t, h, http.MethodPatch, "/api/v1/profile", token, map[string]string{"theme": "dark"})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", rec.Code, rec.Body.String())
	}
	var u store.User
	decodeBody(t, rec, &u)
	if u.Theme != "dark" {
		t.Fatalf("theme = %s", u.Theme)
	}

	pwRec := doJSON(t, h, http.MethodPost, "/api/v1/profile/password", token, map[string]string{
		"old_password": "correct-horse", "new_password": "battery-staple",
	})
	if pwRec.Code != http.StatusOK {
		t.Fatalf("password status = %d: %s", pwRec.Code, pwRec.Body.String())
	}
	login(t, h, "ada", "battery-staple")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rec.Code)
	}
	after := doJSON(t, h, http.MethodGet, "/api/v1/profile", token, nil)
	if after.Code != http.StatusUnauthorized {
		t.Fatalf("status after logout = %d", after.Code)
	}
}

func TestDeleteAccount(t *testing.T) {
	h := newTestServer(t, nil)
	register(t, h, "ada", "ada@example.com", "correct-horse")
	token := login(t, h, "ada", "correct-horse")

	rec := doJSON(t, h, http.MethodDelete, "/api/v1/profile", token, map[string]string{"password": "correct-horse"})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}
	loginRec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "ada", "password": "correct-horse",
	})
	if loginRec.Code != http.StatusUnauthorized {
		t.Fatalf("login after delete = %d", loginRec.Code)
	}
}

func TestChat(t *testing.T) {
	h := newTestServer(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/chat", "", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "How do I start?"}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("chat status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	decodeBody(t, rec, &resp)
	if resp.Reply != "Start with a thin demo." {
		t.Fatalf("reply = %q", resp.Reply)
	}
}

func TestChatUnavailable(t *testing.T) {
	h := newTestServer(t, func(o *Options) { o.Chat = nil })
	rec := doJSON(t, h, http.MethodPost, "/api/v1/chat", "", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeUnavailable)
}

func TestChatUpstreamFailure(t *testing.T) {
	h := newTestServer(t, func(o *Options) { o.Chat = &stubChatter{err: errors.New("model call failed")} })
	rec := doJSON(t, h, http.MethodPost, "/api/v1/chat", "", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	assertErrorEnvelope(t, rec, CodeUnavailable)
}

func TestReportPDF(t *testing.T) {
	h := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report/pdf", bytes.NewBufferString("# Report\n"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %s", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("not a pdf payload")
	}
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, nil)
	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		OK bool `json:"ok"`
	}
	decodeBody(t, rec, &resp)
	if !resp.OK {
		t.Fatal("healthz not ok")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, nil)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/analyze", "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}
