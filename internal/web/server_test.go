package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/auth"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/candidate"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/session"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/storage"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/vault"
)

type scriptedConv struct{ replies []string }

func (c *scriptedConv) Converse(_ context.Context, _ []history.Message) string {
	r := c.replies[0]
	c.replies = c.replies[1:]
	return r
}

type stubAnalyst struct{ calls int }

func (a *stubAnalyst) Analyze(_ context.Context, _ []history.Message) string {
	a.calls++
	return "Final Recommendation: Hire"
}

type failingFinalizer struct{}

func (failingFinalizer) Save([]history.Message) error { return errors.New("disk full") }

type fixture struct {
	srv     *Server
	store   *storage.FileStore
	analyst *stubAnalyst
	cookie  *http.Cookie
}

func newFixture(t *testing.T, replies ...string) *fixture {
	t.Helper()
	v, err := vault.New("")
	if err != nil {
		t.Fatalf("vault: %v", err)
	}
	checker, err := auth.NewSharedSecret("hr2026")
	if err != nil {
		t.Fatalf("auth: %v", err)
	}
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "candidates.json"))
	cands := candidate.NewService(store, v)
	analyst := &stubAnalyst{}
	srv, err := New(Deps{
		Sessions:      session.NewManager("Hello from TalentScout", time.Hour),
		Interview:     session.NewInterview(&scriptedConv{replies: replies}, cands, ""),
		Candidates:    cands,
		Analyst:       analyst,
		Auth:          checker,
		ConsentNotice: "Your responses will be recorded.",
	})
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	return &fixture{srv: srv, store: store, analyst: analyst}
}

func (f *fixture) do(t *testing.T, method, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	resp, err := f.srv.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			f.cookie = c
		}
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(raw)
}

func expectRedirect(t *testing.T, resp *http.Response, to string) {
	t.Helper()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("want 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != to {
		t.Fatalf("want redirect to %q, got %q", to, loc)
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	resp, body := f.do(t, http.MethodGet, "/healthz", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Fatalf("unexpected health response: %d %s", resp.StatusCode, body)
	}
}

func TestCandidateFlow(t *testing.T) {
	f := newFixture(t,
		"Full Name: jane doe\nYears of Experience: 4\nDesired Position: sre\nTech Stack: go",
		"Thanks, goodbye! FINAL_HANDOVER",
	)

	resp, body := f.do(t, http.MethodGet, "/", nil)
	if resp.StatusCode != http.StatusOK || f.cookie == nil {
		t.Fatalf("first visit should set a session cookie, status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "I Consent &amp; Start Interview") {
		t.Fatalf("consent gate not shown")
	}

	resp, _ = f.do(t, http.MethodPost, "/chat", url.Values{"message": {"too early"}})
	expectRedirect(t, resp, "/")

	resp, _ = f.do(t, http.MethodPost, "/consent", url.Values{})
	expectRedirect(t, resp, "/")

	resp, _ = f.do(t, http.MethodPost, "/chat", url.Values{"message": {"Jane Doe, 4 years, SRE, Go"}})
	expectRedirect(t, resp, "/")
	_, body = f.do(t, http.MethodGet, "/", nil)
	if !strings.Contains(body, "Desired Position: sre") || !strings.Contains(body, "Hello from TalentScout") {
		t.Fatalf("chat history not rendered: %s", body)
	}

	f.do(t, http.MethodPost, "/chat", url.Values{"message": {"No, that is all."}})
	_, body = f.do(t, http.MethodGet, "/", nil)
	if !strings.Contains(body, "Interview Complete") || strings.Contains(body, "FINAL_HANDOVER") {
		t.Fatalf("completed state not rendered correctly: %s", body)
	}
	records, _ := f.store.LoadAll()
	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d", len(records))
	}

	resp, _ = f.do(t, http.MethodPost, "/restart", url.Values{})
	expectRedirect(t, resp, "/")
	_, body = f.do(t, http.MethodGet, "/", nil)
	if !strings.Contains(body, "I Consent &amp; Start Interview") {
		t.Fatalf("restart should return to the consent gate")
	}
	if records, _ := f.store.LoadAll(); len(records) != 1 {
		t.Fatalf("restart must not touch the store")
	}
}

func TestChatSaveFailureShowsBanner(t *testing.T) {
	f := newFixture(t)
	f.srv.deps.Interview = session.NewInterview(&scriptedConv{replies: []string{"Bye FINAL_HANDOVER"}}, failingFinalizer{}, "")

	f.do(t, http.MethodGet, "/", nil)
	f.do(t, http.MethodPost, "/consent", url.Values{})
	resp, _ := f.do(t, http.MethodPost, "/chat", url.Values{"message": {"done"}})
	expectRedirect(t, resp, "/?error=save")

	_, body := f.do(t, http.MethodGet, "/?error=save", nil)
	if !strings.Contains(body, "could not save your interview") {
		t.Fatalf("error banner missing")
	}
	if strings.Contains(body, "Interview Complete") {
		t.Fatalf("session must not be marked complete")
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	f := newFixture(t)
	for _, p := range []string{"/admin", "/admin/export", "/admin/candidates/0"} {
		resp, _ := f.do(t, http.MethodGet, p, nil)
		expectRedirect(t, resp, "/")
	}

	resp, body := f.do(t, http.MethodPost, "/admin/login", url.Values{"password": {"wrong"}})
	if resp.StatusCode != http.StatusUnauthorized || !strings.Contains(body, "Access Denied") {
		t.Fatalf("wrong password: %d", resp.StatusCode)
	}
}

func TestAdminDashboard(t *testing.T) {
	f := newFixture(t, "Full Name: jane doe\nTech Stack: go FINAL_HANDOVER")
	f.do(t, http.MethodGet, "/", nil)
	f.do(t, http.MethodPost, "/consent", url.Values{})
	f.do(t, http.MethodPost, "/chat", url.Values{"message": {"bye"}})

	resp, _ := f.do(t, http.MethodPost, "/admin/login", url.Values{"password": {"hr2026"}})
	expectRedirect(t, resp, "/admin")

	resp, _ = f.do(t, http.MethodGet, "/", nil)
	expectRedirect(t, resp, "/admin")

	resp, body := f.do(t, http.MethodGet, "/admin", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Total Applicants") || !strings.Contains(body, "Screened Today") || !strings.Contains(body, "Jane Doe") {
		t.Fatalf("dashboard: %d %s", resp.StatusCode, body)
	}

	resp, _ = f.do(t, http.MethodGet, "/admin/export", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Header.Get("Content-Disposition"), "Master_Recruitment_Report.pdf") {
		t.Fatalf("bulk export: %d %v", resp.StatusCode, resp.Header)
	}

	resp, body = f.do(t, http.MethodGet, "/admin/candidates/0", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "USER: bye") {
		t.Fatalf("detail: %d %s", resp.StatusCode, body)
	}

	resp, _ = f.do(t, http.MethodGet, "/admin/candidates/0/pdf", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Header.Get("Content-Disposition"), "_Report.pdf") {
		t.Fatalf("single export: %d %v", resp.StatusCode, resp.Header)
	}

	resp, body = f.do(t, http.MethodPost, "/admin/candidates/0/analysis", url.Values{})
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Final Recommendation: Hire") || f.analyst.calls != 1 {
		t.Fatalf("analysis: %d %s", resp.StatusCode, body)
	}

	resp, _ = f.do(t, http.MethodGet, "/admin/candidates/7", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown index, got %d", resp.StatusCode)
	}

	resp, _ = f.do(t, http.MethodPost, "/admin/reset", url.Values{})
	expectRedirect(t, resp, "/admin")
	if records, _ := f.store.LoadAll(); len(records) != 0 {
		t.Fatalf("store should be empty after reset")
	}
	_, body = f.do(t, http.MethodGet, "/admin", nil)
	if !strings.Contains(body, "No candidates have applied yet.") {
		t.Fatalf("empty dashboard message missing")
	}

	resp, _ = f.do(t, http.MethodPost, "/admin/logout", url.Values{})
	expectRedirect(t, resp, "/")
	resp, _ = f.do(t, http.MethodGet, "/admin", nil)
	expectRedirect(t, resp, "/")
}
