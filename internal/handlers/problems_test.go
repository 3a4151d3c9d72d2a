package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prep_tracker/internal/models"
	"prep_tracker/internal/service"
)

func TestTrackerRoutes_RequireSession(t *testing.T) {
	routes := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/dashboard", ""},
		{http.MethodPost, "/add_problem", "topic=Arrays&problem=Two+Sum"},
		{http.MethodGet, "/toggle_status/1", ""},
		{http.MethodGet, "/delete_problem/1", ""},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			tracker := &mockTracker{}
			s := &service.Service{Authorization: &mockAuth{}, ProblemTracker: tracker}
			r := newTestRouter(s, Config{})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, sessionRequest(rt.method, rt.target, rt.body, ""))

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status: got %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Fatalf("location: got %q, want /login", loc)
			}
			// nothing may be mutated or even read for an unauthenticated request
			if tracker.mutations() != 0 || len(tracker.listCalls) != 0 {
				t.Fatalf("tracker touched by unauthenticated request: %+v", tracker)
			}
		})
	}
}

func TestDashboard_RendersProblemsAndProgress(t *testing.T) {
	auth := &mockAuth{parseUsername: "alice"}
	tracker := &mockTracker{
		problems: []models.Problem{
			{ID: 1, Username: "alice", Topic: "Arrays", Problem: "Two Sum", Status: models.StatusSolved},
			{ID: 2, Username: "alice", Topic: "Graphs", Problem: "BFS", Status: models.StatusUnsolved},
		},
		progress: models.Progress{Total: 4, Solved: 1, Percent: 25},
	}
	s := &service.Service{Authorization: auth, ProblemTracker: tracker}
	r := newTestRouter(s, Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/dashboard", "", "good-token"))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Welcome, alice", "Two Sum", "BFS", "1/4 solved (25%)", "/toggle_status/1", "/delete_problem/2"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in dashboard body, got: %s", want, body)
		}
	}
}

func TestDashboard_StoreFailureIsGeneric500(t *testing.T) {
	auth := &mockAuth{parseUsername: "alice"}
	tracker := &mockTracker{listErr: errInvalidTokenForTest}
	s := &service.Service{Authorization: auth, ProblemTracker: tracker}
	r := newTestRouter(s, Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/dashboard", "", "good-token"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
}

func TestAddProblem_OwnerComesFromSessionNotForm(t *testing.T) {
	auth := &mockAuth{parseUsername: "alice"}
	tracker := &mockTracker{addID: 3}
	s := &service.Service{Authorization: auth, ProblemTracker: tracker}
	r := newTestRouter(s, Config{})

	w := httptest.NewRecorder()
	// a username form field is plain data to the handler, never the owner
	body := "topic=Arrays&problem=Two+Sum&username=mallory"
	r.ServeHTTP(w, sessionRequest(http.MethodPost, "/add_problem", body, "good-token"))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected 303 to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(tracker.addCalls) != 1 {
		t.Fatalf("expected 1 Add call, got %d", len(tracker.addCalls))
	}
	call := tracker.addCalls[0]
	if call.Owner != "alice" {
		t.Fatalf("owner must come from the session: got %q", call.Owner)
	}
	if call.Topic != "Arrays" || call.Problem != "Two Sum" {
		t.Fatalf("unexpected Add args: %+v", call)
	}
}

func TestAddProblem_MissingFieldsRedirectWithoutInsert(t *testing.T) {
	auth := &mockAuth{parseUsername: "alice"}
	tracker := &mockTracker{}
	s := &service.Service{Authorization: auth, ProblemTracker: tracker}
	r := newTestRouter(s, Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodPost, "/add_problem", "topic=Arrays", "good-token"))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected 303 to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(tracker.addCalls) != 0 {
		t.Fatalf("expected no Add calls, got %d", len(tracker.addCalls))
	}
	if !hasFlashCookie(w) {
		t.Fatalf("expected flash cookie explaining the rejection")
	}
}

func TestToggleStatus(t *testing.T) {
	t.Run("owned id is toggled and redirected", func(t *testing.T) {
		auth := &mockAuth{parseUsername: "alice"}
		tracker := &mockTracker{}
		s := &service.Service{Authorization: auth, ProblemTracker: tracker}
		r := newTestRouter(s, Config{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, sessionRequest(http.MethodGet, "/toggle_status/5", "", "good-token"))

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
			t.Fatalf("expected 303 to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
		}
		if len(tracker.toggleCalls) != 1 || tracker.toggleCalls[0] != (trackerCall{Owner: "alice", ID: 5}) {
			t.Fatalf("unexpected toggle calls: %+v", tracker.toggleCalls)
		}
	})

	t.Run("non-numeric id is a silent no-op", func(t *testing.T) {
		auth := &mockAuth{parseUsername: "alice"}
		tracker := &mockTracker{}
		s := &service.Service{Authorization: auth, ProblemTracker: tracker}
		r := newTestRouter(s, Config{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, sessionRequest(http.MethodGet, "/toggle_status/abc", "", "good-token"))

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
			t.Fatalf("expected 303 to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
		}
		if len(tracker.toggleCalls) != 0 {
			t.Fatalf("expected no toggle calls, got %+v", tracker.toggleCalls)
		}
	})
}

func TestDeleteProblem(t *testing.T) {
	auth := &mockAuth{parseUsername: "alice"}
	tracker := &mockTracker{}
	s := &service.Service{Authorization: auth, ProblemTracker: tracker}
	r := newTestRouter(s, Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/delete_problem/8", "", "good-token"))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected 303 to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(tracker.deleteCalls) != 1 || tracker.deleteCalls[0] != (trackerCall{Owner: "alice", ID: 8}) {
		t.Fatalf("unexpected delete calls: %+v", tracker.deleteCalls)
	}
}

func TestPlaceholderPages_RenderComingSoon(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}, ProblemTracker: &mockTracker{}}
	r := newTestRouter(s, Config{})

	for _, page := range placeholderPages {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, sessionRequest(http.MethodGet, page.Path, "", ""))

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d, want 200", page.Path, w.Code)
		}
		if !strings.Contains(w.Body.String(), page.Title+" - Coming Soon") {
			t.Fatalf("%s: expected coming-soon body, got: %s", page.Path, w.Body.String())
		}
	}
}
