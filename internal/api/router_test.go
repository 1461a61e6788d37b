package api

import (
	"net/http"
	"testing"
)

func TestPublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/", "/register", "/login", "/admin/login", "/rooms", "/user/home"} {
		w := ts.get(path)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s should return 200, got %d", path, w.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get("/metrics")
	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics should return 200, got %d", w.Code)
	}
}

func TestAdminRoutesRedirectToAdminLogin(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/admin/home", "/admin/addRoom", "/admin/edit/1", "/admin/delete/1", "/admin/export"} {
		w := ts.get(path)
		if w.Code != http.StatusFound {
			t.Errorf("GET %s should redirect, got %d", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("GET %s should redirect to /admin/login, got %q", path, loc)
		}
	}
}

func TestUserRoutesRedirectToLogin(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get("/bookings")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Errorf("GET /bookings without session should redirect to /login, got %d %q",
			w.Code, w.Header().Get("Location"))
	}
}
