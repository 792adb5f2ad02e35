package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"

	"github.com/erevald/fantasy-names/internal/database"
	"github.com/erevald/fantasy-names/internal/handler"
	"github.com/erevald/fantasy-names/internal/repository"
)

func newTestHandler(t *testing.T) *handler.NameHandler {
	t.Helper()
	pool := &database.Pool{}
	err := pool.Open(database.Config{
		Driver:         "sqlite3",
		DSN:            ":memory:",
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		AcquireTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return handler.NewNameHandler(repository.NewNameRepo(pool))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRandomNamesValidationFailure(t *testing.T) {
	h := newTestHandler(t)

	for _, target := range []string{
		"/api/names/random?count=51",
		"/api/names/random?count=0",
		"/api/names/random?gender=dragon",
	} {
		rec := doJSON(t, h.RandomNames, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: want 400, got %d", target, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		if body["error"] == "" {
			t.Errorf("%s: error message missing", target)
		}
	}
}

func TestRandomNamesOK(t *testing.T) {
	h := newTestHandler(t)
	addName(t, h, `{"name":"Aelindra","gender":"female","origin":"elvish"}`)
	addName(t, h, `{"name":"Sage","gender":"neutral"}`)

	rec := doJSON(t, h.RandomNames, http.MethodGet, "/api/names/random?gender=female&count=10&origin=elvish", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Names  []string `json:"names"`
		Gender string   `json:"gender"`
		Count  int      `json:"count"`
		Origin string   `json:"origin"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Gender != "female" || body.Origin != "elvish" {
		t.Errorf("filters not echoed: %+v", body)
	}
	if body.Count != 1 || len(body.Names) != 1 || body.Names[0] != "Aelindra" {
		t.Errorf("want only Aelindra, got %+v", body)
	}
}

func TestAddNameRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing gender", `{"name":"Aldric"}`},
		{"missing name", `{"gender":"male"}`},
		{"invalid gender", `{"name":"X","gender":"dragon"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h.AddName, http.MethodPost, "/api/names/add", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("want 400, got %d", rec.Code)
			}
		})
	}
}

func TestAddNameThenStats(t *testing.T) {
	h := newTestHandler(t)
	addName(t, h, `{"name":"Aelindra","gender":"female","origin":"elvish"}`)

	rec := doJSON(t, h.Stats, http.MethodGet, "/api/names/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	// Stats serialize as [["gender", count], ...] pairs.
	var body struct {
		Stats [][]any `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Stats) != 1 {
		t.Fatalf("want one stats pair, got %v", body.Stats)
	}
	pair := body.Stats[0]
	if len(pair) != 2 || pair[0] != "female" || pair[1] != float64(1) {
		t.Fatalf("want [female 1], got %v", pair)
	}
}

func TestStatsEmptyStore(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.Stats, http.MethodGet, "/api/names/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	var body struct {
		Stats [][]any `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Stats == nil || len(body.Stats) != 0 {
		t.Fatalf("want empty stats array, got %v", body.Stats)
	}
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, handler.Health, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["timestamp"] == "" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func addName(t *testing.T, h *handler.NameHandler, body string) {
	t.Helper()
	rec := doJSON(t, h.AddName, http.MethodPost, "/api/names/add", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: want 201, got %d (%s)", rec.Code, rec.Body.String())
	}
}
