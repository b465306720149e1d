// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/ingest"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/repository"
)

const testPassword = "Popcorn2024x"

type testMovie struct {
	rank     int
	title    string
	year     int
	director string
	actors   []string
	genres   []string
	runtime  int
}

var testMovies = []testMovie{
	{1, "Guardians of the Galaxy", 2014, "James Gunn",
		[]string{"Chris Pratt", "Vin Diesel", "Bradley Cooper", "Zoe Saldana"},
		[]string{"Action", "Adventure", "Sci-Fi"}, 121},
	{2, "Prometheus", 2012, "Ridley Scott",
		[]string{"Noomi Rapace", "Logan Marshall-Green", "Michael Fassbender", "Charlize Theron"},
		[]string{"Adventure", "Mystery", "Sci-Fi"}, 124},
	{3, "Split", 2016, "M. Night Shyamalan",
		[]string{"James McAvoy", "Anya Taylor-Joy", "Haley Lu Richardson", "Jessica Sula"},
		[]string{"Horror", "Thriller"}, 117},
	{4, "Sing", 2016, "Christophe Lourdelet",
		[]string{"Matthew McConaughey", "Reese Witherspoon", "Seth MacFarlane", "Scarlett Johansson"},
		[]string{"Animation", "Comedy", "Family"}, 108},
	{5, "Suicide Squad", 2016, "David Ayer",
		[]string{"Will Smith", "Jared Leto", "Margot Robbie", "Viola Davis"},
		[]string{"Action", "Adventure", "Fantasy"}, 123},
	{6, "Passengers", 2016, "Morten Tyldum",
		[]string{"Jennifer Lawrence", "Chris Pratt", "Michael Sheen", "Laurence Fishburne"},
		[]string{"Adventure", "Drama", "Romance"}, 116},
}

// fakeImport is a controllable ImportStatus.
type fakeImport struct {
	completed bool
	running   bool
}

func (f *fakeImport) Completed() bool { return f.completed }
func (f *fakeImport) IsRunning() bool { return f.running }
func (f *fakeImport) GetStats() *ingest.ImportStats {
	stats := &ingest.ImportStats{TotalRecords: 6, Processed: 3, StartTime: time.Now()}
	if f.completed {
		stats.Processed = 6
		stats.EndTime = time.Now()
	}
	return stats
}

type testEnv struct {
	server *httptest.Server
	repo   *repository.MemoryRepository
	auth   *auth.Service
	tokens *auth.JWTManager
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{DefaultPageSize: 2, MaxPageSize: 3},
		Security: config.SecurityConfig{
			JWTSecret:          "test_secret_with_at_least_32_characters_for_testing",
			SessionTimeout:     time.Hour,
			BcryptCost:         bcrypt.MinCost,
			RateLimitReqs:      100,
			RateLimitWindow:    time.Minute,
			RateLimitDisabled:  true,
			CORSOrigins:        []string{"https://marquee.example"},
			LockoutMaxAttempts: 3,
			LockoutDuration:    time.Minute,
		},
	}
}

// newTestEnv serves the full router over a repository holding testMovies
// and the user thorke.
func newTestEnv(t *testing.T, cfg *config.Config, opts ...HandlerOption) *testEnv {
	t.Helper()

	repo := repository.New()
	ix := repository.NewIndexer(repo)
	for _, tm := range testMovies {
		m := models.NewMovie(tm.title, tm.year)
		m.SetRank(tm.rank)
		m.SetDirector(models.NewDirector(tm.director))
		for _, a := range tm.actors {
			m.AddActor(models.NewActor(a))
		}
		for _, g := range tm.genres {
			m.AddGenre(models.NewGenre(g))
		}
		if err := m.SetRuntimeMinutes(tm.runtime); err != nil {
			t.Fatalf("SetRuntimeMinutes: %v", err)
		}
		if err := ix.Index(m); err != nil {
			t.Fatalf("Index: %v", err)
		}
	}

	tokens, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	authSvc, err := auth.NewService(repo, &cfg.Security, tokens)
	if err != nil {
		t.Fatalf("auth.NewService: %v", err)
	}
	hash, err := authSvc.Hasher().Hash(testPassword)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	repo.AddUser(models.NewUser("thorke", hash))

	cat := catalog.NewService(repo, &cfg.Catalog, nil)
	t.Cleanup(cat.Close)

	handler := NewHandler(cat, authSvc, cfg, opts...)
	router := NewRouter(handler, auth.NewMiddleware(tokens), NewChiMiddleware(NewChiMiddlewareConfig(&cfg.Security)))

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)

	return &testEnv{server: server, repo: repo, auth: authSvc, tokens: tokens}
}

// apiResult is an APIResponse with the data left raw.
type apiResult struct {
	StatusCode int
	Header     http.Header
	Status     string           `json:"status"`
	Data       json.RawMessage  `json:"data"`
	Metadata   models.Metadata  `json:"metadata"`
	Error      *models.APIError `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *apiResult {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			if raw, err = json.Marshal(b); err != nil {
				t.Fatalf("marshal body: %v", err)
			}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	result := &apiResult{StatusCode: resp.StatusCode, Header: resp.Header}
	if resp.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return result
}

func (e *testEnv) get(t *testing.T, path string) *apiResult {
	t.Helper()
	return e.do(t, http.MethodGet, path, "", nil)
}

// login returns a bearer token for thorke.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	res := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "thorke",
		"password": testPassword,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (error %+v)", res.StatusCode, res.Error)
	}
	var tok models.TokenResponse
	decodeData(t, res, &tok)
	return tok.Token
}

func decodeData(t *testing.T, res *apiResult, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(res.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", res.Data, err)
	}
}

func assertStatus(t *testing.T, res *apiResult, want int) {
	t.Helper()
	if res.StatusCode != want {
		t.Fatalf("status = %d, want %d (error %+v)", res.StatusCode, want, res.Error)
	}
}

func assertErrorCode(t *testing.T, res *apiResult, wantStatus int, wantCode string) {
	t.Helper()
	assertStatus(t, res, wantStatus)
	if res.Status != "error" {
		t.Errorf("envelope status = %q, want error", res.Status)
	}
	if res.Error == nil || res.Error.Code != wantCode {
		t.Errorf("error = %+v, want code %s", res.Error, wantCode)
	}
}
