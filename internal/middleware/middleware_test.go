package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vet-recetas/internal/platform/logger"
	"vet-recetas/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type stubVerifier struct {
	token  string
	claims auth.Claims
}

func (v stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != v.token {
		return auth.Claims{}, errors.New("bad token")
	}
	return v.claims, nil
}

func TestAuthContext_SetsClaimsForValidBearer(t *testing.T) {
	v := stubVerifier{token: "good", claims: auth.Claims{UserID: 7}}

	var got auth.Claims
	var ok bool
	h := AuthContext(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer good")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got.UserID != 7 {
		t.Fatalf("expected claims for user 7, got ok=%v claims=%#v", ok, got)
	}
}

func TestAuthContext_InvalidTokenPassesThroughWithoutClaims(t *testing.T) {
	v := stubVerifier{token: "good", claims: auth.Claims{UserID: 7}}

	called := false
	h := AuthContext(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := GetClaims(r.Context()); ok {
			t.Fatalf("expected no claims")
		}
	}))

	for _, header := range []string{"", "Bearer bad", "Basic good", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	if !called {
		t.Fatalf("expected next handler to run")
	}
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	h := RateLimit(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %v", codes)
	}

	// otra IP tiene su propio bucket
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected other ip to pass, got %d", rec.Code)
	}
}

func TestIPRateLimiter_SweepsAtMostOncePerTTL(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	at := func(d time.Duration) { rl.now = func() time.Time { return t0.Add(d) } }

	at(0)
	rl.allow("a")
	at(5 * time.Minute)
	rl.allow("b")

	// pasó más de visitorTTL desde el último barrido: "a" expira, "b" no
	at(12 * time.Minute)
	rl.allow("c")
	if _, ok := rl.visitors["a"]; ok {
		t.Fatalf("expected stale visitor a to be swept")
	}
	if _, ok := rl.visitors["b"]; !ok {
		t.Fatalf("expected visitor b to survive the sweep")
	}

	// "b" ya está vencido pero no toca barrer todavía
	at(16 * time.Minute)
	rl.allow("c")
	if _, ok := rl.visitors["b"]; !ok {
		t.Fatalf("expected no sweep before visitorTTL since the last one")
	}

	at(23 * time.Minute)
	rl.allow("c")
	if _, ok := rl.visitors["b"]; ok {
		t.Fatalf("expected visitor b swept on the next sweep")
	}
	if len(rl.visitors) != 1 {
		t.Fatalf("expected only c left, got %d visitors", len(rl.visitors))
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	h := RateLimit(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with limiter disabled, got %d", rec.Code)
		}
	}
}

func TestRecover_RespondsJSON500(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recetas", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}

func TestRequestLogger_ScopedLoggerCarriesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LoggerFrom(r.Context(), logger.Nop()).Error("recetas: request failed", map[string]any{"err": "boom"})
		w.WriteHeader(http.StatusInternalServerError)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recetas/1", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var requestID string
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("line %d not json: %q", i, line)
		}
		id, _ := entry["request_id"].(string)
		if id == "" || entry["method"] != "GET" || entry["path"] != "/recetas/1" {
			t.Fatalf("line %d missing request fields: %v", i, entry)
		}
		if requestID == "" {
			requestID = id
		} else if id != requestID {
			t.Fatalf("expected same request_id on every line, got %q and %q", requestID, id)
		}
	}
}

func TestLoggerFrom_FallsBackWithoutRequestLogger(t *testing.T) {
	fallback := logger.Nop()
	if got := LoggerFrom(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
}
