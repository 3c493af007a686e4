package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rhenlumbo/portfolio-backend/internal/config"
)

func corsHandler() http.Handler {
	cfg := config.CORSConfig{
		AllowedOrigins:  []string{"http://localhost:10000", "https://rhenlumbo.dev"},
		AllowedSuffixes: []string{".vercel.app"},
	}

	return CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/chat", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	resp := httptest.NewRecorder()
	corsHandler().ServeHTTP(resp, req)
	return resp
}

func TestCORSNoOriginPassesThrough(t *testing.T) {
	resp := doRequest(http.MethodGet, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("no CORS headers expected without an Origin header")
	}
}

func TestCORSExactOriginAllowed(t *testing.T) {
	resp := doRequest(http.MethodGet, "https://rhenlumbo.dev")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://rhenlumbo.dev" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
	if resp.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials header")
	}
}

func TestCORSProviderSuffixAllowed(t *testing.T) {
	resp := doRequest(http.MethodGet, "https://my-preview-deploy.vercel.app")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCORSDisallowedOriginRejected(t *testing.T) {
	resp := doRequest(http.MethodGet, "https://evil.example.com")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	resp := doRequest(http.MethodOptions, "http://localhost:10000")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("expected allow-methods header on preflight")
	}
}
