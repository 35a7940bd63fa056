package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{name: "default is pt", header: nil, want: "pt"},
		{name: "x-locale wins", header: map[string]string{"X-Locale": "en", "Accept-Language": "pt-BR"}, want: "en"},
		{name: "accept language english", header: map[string]string{"Accept-Language": "en-US,en;q=0.9"}, want: "en"},
		{name: "accept language portuguese", header: map[string]string{"Accept-Language": "pt-BR,pt;q=0.9"}, want: "pt"},
		{name: "unknown language falls back", header: map[string]string{"Accept-Language": "fr-FR"}, want: "pt"},
		{name: "garbage header falls back", header: map[string]string{"Accept-Language": ";;;"}, want: "pt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			if got := detectLocale(req, ""); got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.10:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
	if got := ClientIP(req); got != "203.0.113.1" {
		t.Fatalf("ClientIP() = %q", got)
	}
}
