package api

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientUsesTimeout(t *testing.T) {
	client, ok := resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client")
	}
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", client.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if got := resolveHTTPClient(custom, time.Second); got != custom {
		t.Fatalf("expected provided client to be used")
	}
}
