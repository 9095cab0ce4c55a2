package runner

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-roster-builder/internal/config"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers/api"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers/fixture"
	"github.com/preston-bernstein/nba-roster-builder/internal/testutil"
)

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: "fixture"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
	if _, ok := selectProvider(config.Config{Provider: "API"}, nil).(*api.Client); !ok {
		t.Fatalf("expected api client")
	}
	if _, ok := selectProvider(config.Config{}, nil).(*api.Client); !ok {
		t.Fatalf("expected api client by default")
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	if _, ok := selectProvider(config.Config{Provider: "nope"}, logger).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback")
	}
	if !strings.Contains(buf.String(), "unknown provider") {
		t.Fatalf("expected fallback warning, got %q", buf.String())
	}
}

func TestProviderFactoryWrapsWithInstrumentation(t *testing.T) {
	prov := newProviderFactory(nil, nil).build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if got := providers.NameOf(prov); got != "fixture" {
		t.Fatalf("expected wrapper to keep the provider name, got %q", got)
	}
}
