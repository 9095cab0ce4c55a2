package builder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-roster-builder/internal/roster"
	"github.com/preston-bernstein/nba-roster-builder/internal/testutil"
)

func TestTeamsPageFetchThenOpen(t *testing.T) {
	rec := &recordingRenderer{}
	stub := &testutil.StubProvider{Players: testutil.SampleDirectory()}
	page := NewTeamsPage(stub, rec)

	p, err := page.FetchDetail(context.Background(), 5)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("fetch must not render, got %v", rec.calls)
	}
	page.OpenDetail(p)
	if len(rec.details) != 1 || rec.details[0].ID != 5 {
		t.Fatalf("unexpected details %+v", rec.details)
	}
}

func TestTeamsPageIgnoresEntriesWithoutPlayer(t *testing.T) {
	rec := &recordingRenderer{}
	stub := &testutil.StubProvider{Players: testutil.SampleDirectory()}
	page := NewTeamsPage(stub, rec)

	if page.Selectable(roster.NoPlayer) {
		t.Fatal("empty entry should not be selectable")
	}
	if !page.Selectable(3) {
		t.Fatal("entry with a player should be selectable")
	}
	if _, err := page.FetchDetail(context.Background(), roster.NoPlayer); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if len(stub.DetailHits()) != 0 || len(rec.calls) != 0 {
		t.Fatal("no fetch or render expected for entries without a player")
	}
}

func TestTeamsPageFetchFailureIsLogged(t *testing.T) {
	rec := &recordingRenderer{}
	logger, buf := testutil.NewBufferLogger()
	page := NewTeamsPage(&testutil.StubProvider{DetailErr: errors.New("down")}, rec, WithLogger(logger))

	if _, err := page.FetchDetail(context.Background(), 3); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.details) != 0 {
		t.Fatal("failure must not open detail")
	}
	if !strings.Contains(buf.String(), "error loading player details") {
		t.Fatalf("expected detail error log, got %q", buf.String())
	}
}

func TestTeamsPageNilRenderer(t *testing.T) {
	page := NewTeamsPage(&testutil.StubProvider{}, nil)
	page.OpenDetail(testutil.SamplePlayer(1, ""))
}
