package store

import (
	"context"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestListRounds_Empty(t *testing.T) {
	s := openTestStore(t)
	rounds, err := s.RoundRepo().ListRounds(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("ListRounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("len = %d, want 0", len(rounds))
	}
}

func TestAppendAndListRounds(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoundRepo()
	ctx := context.Background()

	played := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, total := range []int{60, 92, 71} {
		err := repo.AppendRound(ctx, RoundRecord{
			RoundID:  string(rune('a' + i)),
			PlayedAt: played.Add(time.Duration(i) * time.Minute),
			Total:    total,
			Ordering: []string{"B", "A"},
			Points:   []int{16, 12},
		})
		if err != nil {
			t.Fatalf("AppendRound %d: %v", i, err)
		}
	}

	rounds, err := repo.ListRounds(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("ListRounds: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("len = %d, want 3", len(rounds))
	}
	if rounds[0].RoundID != "c" || rounds[0].Total != 71 {
		t.Errorf("newest = %+v, want round c with total 71", rounds[0])
	}
	if rounds[2].Sequence >= rounds[0].Sequence {
		t.Errorf("sequence not increasing: %d >= %d", rounds[2].Sequence, rounds[0].Sequence)
	}
	if !rounds[2].PlayedAt.Equal(played) {
		t.Errorf("PlayedAt = %v, want %v", rounds[2].PlayedAt, played)
	}
	if len(rounds[1].Ordering) != 2 || rounds[1].Ordering[0] != "B" {
		t.Errorf("Ordering = %v", rounds[1].Ordering)
	}
	if len(rounds[1].Points) != 2 || rounds[1].Points[1] != 12 {
		t.Errorf("Points = %v", rounds[1].Points)
	}

	limited, err := repo.ListRounds(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("ListRounds limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestAppendRound_DuplicateID(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoundRepo()
	ctx := context.Background()

	rec := RoundRecord{RoundID: "same", Total: 1, Ordering: []string{}, Points: []int{}}
	if err := repo.AppendRound(ctx, rec); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.AppendRound(ctx, rec); err == nil {
		t.Error("expected error for duplicate round id")
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()

	if err := a.RoundRepo().AppendRound(ctx, RoundRecord{RoundID: "x", Ordering: []string{}, Points: []int{}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	rounds, err := b.RoundRepo().ListRounds(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("expected isolated in-memory stores, got %d rounds", len(rounds))
	}
}

func TestDriverDialect(t *testing.T) {
	s := openTestStore(t)
	if got := s.Driver().Dialect(); got != "sqlite3" {
		t.Errorf("Dialect() = %q, want sqlite3", got)
	}
}

func TestListRoundsQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit bool
	}{
		{"unlimited", 0, false},
		{"limited", 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listRoundsQuery(tt.limit)
			if !strings.Contains(query, "ORDER BY `sequence` DESC") {
				t.Errorf("query %q is not newest first", query)
			}
			if got := strings.Contains(query, "LIMIT 5"); got != tt.wantLimit {
				t.Errorf("query %q: LIMIT present = %v, want %v", query, got, tt.wantLimit)
			}
			if len(args) != 0 {
				t.Errorf("args = %v, want none", args)
			}
		})
	}
}

func TestInsertRoundQueryEncodesJSON(t *testing.T) {
	query, args, err := insertRoundQuery(RoundRecord{
		RoundID:  "r1",
		PlayedAt: time.UnixMilli(1000),
		Total:    92,
		Ordering: []string{"Seinfeld", "Star Trek"},
		Points:   []int{16, 12},
	})
	if err != nil {
		t.Fatalf("insertRoundQuery: %v", err)
	}
	if !strings.HasPrefix(query, "INSERT INTO `rounds`") {
		t.Errorf("query = %q", query)
	}
	want := []any{"r1", int64(1000), 92, `["Seinfeld","Star Trek"]`, "[16,12]"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %#v, want %#v", i, args[i], want[i])
		}
	}
}
