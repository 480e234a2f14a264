package db

import (
	"context"
	"database/sql"
	"path"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/yumyai/homoindex/pkg/handler/request"
)

func mockStatsDB(t *testing.T) *LookupStatsDB {
	t.Helper()

	raw, err := sql.Open("sqlite", path.Join(t.TempDir(), "lookup_stats.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	sdb, err := NewLookupStatsDB(raw)
	if err != nil {
		t.Fatalf("Failed to init stats db: %v", err)
	}
	t.Cleanup(func() { sdb.Close() })
	return sdb
}

func TestRecordUpserts(t *testing.T) {
	sdb := mockStatsDB(t)
	ctx := context.TODO()

	if err := sdb.Record(ctx, "Burkholderia", "g1", OutcomeFound, "OG0001"); err != nil {
		t.Fatal(err)
	}
	if err := sdb.Record(ctx, "Burkholderia", "g1", OutcomeFound, "OG0001"); err != nil {
		t.Fatal(err)
	}
	if err := sdb.Record(ctx, "Burkholderia", "nope", OutcomeNotFound, ""); err != nil {
		t.Fatal(err)
	}

	stats, err := sdb.Top(ctx, request.StatsOrderHits, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2", len(stats))
	}

	// Repeated lookup rises to the top.
	if stats[0].GeneID != "g1" || stats[0].Hits != 2 {
		t.Errorf("top row = %+v, want g1 with 2 hits", stats[0])
	}
	if stats[0].OrthogroupID != "OG0001" {
		t.Errorf("orthogroup_id = %q, want OG0001", stats[0].OrthogroupID)
	}
	if stats[1].Outcome != OutcomeNotFound {
		t.Errorf("second row outcome = %q, want %q", stats[1].Outcome, OutcomeNotFound)
	}
	if stats[0].LastSeen == "" {
		t.Error("last_seen should be set")
	}
}

func TestTopLimitAndOrder(t *testing.T) {
	sdb := mockStatsDB(t)
	ctx := context.TODO()

	for _, gene := range []string{"a", "b", "c"} {
		if err := sdb.Record(ctx, "Burkholderia", gene, OutcomeFound, "OG0000"); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := sdb.Top(ctx, request.StatsOrderHits, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Errorf("limit ignored, got %d rows", len(stats))
	}

	// All hits equal, falls back to gene_id order.
	if stats[0].GeneID != "a" {
		t.Errorf("tie break by gene_id, got %s first", stats[0].GeneID)
	}

	recent, err := sdb.Top(ctx, request.StatsOrderRecent, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 3 {
		t.Errorf("got %d rows, want 3", len(recent))
	}
}

func TestCountLookups(t *testing.T) {
	sdb := mockStatsDB(t)
	ctx := context.TODO()

	total, err := sdb.CountLookups(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("empty db total = %d, want 0", total)
	}

	for i := 0; i < 3; i++ {
		if err := sdb.Record(ctx, "Burkholderia", "g1", OutcomeFound, "OG0001"); err != nil {
			t.Fatal(err)
		}
	}
	if err := sdb.Record(ctx, "Burkholderia", "g2", OutcomeNotFound, ""); err != nil {
		t.Fatal(err)
	}

	total, err = sdb.CountLookups(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}
