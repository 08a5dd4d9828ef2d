package storage

import (
	"path/filepath"
	"testing"

	"hoopfame/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReplaceInductees(t *testing.T) {
	db := openTestDB(t)

	first := []internal.InducteeRecord{
		{Name: "Bill Russell", Category: "Player"},
		{Name: "Red Auerbach", Category: "Coach"},
	}
	if err := db.ReplaceInductees(first, "csv"); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListInductees()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}
	// Ordered by name.
	if got[0].Name != "Bill Russell" || got[1].Name != "Red Auerbach" {
		t.Fatalf("order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[0].Category != "Player" {
		t.Fatalf("category=%q", got[0].Category)
	}

	// A later snapshot replaces, never appends.
	second := []internal.InducteeRecord{{Name: "Bob Cousy", Category: "Player"}}
	if err := db.ReplaceInductees(second, "scrape"); err != nil {
		t.Fatal(err)
	}
	got, err = db.ListInductees()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Bob Cousy" {
		t.Fatalf("snapshot not replaced: %+v", got)
	}
}

func TestInsertRun(t *testing.T) {
	db := openTestDB(t)

	counts := map[string]int{"players": 3921, "stats": 24691}
	timings := map[string]float64{"totalMs": 412.5}
	if err := db.InsertRun("abc123", counts, timings); err != nil {
		t.Fatal(err)
	}
	if err := db.InsertRun("def456", counts, timings); err != nil {
		t.Fatal(err)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	db := openTestDB(t)

	missing, err := db.GetMetadata("lastSource")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unset key, got %q", *missing)
	}

	if err := db.SetMetadata("lastSource", "csv"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata("lastSource", "scrape"); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetMetadata("lastSource")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != "scrape" {
		t.Fatalf("got=%v", got)
	}
}
