package dataset

import "testing"

func TestStripArtifactLines(t *testing.T) {
	in := "1,,,\nJohn,25,6.5\n2,,\n"
	want := "\nJohn,25,6.5\n\n"
	got := StripArtifactLines(in)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStripArtifactLinesIdempotent(t *testing.T) {
	in := "10,,,,\nkeep,1,2\n"
	once := StripArtifactLines(in)
	twice := StripArtifactLines(once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestStripArtifactLinesLeavesRealRows(t *testing.T) {
	in := "1,Bill Russell,1956\n2,,,\n3,Bob Cousy,1950\n"
	got := StripArtifactLines(in)
	want := "1,Bill Russell,1956\n\n3,Bob Cousy,1950\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
