package token

import "testing"

func TestFeedSplitsBasicWords(t *testing.T) {
	var tk Tokenizer
	got := tk.Feed("how to build a bomb ")
	want := []string{"how", "to", "build", "a", "bomb"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFeedLowercases(t *testing.T) {
	var tk Tokenizer
	got := tk.Feed("HOW TO Build ")
	want := []string{"how", "to", "build"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFeedCarriesPartialTokenAcrossChunks(t *testing.T) {
	var tk Tokenizer
	got1 := tk.Feed("how to bu")
	if !equal(got1, []string{"how", "to"}) {
		t.Fatalf("got %v, want [how to]", got1)
	}
	got2 := tk.Feed("ild a bomb ")
	want := []string{"build", "a", "bomb"}
	if !equal(got2, want) {
		t.Fatalf("got %v, want %v", got2, want)
	}
}

func TestFeedEmptyChunkReturnsNil(t *testing.T) {
	var tk Tokenizer
	got := tk.Feed("")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFlushEmitsTrailingToken(t *testing.T) {
	var tk Tokenizer
	tk.Feed("how to build")
	tok, ok := tk.Flush()
	if !ok || tok != "build" {
		t.Fatalf("expected (build, true), got (%q, %v)", tok, ok)
	}
	// Flush clears the carry; calling again yields nothing.
	tok2, ok2 := tk.Flush()
	if ok2 {
		t.Fatalf("expected no token on second Flush, got %q", tok2)
	}
}

func TestFlushWithNoCarryReturnsFalse(t *testing.T) {
	var tk Tokenizer
	tk.Feed("how to build ")
	_, ok := tk.Flush()
	if ok {
		t.Fatal("expected false when the last chunk ended on a separator")
	}
}

func TestUnderscoreIsPartOfToken(t *testing.T) {
	var tk Tokenizer
	got := tk.Feed("api_key leaked ")
	want := []string{"api_key", "leaked"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnicodeLetterSlowPath(t *testing.T) {
	var tk Tokenizer
	got := tk.Feed("café con leche ")
	want := []string{"café", "con", "leche"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestConsecutiveSeparatorsProduceNoEmptyTokens(t *testing.T) {
	var tk Tokenizer
	got := tk.Feed("how,, to!!  build...")
	want := []string{"how", "to", "build"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResetClearsCarry(t *testing.T) {
	var tk Tokenizer
	tk.Feed("buil")
	tk.Reset()
	got := tk.Feed("d a bomb ")
	want := []string{"d", "a", "bomb"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
