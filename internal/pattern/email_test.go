package pattern

import "testing"

func TestEmailBlockSingleChunk(t *testing.T) {
	m, err := NewBlock(Email, "pii detected")
	if err != nil {
		t.Fatal(err)
	}
	d := m.Feed("contact john@example.com now")
	if !d.IsBlock() || d.Reason() != "pii detected" {
		t.Fatalf("expected Block(pii detected), got %+v", d)
	}
}

func TestEmailBlockNoMatch(t *testing.T) {
	m, err := NewBlock(Email, "pii detected")
	if err != nil {
		t.Fatal(err)
	}
	d := m.Feed("no address in this sentence at all")
	if !d.IsAllow() {
		t.Fatalf("expected Allow, got %+v", d)
	}
}

func TestEmailRewriteSingleChunkPlusFlush(t *testing.T) {
	m, err := NewRewrite(Email, "[EMAIL]")
	if err != nil {
		t.Fatal(err)
	}
	d := m.Feed("Contact me at john@example.com for details")
	if !d.IsRewrite() {
		t.Fatalf("expected Rewrite, got %+v", d)
	}
	out := d.Replacement()
	flushed := m.Flush()
	if flushed.IsRewrite() {
		out += flushed.Replacement()
	}
	want := "Contact me at [EMAIL] for details"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEmailRewriteAcrossChunkBoundaries(t *testing.T) {
	m, err := NewRewrite(Email, "[EMAIL]")
	if err != nil {
		t.Fatal(err)
	}
	chunks := []string{"Contact ", "me at ", "john@exa", "mple.com", " for details"}
	out := ""
	for _, c := range chunks {
		d := m.Feed(c)
		if d.IsRewrite() {
			out += d.Replacement()
		} else {
			out += c
		}
	}
	flushed := m.Flush()
	if flushed.IsRewrite() {
		out += flushed.Replacement()
	}
	want := "Contact me at [EMAIL] for details"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEmailTwoMatchesInOneChunk(t *testing.T) {
	m, err := NewRewrite(Email, "[EMAIL]")
	if err != nil {
		t.Fatal(err)
	}
	d := m.Feed("alice@example.com and bob@example.org are both here")
	if !d.IsRewrite() {
		t.Fatalf("expected Rewrite, got %+v", d)
	}
	out := d.Replacement()
	if flushed := m.Flush(); flushed.IsRewrite() {
		out += flushed.Replacement()
	}
	want := "[EMAIL] and [EMAIL] are both here"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEmailRejectsInvalidTLD(t *testing.T) {
	m, err := NewBlock(Email, "pii")
	if err != nil {
		t.Fatal(err)
	}
	d := m.Feed("weird@example.c and more text follows")
	if !d.IsAllow() {
		t.Fatalf("expected Allow (1-char TLD is invalid), got %+v", d)
	}
}

func TestEmailLatchesAfterBlock(t *testing.T) {
	m, err := NewBlock(Email, "pii")
	if err != nil {
		t.Fatal(err)
	}
	// "a@b.co" alone ends exactly at a would-be TLD boundary, so the first
	// Feed is a pending candidate (the domain could still grow); the space
	// in the next chunk resolves it into a match.
	first := m.Feed("a@b.co")
	if !first.IsAllow() {
		t.Fatalf("expected Allow while the domain is still a pending candidate, got %+v", first)
	}
	blocked := m.Feed(" more text follows")
	if !blocked.IsBlock() || blocked.Reason() != "pii" {
		t.Fatalf("expected Block(pii) once the TLD boundary resolves, got %+v", blocked)
	}
	replay := m.Feed("totally different text")
	if !replay.IsBlock() || replay.Reason() != "pii" {
		t.Fatalf("expected latched Block replay, got %+v", replay)
	}
}
