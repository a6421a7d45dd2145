package guardcore

import "testing"

func TestAllowDecisionShape(t *testing.T) {
	d := Allow()
	if !d.IsAllow() || d.IsBlock() || d.IsRewrite() {
		t.Fatalf("expected pure Allow, got %+v", d)
	}
	if d.Reason() != "" || d.Replacement() != "" || d.ScoreDelta() != 0 {
		t.Fatalf("expected zero-value fields on Allow, got %+v", d)
	}
}

func TestScoredAllowCarriesDelta(t *testing.T) {
	d := ScoredAllow(25)
	if !d.IsAllow() {
		t.Fatalf("expected Allow, got %+v", d)
	}
	if d.ScoreDelta() != 25 {
		t.Fatalf("got delta %d, want 25", d.ScoreDelta())
	}
}

func TestBlockDecisionShape(t *testing.T) {
	d := Block("pii detected")
	if !d.IsBlock() || d.IsAllow() || d.IsRewrite() {
		t.Fatalf("expected pure Block, got %+v", d)
	}
	if d.Reason() != "pii detected" {
		t.Fatalf("got reason %q, want %q", d.Reason(), "pii detected")
	}
	if d.Replacement() != "" {
		t.Fatalf("expected empty Replacement on Block, got %q", d.Replacement())
	}
}

func TestRewriteDecisionShape(t *testing.T) {
	d := Rewrite("[EMAIL]")
	if !d.IsRewrite() || d.IsAllow() || d.IsBlock() {
		t.Fatalf("expected pure Rewrite, got %+v", d)
	}
	if d.Replacement() != "[EMAIL]" {
		t.Fatalf("got replacement %q, want %q", d.Replacement(), "[EMAIL]")
	}
	if d.Reason() != "" {
		t.Fatalf("expected empty Reason on Rewrite, got %q", d.Reason())
	}
}
