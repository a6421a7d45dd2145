package guarderr

import (
	"errors"
	"testing"
)

func TestNewWrapsWithComponent(t *testing.T) {
	err := New("sequence", ErrEmptyTokens)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	want := "streamguard: sequence: sequence rule requires at least one token"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestNewReturnsNilForNilErr(t *testing.T) {
	if err := New("sequence", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestUnwrapReachesSentinel(t *testing.T) {
	err := New("pattern", ErrInvalidCarryBound)
	if !errors.Is(err, ErrInvalidCarryBound) {
		t.Fatalf("expected errors.Is to find ErrInvalidCarryBound, got %v", err)
	}
}

func TestConfigErrorComponentField(t *testing.T) {
	err := New("engine", ErrNegativeThreshold)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected errors.As to find *ConfigError, got %v", err)
	}
	if ce.Component != "engine" {
		t.Fatalf("got component %q, want %q", ce.Component, "engine")
	}
}
