package main

import "testing"

func TestFirstEnv(t *testing.T) {
	t.Setenv("NANOAGENT_TEST_A", "")
	t.Setenv("NANOAGENT_TEST_B", "  value  ")

	if got := firstEnv("NANOAGENT_TEST_A", "NANOAGENT_TEST_B"); got != "value" {
		t.Fatalf("expected fallback value, got %q", got)
	}
	if got := firstEnv("NANOAGENT_TEST_A"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
