package term

import "testing"

func TestSearchFindsCaseInsensitiveMatches(t *testing.T) {
	term := New(20, 3)
	term.Feed([]byte("hello world\r\nGoodbye\r\nHELLO again"))

	matches := term.Search("hello")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(matches), matches)
	}
}

func TestSearchEmptyQueryReturnsNil(t *testing.T) {
	term := New(20, 3)
	term.Feed([]byte("hello"))
	if matches := term.Search(""); matches != nil {
		t.Errorf("expected nil for empty query, got %v", matches)
	}
}

func TestSelectedTextSingleLine(t *testing.T) {
	term := New(20, 3)
	term.Feed([]byte("hello world"))

	got := term.SelectedText(0, 0, 4, 0)
	if got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestSelectedTextNormalizesReversedEndpoints(t *testing.T) {
	term := New(20, 3)
	term.Feed([]byte("hello world"))

	got := term.SelectedText(4, 0, 0, 0)
	if got != "hello" {
		t.Errorf("expected normalized selection %q, got %q", "hello", got)
	}
}

func TestSelectedTextMultiLine(t *testing.T) {
	term := New(10, 3)
	term.Feed([]byte("first\r\nsecond"))

	got := term.SelectedText(0, 0, 5, 1)
	if got != "first\nsecond" {
		t.Errorf("expected %q, got %q", "first\nsecond", got)
	}
}
