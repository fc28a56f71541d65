package runecacher

import (
	"testing"
)

func TestStringBasicCacheFirstChar(t *testing.T) {
	rc := NewFromString("test")
	if want, got := 't', rc.RuneAt(0); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestStringPrimesCache(t *testing.T) {
	rc := NewFromString("abcdefghijklmnop")

	if want, got := cachePrimeSize, len(rc.runes); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}

	if want, got := 'm', rc.RuneAt(12); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := 13, len(rc.runes); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestStringMultibyte(t *testing.T) {
	rc := NewFromString("héllo wörld")

	if want, got := 11, rc.Len(); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := 'é', rc.RuneAt(1); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := "wörld", string(rc.CachedRunesFromTo(6, 11)); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestHasRuneAtAndEnd(t *testing.T) {
	for _, rc := range []*RuneCacher{NewFromString("abc"), NewFromRunes([]rune("abc"))} {
		if !rc.HasRuneAt(2) {
			t.Fatal("expected rune at 2")
		}
		if rc.HasRuneAt(3) {
			t.Fatal("unexpected rune at 3")
		}
		if rc.HasRuneAt(-1) {
			t.Fatal("unexpected rune at -1")
		}
		if !rc.IsEnd(3) {
			t.Fatal("expected 3 to be the end")
		}
		if rc.IsEnd(2) || rc.IsEnd(4) {
			t.Fatal("only 3 is the end")
		}
	}
}

func TestEmptyInput(t *testing.T) {
	rc := NewFromString("")
	if rc.HasRuneAt(0) {
		t.Fatal("empty input has no runes")
	}
	if !rc.IsEnd(0) {
		t.Fatal("0 is the end of empty input")
	}
	if want, got := 0, rc.Len(); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	if want, got := "xyz", NewFromRunes([]rune("xyz")).String(); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := "xyz", NewFromString("xyz").String(); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}
