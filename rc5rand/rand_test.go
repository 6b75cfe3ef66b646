package rc5rand

import "testing"

func TestLCGIsDeterministicForFixedSeed(t *testing.T) {
	a := NewLCG(42)
	b := NewLCG(42)

	ga, err := a.Generate(16)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	gb, err := b.Generate(16)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for i := range ga {
		if ga[i] != gb[i] {
			t.Fatalf("same-seed LCGs diverged at byte %d", i)
		}
	}
}

func TestLCGDifferentSeedsDiverge(t *testing.T) {
	a := NewLCG(1)
	b := NewLCG(2)

	ga, _ := a.Generate(16)
	gb, _ := b.Generate(16)

	same := true
	for i := range ga {
		if ga[i] != gb[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different output")
	}
}

func TestLCGGenerateLength(t *testing.T) {
	l := NewLCG(7)
	out, err := l.Generate(8)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(out) != 8 {
		t.Errorf("want 8 bytes, got %d", len(out))
	}
}

func TestLCGAdvancesState(t *testing.T) {
	l := NewLCG(7)
	first, _ := l.Generate(4)
	second, _ := l.Generate(4)

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected successive draws from the same LCG to differ")
	}
}

func TestLCGGenerateRejectsNonMultipleOf4(t *testing.T) {
	l := NewLCG(7)
	if _, err := l.Generate(6); err == nil {
		t.Error("expected error for length not a multiple of 4")
	}
}

func TestCSPRNGGenerateLength(t *testing.T) {
	var c CSPRNG
	out, err := c.Generate(16)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(out) != 16 {
		t.Errorf("want 16 bytes, got %d", len(out))
	}
}

func TestCSPRNGProducesDistinctDraws(t *testing.T) {
	var c CSPRNG
	a, _ := c.Generate(16)
	b, _ := c.Generate(16)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected two independent CSPRNG draws to differ")
	}
}
