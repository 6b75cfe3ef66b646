package rc5pad

import "testing"

func TestPad(t *testing.T) {
	const data = "YELLOW SUBMARINE"

	// pad "YELLOW SUBMARINE" (16 bytes) to 20 bytes
	got := Pad([]byte(data), 20)

	const want = "YELLOW SUBMARINE\x04\x04\x04\x04"
	gotStr := string(got)
	if gotStr != want {
		t.Errorf("want: %q\ngot: %q\n", want, gotStr)
	}
}

func TestPadFullExtraBlock(t *testing.T) {
	// When the input is already a multiple of blockSize, Pad adds a full
	// extra block rather than leaving the data unpadded.
	data := []byte("YELLOW SUBMARINE") // exactly 16 bytes

	got := Pad(data, 16)
	if len(got) != 32 {
		t.Fatalf("want length 32, got %d", len(got))
	}
	for _, b := range got[16:] {
		if b != 16 {
			t.Errorf("want padding byte 0x10, got %#x", b)
		}
	}
}

func TestStrip(t *testing.T) {
	const data = "YELLOW SUBMARINE"

	padded := Pad([]byte(data), 20)

	got, err := Strip(padded, 20)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	gotStr := string(got)
	if gotStr != data {
		t.Errorf("want: %q\ngot: %q\n", data, gotStr)
	}
}

func TestStripRejectsMalformedPadding(t *testing.T) {
	t.Run("ZeroLength", func(t *testing.T) {
		bad := append([]byte("YELLOW SUBMARINE"), 0x00)
		if _, err := Strip(bad, 16); err == nil {
			t.Fatal("expected error for zero-length padding marker")
		}
	})

	t.Run("OversizedMarker", func(t *testing.T) {
		bad := append([]byte("YELLOW SUBMARINE"), 0xFF)
		if _, err := Strip(bad, 16); err == nil {
			t.Fatal("expected error for padding marker larger than block size")
		}
	})

	t.Run("InconsistentBytes", func(t *testing.T) {
		bad := []byte("YELLOW SUBMARINE\x04\x04\x04\x05")
		if _, err := Strip(bad, 16); err == nil {
			t.Fatal("expected error for non-uniform padding bytes")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := Strip(nil, 16); err == nil {
			t.Fatal("expected error for empty input")
		}
	})
}
