package pathenc

import "testing"

func TestEncodePlain(t *testing.T) {
	got := Encode("/src/a.txt")
	want := "'/src/a.txt'"
	if got != want {
		t.Errorf("Encode plain = %q, want %q", got, want)
	}
}

func TestEncodeInvalidUTF8(t *testing.T) {
	got := Encode(string([]byte{0x66, 0x6f, 0x80, 0x6f}))
	want := `'fo'$'\200''o'`
	if got != want {
		t.Errorf("Encode invalid utf-8 = %q, want %q", got, want)
	}
}

func TestEncodeMultibyte(t *testing.T) {
	// sparkle heart, U+1F496
	got := Encode(string([]byte{240, 159, 146, 150}))
	want := `''$'\360\237\222\226'`
	if got != want {
		t.Errorf("Encode multibyte = %q, want %q", got, want)
	}
}

func TestEncodeBoundaryBytes(t *testing.T) {
	got := Encode(string([]byte{1, 31, 32, 0x7f, 0x7e}))
	want := `''$'\001\037'' '$'\177''~'`
	if got != want {
		t.Errorf("Encode boundary bytes = %q, want %q", got, want)
	}
}

func TestEncodeSingleQuote(t *testing.T) {
	got := Encode("a'b")
	want := `'a'\''b'`
	if got != want {
		t.Errorf("Encode quote = %q, want %q", got, want)
	}
}

func TestEncodeQuoteAfterEscape(t *testing.T) {
	got := Encode(string([]byte{0x01, '\''}))
	want := `''$'\001'''\'''`
	if got != want {
		t.Errorf("Encode quote after escape = %q, want %q", got, want)
	}
}
