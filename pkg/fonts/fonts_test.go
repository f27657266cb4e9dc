package fonts

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestForWeight(t *testing.T) {
	tests := map[string]Weight{
		"":        Regular,
		"300":     Regular,
		"normal":  Regular,
		"400":     Regular,
		"500":     Medium,
		"600":     Bold,
		"900":     Bold,
		"bold":    Bold,
		" Bold ":  Bold,
		"lighter": Regular,
		"heavy":   Regular,
	}
	for in, want := range tests {
		if got := ForWeight(in); got != want {
			t.Errorf("ForWeight(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTTF(t *testing.T) {
	for _, w := range []Weight{Regular, Medium, Bold} {
		data := TTF(w)
		if len(data) < 4 {
			t.Fatalf("TTF(%v) is empty", w)
		}
		// TrueType outlines start with the 0x00010000 sfnt version
		if !bytes.Equal(data[:4], []byte{0, 1, 0, 0}) {
			t.Errorf("TTF(%v) has header %x", w, data[:4])
		}
	}
	if bytes.Equal(TTF(Regular), TTF(Bold)) || bytes.Equal(TTF(Regular), TTF(Medium)) {
		t.Error("weights share the same face")
	}
}

func TestTTFBase64(t *testing.T) {
	enc := TTFBase64(Bold)
	dec, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(dec, TTF(Bold)) {
		t.Error("TTFBase64(Bold) does not round-trip")
	}
	if TTFBase64(Weight(42)) != TTFBase64(Regular) {
		t.Error("out-of-range weight should fall back to Regular")
	}
}
