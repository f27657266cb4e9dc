package config

import (
	"encoding/json"
	"testing"
)

func TestPaletteAt(t *testing.T) {
	seq := Sequence("#a", "#b", "#c")
	for i := 0; i < 10; i++ {
		want := []Color{"#a", "#b", "#c"}[i%3]
		if got := seq.At(i); got != want {
			t.Errorf("Sequence.At(%d) = %q, want %q", i, got, want)
		}
	}

	single := Single("#fff")
	for _, i := range []int{0, 1, 7, 1000} {
		if got := single.At(i); got != "#fff" {
			t.Errorf("Single.At(%d) = %q, want #fff", i, got)
		}
	}
}

func TestPaletteEdgeCases(t *testing.T) {
	if got := Sequence().At(3); got != "" {
		t.Errorf("empty Sequence.At() = %q, want empty", got)
	}
	if got := Sequence("#a", "#b").At(-1); got != "#b" {
		t.Errorf("Sequence.At(-1) = %q, want #b", got)
	}
	if !Sequence("#a").IsSequence() || Single("#a").IsSequence() {
		t.Error("IsSequence() mismatch")
	}
	if !(Palette{}).IsZero() || Single("").IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestPaletteJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Color
		seq   bool
	}{
		{"string", `"#fff"`, []Color{"#fff"}, false},
		{"array", `["#111","#222"]`, []Color{"#111", "#222"}, true},
		{"single element array", `["#111"]`, []Color{"#111"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Palette
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if p.IsSequence() != tt.seq {
				t.Errorf("IsSequence() = %v, want %v", p.IsSequence(), tt.seq)
			}
			got := p.Colors()
			if len(got) != len(tt.want) {
				t.Fatalf("Colors() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Colors()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}

			out, err := json.Marshal(p)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(out) != tt.input {
				t.Errorf("Marshal = %s, want %s", out, tt.input)
			}
		})
	}

	var p Palette
	if err := json.Unmarshal([]byte(`42`), &p); err == nil {
		t.Error("Unmarshal(42) should fail")
	}
}

func TestPaletteTOML(t *testing.T) {
	var p Palette
	if err := p.UnmarshalTOML("#abc"); err != nil || p.At(4) != "#abc" {
		t.Errorf("UnmarshalTOML(string) = %v, %v", p, err)
	}
	if err := p.UnmarshalTOML([]any{"#1", "#2"}); err != nil || p.At(3) != "#2" {
		t.Errorf("UnmarshalTOML(array) = %v, %v", p, err)
	}
	if err := p.UnmarshalTOML([]any{"#1", int64(2)}); err == nil {
		t.Error("UnmarshalTOML with non-string entry should fail")
	}
	if err := p.UnmarshalTOML(int64(3)); err == nil {
		t.Error("UnmarshalTOML(int) should fail")
	}
}
