package config

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Color is a CSS colour string such as "#0498b3".
type Color string

// Palette is either a single colour used for every section or a sequence of
// colours cycled by section index.
type Palette struct {
	colors []Color
	cycle  bool
}

// Single returns a palette that resolves to c for every index.
func Single(c Color) Palette {
	return Palette{colors: []Color{c}}
}

// Sequence returns a palette that resolves index i to cs[i mod len(cs)].
func Sequence(cs ...Color) Palette {
	return Palette{colors: slices.Clone(cs), cycle: true}
}

// At resolves the colour for the zero-based section index i.
// An empty sequence resolves to the empty colour, which surfaces ignore.
func (p Palette) At(i int) Color {
	n := len(p.colors)
	if n == 0 {
		return ""
	}
	if !p.cycle {
		return p.colors[0]
	}
	return p.colors[((i%n)+n)%n]
}

// IsSequence reports whether the palette cycles through several colours.
func (p Palette) IsSequence() bool { return p.cycle }

// Colors returns a copy of the palette's colours.
func (p Palette) Colors() []Color { return slices.Clone(p.colors) }

// IsZero reports whether the palette holds no colour at all.
func (p Palette) IsZero() bool { return len(p.colors) == 0 && !p.cycle }

func (p Palette) String() string {
	if !p.cycle {
		return string(p.At(0))
	}
	return fmt.Sprint(p.colors)
}

// MarshalJSON encodes a single colour as a string and a sequence as an array.
func (p Palette) MarshalJSON() ([]byte, error) {
	if !p.cycle {
		return json.Marshal(string(p.At(0)))
	}
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = string(c)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts either "#fff" or ["#fff", "#000"].
func (p *Palette) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = Single(Color(single))
		return nil
	}
	var seq []string
	if err := json.Unmarshal(data, &seq); err != nil {
		return fmt.Errorf("palette must be a colour string or an array of colour strings")
	}
	*p = fromStrings(seq)
	return nil
}

// UnmarshalTOML accepts either a string or an array of strings.
func (p *Palette) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*p = Single(Color(val))
		return nil
	case []any:
		seq := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("palette entries must be strings, got %T", item)
			}
			seq = append(seq, s)
		}
		*p = fromStrings(seq)
		return nil
	default:
		return fmt.Errorf("palette must be a colour string or an array of colour strings, got %T", v)
	}
}

func fromStrings(seq []string) Palette {
	cs := make([]Color, len(seq))
	for i, s := range seq {
		cs[i] = Color(s)
	}
	return Palette{colors: cs, cycle: true}
}
