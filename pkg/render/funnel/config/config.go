// Package config resolves funnel chart settings into an immutable
// configuration.
//
// A [Settings] record carries only the keys a caller chose to override. Every
// field is nil-able so that an absent key can be told apart from a zero value.
// [Resolve] overlays those keys onto [Defaults] one by one (a shallow merge:
// an overriding palette or slice replaces the default entirely) and returns a
// [Config].
//
// The only mandatory key is Values; a missing or empty Values slice fails with
// an INVALID_CONFIG error before any geometry is computed.
//
//	cfg, err := config.Resolve(config.Settings{
//	    Values: []float64{1000, 600, 250},
//	    Labels: []string{"Visits", "Sign-ups", "Purchases"},
//	})
package config

import (
	"slices"

	"github.com/matzehuels/funnelchart/pkg/errors"
)

// Default values, matching the documented funnel chart options.
const (
	DefaultPPrecision             = 1
	DefaultFont                   = "Helvetica Neue"
	DefaultFontWeight             = "300"
	DefaultMaxFontSize            = 13.0
	DefaultPSectionHeightPercent  = 100.0
	DefaultLabelWidthPercent      = 30.0
	DefaultFunnelReductionPercent = 40.0
	DefaultLabelOffset            = 10.0

	DefaultLabelLineColor    Color = "#eee"
	DefaultLabelFontColor    Color = "#657274"
	DefaultSectionColor      Color = "#0498b3"
	DefaultPSectionColor     Color = "#bfd1d4"
	DefaultSectionFontColor  Color = "#fff"
	DefaultPSectionFontColor Color = "#657274"
)

// Settings holds caller-supplied overrides. Nil fields fall back to defaults.
type Settings struct {
	Values []float64 `json:"values" toml:"values"`
	Labels []string  `json:"labels,omitempty" toml:"labels"`

	DisplayPercentageChange *bool `json:"displayPercentageChange,omitempty" toml:"displayPercentageChange"`
	PPrecision              *int  `json:"pPrecision,omitempty" toml:"pPrecision"`

	LabelLineColor    *Palette `json:"labelLineColor,omitempty" toml:"labelLineColor"`
	LabelFontColor    *Palette `json:"labelFontColor,omitempty" toml:"labelFontColor"`
	SectionColor      *Palette `json:"sectionColor,omitempty" toml:"sectionColor"`
	PSectionColor     *Palette `json:"pSectionColor,omitempty" toml:"pSectionColor"`
	SectionFontColor  *Palette `json:"sectionFontColor,omitempty" toml:"sectionFontColor"`
	PSectionFontColor *Palette `json:"pSectionFontColor,omitempty" toml:"pSectionFontColor"`

	Font        *string     `json:"font,omitempty" toml:"font"`
	FontWeight  *FontWeight `json:"fontWeight,omitempty" toml:"fontWeight"`
	MaxFontSize *float64    `json:"maxFontSize,omitempty" toml:"maxFontSize"`

	PSectionHeightPercent  *float64 `json:"pSectionHeightPercent,omitempty" toml:"pSectionHeightPercent"`
	LabelWidthPercent      *float64 `json:"labelWidthPercent,omitempty" toml:"labelWidthPercent"`
	FunnelReductionPercent *float64 `json:"funnelReductionPercent,omitempty" toml:"funnelReductionPercent"`
	LabelOffset            *float64 `json:"labelOffset,omitempty" toml:"labelOffset"`
}

// Config is a fully resolved chart configuration. It is built once per
// render and never mutated afterwards.
type Config struct {
	Values []float64 `json:"values"`
	Labels []string  `json:"labels,omitempty"`

	DisplayPercentageChange bool `json:"displayPercentageChange"`
	PPrecision              int  `json:"pPrecision"`

	LabelLineColor    Palette `json:"labelLineColor"`
	LabelFontColor    Palette `json:"labelFontColor"`
	SectionColor      Palette `json:"sectionColor"`
	PSectionColor     Palette `json:"pSectionColor"`
	SectionFontColor  Palette `json:"sectionFontColor"`
	PSectionFontColor Palette `json:"pSectionFontColor"`

	Font        string  `json:"font"`
	FontWeight  string  `json:"fontWeight"`
	MaxFontSize float64 `json:"maxFontSize"`

	PSectionHeightPercent  float64 `json:"pSectionHeightPercent"`
	LabelWidthPercent      float64 `json:"labelWidthPercent"`
	FunnelReductionPercent float64 `json:"funnelReductionPercent"`
	LabelOffset            float64 `json:"labelOffset"`
}

// Defaults returns the documented default configuration. Values is empty.
func Defaults() Config {
	return Config{
		DisplayPercentageChange: true,
		PPrecision:              DefaultPPrecision,

		LabelLineColor:    Single(DefaultLabelLineColor),
		LabelFontColor:    Single(DefaultLabelFontColor),
		SectionColor:      Single(DefaultSectionColor),
		PSectionColor:     Single(DefaultPSectionColor),
		SectionFontColor:  Single(DefaultSectionFontColor),
		PSectionFontColor: Single(DefaultPSectionFontColor),

		Font:        DefaultFont,
		FontWeight:  DefaultFontWeight,
		MaxFontSize: DefaultMaxFontSize,

		PSectionHeightPercent:  DefaultPSectionHeightPercent,
		LabelWidthPercent:      DefaultLabelWidthPercent,
		FunnelReductionPercent: DefaultFunnelReductionPercent,
		LabelOffset:            DefaultLabelOffset,
	}
}

// Resolve overlays s onto Defaults. It fails only when Values is missing or
// empty.
func Resolve(s Settings) (Config, error) {
	if len(s.Values) == 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "a values setting must be provided")
	}

	cfg := Defaults()
	cfg.Values = slices.Clone(s.Values)
	cfg.Labels = slices.Clone(s.Labels)

	overlay(&cfg.DisplayPercentageChange, s.DisplayPercentageChange)
	overlay(&cfg.PPrecision, s.PPrecision)

	overlay(&cfg.LabelLineColor, s.LabelLineColor)
	overlay(&cfg.LabelFontColor, s.LabelFontColor)
	overlay(&cfg.SectionColor, s.SectionColor)
	overlay(&cfg.PSectionColor, s.PSectionColor)
	overlay(&cfg.SectionFontColor, s.SectionFontColor)
	overlay(&cfg.PSectionFontColor, s.PSectionFontColor)

	overlay(&cfg.Font, s.Font)
	if s.FontWeight != nil {
		cfg.FontWeight = string(*s.FontWeight)
	}
	overlay(&cfg.MaxFontSize, s.MaxFontSize)

	overlay(&cfg.PSectionHeightPercent, s.PSectionHeightPercent)
	overlay(&cfg.LabelWidthPercent, s.LabelWidthPercent)
	overlay(&cfg.FunnelReductionPercent, s.FunnelReductionPercent)
	overlay(&cfg.LabelOffset, s.LabelOffset)

	return cfg, nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Count returns the number of funnel sections.
func (c Config) Count() int { return len(c.Values) }

// HasLabels reports whether a label column should be reserved.
func (c Config) HasLabels() bool { return len(c.Labels) > 0 }

// Label returns the label for section i, or "" when none was given.
func (c Config) Label(i int) string {
	if i < 0 || i >= len(c.Labels) {
		return ""
	}
	return c.Labels[i]
}

// Ptr returns a pointer to v. It keeps override literals short:
//
//	config.Settings{Values: vals, PPrecision: config.Ptr(2)}
func Ptr[T any](v T) *T { return &v }
