package errors

import (
	"math"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"typical width", 800, false},
		{"zero", 0, false},
		{"fractional", 299.5, false},
		{"upper bound", maxDimension, false},

		{"negative", -1, true},
		{"too large", maxDimension + 1, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDimension)
			}
		})
	}
}

func TestValidateChartFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"toml", "signup.toml", false},
		{"json", "signup.json", false},
		{"upper case extension", "SIGNUP.TOML", false},
		{"nested path", "charts/q3/signup.toml", false},

		{"empty", "", true},
		{"no extension", "signup", true},
		{"yaml", "signup.yaml", true},
		{"control char", "sign\x01up.toml", true},
		{"newline", "sign\nup.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
