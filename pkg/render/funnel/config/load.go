package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/funnelchart/pkg/errors"
)

// File formats accepted by Decode.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Load reads chart settings from a .toml or .json file.
func Load(path string) (Settings, error) {
	if err := errors.ValidateChartFilename(path); err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s not found", path)
	}
	if err != nil {
		return Settings{}, err
	}
	return Decode(data, FormatFromPath(path))
}

// FormatFromPath returns the settings format implied by the file extension.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Decode parses chart settings encoded as TOML or JSON. Unknown keys are
// ignored.
func Decode(data []byte, format string) (Settings, error) {
	var s Settings
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&s); err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json settings")
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml settings")
		}
	default:
		return Settings{}, errors.New(errors.ErrCodeInvalidFormat, "unknown settings format %q", format)
	}
	return s, nil
}
