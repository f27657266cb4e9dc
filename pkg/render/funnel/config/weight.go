package config

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FontWeight is a CSS font weight ("300", "bold", ...). Chart files may give
// it either as a string or as a number.
type FontWeight string

// UnmarshalJSON accepts "300" as well as 300.
func (w *FontWeight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = FontWeight(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fontWeight must be a string or a number")
	}
	*w = FontWeight(n.String())
	return nil
}

// UnmarshalTOML accepts "300" as well as 300.
func (w *FontWeight) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*w = FontWeight(val)
	case int64:
		*w = FontWeight(strconv.FormatInt(val, 10))
	case float64:
		*w = FontWeight(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return fmt.Errorf("fontWeight must be a string or a number, got %T", v)
	}
	return nil
}
