package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flexUint and flexFloat accept a JSON number or a numeric string, so form
// style clients can post "1" or "150.00". null and "" decode to zero.
type flexUint uint

func (f *flexUint) UnmarshalJSON(data []byte) error {
	raw, err := numericText(data)
	if err != nil || raw == "" {
		*f = 0
		return err
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %s", data)
	}
	*f = flexUint(n)
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	raw, err := numericText(data)
	if err != nil || raw == "" {
		*f = 0
		return err
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("invalid number %s", data)
	}
	*f = flexFloat(n)
	return nil
}

func numericText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
