package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexQty accepts the quantity formats the client sends: a JSON number, a
// numeric string, or the display placeholder for an unknown quantity,
// which counts as zero.
type flexQty int

func (q *flexQty) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*q = flexQty(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid quantity: %s", string(data))
	}

	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Placeholder or otherwise non-numeric display value.
		*q = 0
		return nil
	}
	*q = flexQty(f)
	return nil
}
