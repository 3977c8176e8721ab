package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Price is a tagged value: a line price arrives either as a raw number or as
// a formatted currency string ("₹1,234.50") depending on the caller.
// Amount is the single normalization point; it never fails, a malformed
// price contributes 0.
type Price struct {
	numeric   float64
	formatted string
	isNumeric bool
}

func NumericPrice(v float64) Price {
	return Price{numeric: v, isNumeric: true}
}

func FormattedPrice(s string) Price {
	return Price{formatted: s}
}

// Amount normalizes the price to a plain decimal amount. Formatted strings
// are reduced to their `[0-9.]` characters and the longest parseable prefix
// is taken, so "₹1,234.50" yields 1234.50 and "abc" yields 0.
func (p Price) Amount() float64 {
	if p.isNumeric {
		return p.numeric
	}

	return parseAmount(p.formatted)
}

func parseAmount(s string) float64 {

	var b strings.Builder

	dotSeen := false

scan:
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if dotSeen {
				// a second dot ends the numeric prefix
				break scan
			}

			dotSeen = true

			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}

	return v
}

// MarshalJSON preserves the original representation so a persisted cart
// re-serializes byte-for-byte to what was stored.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.isNumeric {
		return json.Marshal(p.numeric)
	}

	return json.Marshal(p.formatted)
}

func (p *Price) UnmarshalJSON(data []byte) error {

	var num float64

	if err := json.Unmarshal(data, &num); err == nil {
		*p = NumericPrice(num)

		return nil
	}

	var str string

	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	*p = FormattedPrice(str)

	return nil
}
