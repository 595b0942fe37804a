// Package normalize maps raw third-party search payloads into the canonical
// domain model. Provider shapes are outside our control, so every field is
// optional and malformed values degrade to documented defaults instead of
// failing the request.
package normalize

import (
	"encoding/json"
	"math/rand"
	"strconv"
)

// Currency applied when the provider gives none. The upstream subscriptions
// are pinned to NGN pricing.
const defaultCurrency = "NGN"

// Normalizer holds the random source used to synthesize flight numbers. Seed
// it in tests to make the output deterministic.
type Normalizer struct {
	rand *rand.Rand
}

func New(rand *rand.Rand) *Normalizer {
	return &Normalizer{rand: rand}
}

// FlexString decodes from a JSON string or number. Providers flip between
// the two for ids.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case string:
		*s = FlexString(val)
	case float64:
		*s = FlexString(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		// null or an unexpected shape: leave the zero value
	}

	return nil
}

// FlexFloat decodes from a JSON number or numeric string. An unparseable
// value degrades to zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case float64:
		*f = FlexFloat(val)
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			*f = 0

			return nil
		}

		*f = FlexFloat(parsed)
	default:
		*f = 0
	}

	return nil
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}

	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}

	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}

	return *v
}
