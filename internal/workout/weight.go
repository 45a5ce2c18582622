package workout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ytget/workout/internal/model"
)

// plain decimal: digits with at most one separator, no sign, exponent or hex
var weightPattern = regexp.MustCompile(`^(\d+[.,]?\d*|[.,]\d+)$`)

// ParseWeight parses text typed into a weight entry.
// A decimal comma is accepted since many locales' decimal keypads emit one.
func ParseWeight(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidWeight)
	}
	if !weightPattern.MatchString(cleaned) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, text)
	}
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	weight, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, text)
	}
	if !model.IsValidWeight(weight) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, text)
	}
	return weight, nil
}

// FormatWeight renders a weight without trailing zeros, e.g. 20 -> "20", 22.5 -> "22.5"
func FormatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}
