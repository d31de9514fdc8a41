package utils

import (
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	zipRegex   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidZIP accepts 5-digit US ZIP codes with an optional -XXXX
// extension.
func IsValidZIP(zip string) bool {
	return zipRegex.MatchString(zip)
}

// IsValidCalculatorInput rejects negative prices and distances at the
// HTTP boundary. Efficiencies may be zero; the cost engine treats
// non-positive efficiency as a zero-cost convention.
func IsValidCalculatorInput(prices []float64, baseDistance float64) bool {
	for _, p := range prices {
		if p < 0 {
			return false
		}
	}
	return baseDistance >= 0
}
