package pricing

import "strings"

// DefaultFare is charged when no premium route keyword matches (paise).
const DefaultFare int64 = 50000

type rule struct {
	keyword string
	amount  int64
}

// Premium routes out of the Pasighat base. First match wins.
var rules = []rule{
	{"tawang", 1200000},
	{"mechuka", 850000},
	{"aalo", 650000},
	{"along", 650000},
	{"dibrugarh", 800000},
}

// Resolve maps a drop destination to a fare in integer minor units.
// Matching is case-insensitive and substring-based; an empty or unknown
// destination falls back to DefaultFare.
func Resolve(destination string) int64 {
	dest := strings.ToLower(destination)
	for _, r := range rules {
		if strings.Contains(dest, r.keyword) {
			return r.amount
		}
	}
	return DefaultFare
}
