package entity

import "fmt"

// Tier is the backup priority classification. Each tier gets its own vault,
// plan and selection with independent schedule and retention settings.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func Tiers() []Tier {
	return []Tier{TierHigh, TierMedium, TierLow}
}

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierHigh, TierMedium, TierLow:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown tier %q, expected one of high, medium, low", s)
}
