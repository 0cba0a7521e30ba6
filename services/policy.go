package services

import (
	"math"

	"github.com/Bapiggott/BigBoy-sub001/models"
)

// Policy holds every pricing and loyalty constant the order workflow
// depends on. It is immutable once constructed; tests build their own
// instead of touching global state.
type Policy struct {
	TaxRate         float64
	PointsPerDollar int

	// RedeemPointsPerDollar points buy $1 of discount.
	RedeemPointsPerDollar int

	BasePrepMinutes    int
	PrepMinutesPerItem int
	PrepMinutesCap     int

	SilverThreshold int
	GoldThreshold   int

	// RejectUnknownModifiers makes modifier selections outside the
	// item's groups a hard INVALID_REQUEST instead of being ignored.
	RejectUnknownModifiers bool

	// ClampBalanceOnCancel keeps cancellation reversal from driving
	// ledger balances below zero.
	ClampBalanceOnCancel bool
}

func DefaultPolicy() Policy {
	return Policy{
		TaxRate:               0.06,
		PointsPerDollar:       10,
		RedeemPointsPerDollar: 100,
		BasePrepMinutes:       15,
		PrepMinutesPerItem:    2,
		PrepMinutesCap:        20,
		SilverThreshold:       1000,
		GoldThreshold:         5000,
	}
}

var tierRank = map[models.LoyaltyTier]int{
	models.TierBronze: 0,
	models.TierSilver: 1,
	models.TierGold:   2,
}

// TierAtLeast reports whether tier meets the given minimum.
func TierAtLeast(tier, min models.LoyaltyTier) bool {
	return tierRank[tier] >= tierRank[min]
}

// NextTierThreshold returns the lifetime-point threshold of the tier
// above t. GOLD has no next tier.
func (p Policy) NextTierThreshold(t models.LoyaltyTier) (int, bool) {
	switch t {
	case models.TierBronze:
		return p.SilverThreshold, true
	case models.TierSilver:
		return p.GoldThreshold, true
	}
	return 0, false
}

// PointsToNextTier is a display-only derived quantity: threshold minus
// lifetime points, clamped at zero. Zero for GOLD.
func (p Policy) PointsToNextTier(t models.LoyaltyTier, lifetimePoints int) int {
	threshold, ok := p.NextTierThreshold(t)
	if !ok {
		return 0
	}
	remaining := threshold - lifetimePoints
	if remaining < 0 {
		return 0
	}
	return remaining
}

// roundCents rounds to 2 decimal places.
func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}

// cents converts a cent-quantized dollar amount to integer cents.
func cents(x float64) int {
	return int(math.Round(x * 100))
}
