package models

// Per-pair service rates. Orders of BulkThreshold pairs or more are charged
// the bulk rate on every pair.
const (
	StandardRate  = 2.00
	BulkThreshold = 3
	BulkRate      = 2.50
)

// Membership plan prices.
const (
	PriceMonthlyBasic     = 35.00
	PriceMonthlyUnlimited = 50.00
	PriceVVIPLifetime     = 450.00 // one-time
)

// MembershipPlan describes a purchasable plan as shown on the memberships
// panel.
type MembershipPlan struct {
	Tier     MembershipTier `json:"tier"`
	Price    float64        `json:"price"`
	Period   string         `json:"period"` // "Monthly" or "One-time"
	Features []string       `json:"features"`
}

// MembershipPlans is the fixed plan catalog.
var MembershipPlans = []MembershipPlan{
	{
		Tier:     TierMonthlyBasic,
		Price:    PriceMonthlyBasic,
		Period:   "Monthly",
		Features: []string{"Bring shoes anytime", "Standard professional cleaning", "Priority drop-off"},
	},
	{
		Tier:     TierMonthlyUnlimited,
		Price:    PriceMonthlyUnlimited,
		Period:   "Monthly",
		Features: []string{"Unlimited shoes per month", "Special requests included", "Deep cleaning & protection"},
	},
	{
		Tier:     TierVVIPLifetime,
		Price:    PriceVVIPLifetime,
		Period:   "One-time",
		Features: []string{"LIFETIME membership", "Unlimited everything", "VVIP dedicated tech", "Free restorations"},
	},
}

// OrderTotal computes the cost of an order at intake time. Members pre-pay
// through their plan, so any tier other than None waives the per-order fee
// entirely. Count is assumed >= 1; the intake form enforces that.
func OrderTotal(sneakerCount int, tier MembershipTier) float64 {
	if tier != TierNone {
		return 0
	}
	if sneakerCount >= BulkThreshold {
		return float64(sneakerCount) * BulkRate
	}
	return float64(sneakerCount) * StandardRate
}
