package models

// MembershipTier is a client-level subscription status. An active tier waives
// the per-order service fee at intake time.
type MembershipTier string

const (
	TierNone             MembershipTier = "None"
	TierMonthlyBasic     MembershipTier = "Monthly Basic"
	TierMonthlyUnlimited MembershipTier = "Monthly Unlimited"
	TierVVIPLifetime     MembershipTier = "VVIP Lifetime"
)

func (t MembershipTier) Valid() bool {
	switch t {
	case TierNone, TierMonthlyBasic, TierMonthlyUnlimited, TierVVIPLifetime:
		return true
	}
	return false
}

type Client struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Phone      string         `json:"phone"`
	Email      string         `json:"email"`
	Membership MembershipTier `json:"membership"`
	Notes      string         `json:"notes,omitempty"`
}
