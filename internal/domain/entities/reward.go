package entities

// Reward is one redeemable item in the points catalog.
//
// Redemption effects:
//   - Cost is debited from the session's point balance.
//   - CreditGrant, when non-zero, is added to the sunscreen credit balance.
//   - Code is the confirmation code surfaced to the courier, when the item
//     carries one.
type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	CreditGrant int    `json:"credit_grant,omitempty"`
	Code        string `json:"code,omitempty"`
	Message     string `json:"-"`
	Available   bool   `json:"available"`
}

// PointsRule documents how couriers earn points. Presentational seed data;
// the earning feed itself comes from an external analytics collaborator.
type PointsRule struct {
	Action string `json:"action"`
	Points int    `json:"points"`
}

// Redemption is the outcome of a successful redeem action.
type Redemption struct {
	RewardID string
	Code     string
	Message  string
	Points   int
	Credits  int
}

// RewardsOverview is the rewards screen aggregate: catalog, earning table
// and the courier's current balances.
type RewardsOverview struct {
	Rewards []Reward
	Rules   []PointsRule
	Points  int
	Credits int
}
