package response

import (
	"delivery_hub/internal/domain/entities"
)

type RewardsOverviewResponse struct {
	Rewards []entities.Reward     `json:"rewards"`
	Rules   []entities.PointsRule `json:"rules"`
	Points  int                   `json:"points"`
	Credits int                   `json:"credits"`
}

func FromRewardsOverview(o entities.RewardsOverview) RewardsOverviewResponse {
	return RewardsOverviewResponse{
		Rewards: o.Rewards,
		Rules:   o.Rules,
		Points:  o.Points,
		Credits: o.Credits,
	}
}

// RedemptionResponse reports the outcome of a redeem action together with
// the updated balances, so the client never has to re-derive them.
type RedemptionResponse struct {
	RewardID string `json:"reward_id,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
	Points   int    `json:"points"`
	Credits  int    `json:"credits"`
}

func FromRedemption(r entities.Redemption) RedemptionResponse {
	return RedemptionResponse{
		RewardID: r.RewardID,
		Code:     r.Code,
		Message:  r.Message,
		Points:   r.Points,
		Credits:  r.Credits,
	}
}
