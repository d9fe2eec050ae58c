package usecase

import (
	"context"
	"errors"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/usecase/interfaces"
)

var (
	ErrRewardNotFound      = errors.New("reward not found")
	ErrRewardUnavailable   = errors.New("reward not yet available")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// Raincoat loans are free and produce a fixed pickup code.
const (
	raincoatCode    = "#CHUVA123"
	raincoatMessage = "Capa de chuva liberada! Código: #CHUVA123. Retire no ponto selecionado."
	sunscreenNotice = "Protetor solar liberado! Retire no ponto de apoio selecionado."
)

// IRewardsUseCase is the loyalty ledger: point redemptions against the
// reward catalog and the simpler single-use sunscreen credits.
//
// Balance invariants: points >= 0 and credits >= 0 always hold. A redemption
// that would break them is rejected outright, never clamped.

type IRewardsUseCase interface {
	Overview(ctx context.Context, sessionID string) (entities.RewardsOverview, error)
	Redeem(ctx context.Context, sessionID, rewardID string) (entities.Redemption, error)
	RedeemSunscreenCredit(ctx context.Context, sessionID string) (entities.Redemption, error)
	BorrowRaincoat(ctx context.Context, sessionID string) (entities.Redemption, error)
}

type RewardsUseCase struct {
	sessions interfaces.ISessionRepository
	rewards  interfaces.IRewardRepository
}

var _ IRewardsUseCase = (*RewardsUseCase)(nil)

func NewRewardsUseCase(sessions interfaces.ISessionRepository, rewards interfaces.IRewardRepository) *RewardsUseCase {
	return &RewardsUseCase{sessions: sessions, rewards: rewards}
}

func (u *RewardsUseCase) Overview(ctx context.Context, sessionID string) (entities.RewardsOverview, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.RewardsOverview{}, err
	}
	if s.ID == "" {
		return entities.RewardsOverview{}, ErrSessionNotFound
	}

	rewards, err := u.rewards.List(ctx)
	if err != nil {
		return entities.RewardsOverview{}, err
	}
	rules, err := u.rewards.EarningRules(ctx)
	if err != nil {
		return entities.RewardsOverview{}, err
	}

	return entities.RewardsOverview{
		Rewards: rewards,
		Rules:   rules,
		Points:  s.Points,
		Credits: s.Credits,
	}, nil
}

// Redeem debits the reward's point cost and applies its effect atomically.
// The balance check and the debit happen under the same session lock.
func (u *RewardsUseCase) Redeem(ctx context.Context, sessionID, rewardID string) (entities.Redemption, error) {
	reward, err := u.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return entities.Redemption{}, err
	}
	if reward.ID == "" {
		return entities.Redemption{}, ErrRewardNotFound
	}
	if !reward.Available {
		return entities.Redemption{}, ErrRewardUnavailable
	}

	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		if s.Points < reward.Cost {
			return ErrInsufficientPoints
		}
		s.Points -= reward.Cost
		s.Credits += reward.CreditGrant
		return nil
	})
	if err != nil {
		return entities.Redemption{}, err
	}
	if s.ID == "" {
		return entities.Redemption{}, ErrSessionNotFound
	}

	logger.S().Infof("[rewards][usecase] reward redeemed session=%s reward=%s cost=%d points=%d credits=%d", sessionID, reward.ID, reward.Cost, s.Points, s.Credits)
	return entities.Redemption{
		RewardID: reward.ID,
		Code:     reward.Code,
		Message:  reward.Message,
		Points:   s.Points,
		Credits:  s.Credits,
	}, nil
}

// RedeemSunscreenCredit spends one single-use sunscreen credit.
func (u *RewardsUseCase) RedeemSunscreenCredit(ctx context.Context, sessionID string) (entities.Redemption, error) {
	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		if s.Credits == 0 {
			return ErrInsufficientCredits
		}
		s.Credits--
		return nil
	})
	if err != nil {
		return entities.Redemption{}, err
	}
	if s.ID == "" {
		return entities.Redemption{}, ErrSessionNotFound
	}

	return entities.Redemption{
		Message: sunscreenNotice,
		Points:  s.Points,
		Credits: s.Credits,
	}, nil
}

// BorrowRaincoat is a free loan: no balance moves, only a pickup code.
func (u *RewardsUseCase) BorrowRaincoat(ctx context.Context, sessionID string) (entities.Redemption, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.Redemption{}, err
	}
	if s.ID == "" {
		return entities.Redemption{}, ErrSessionNotFound
	}

	return entities.Redemption{
		Code:    raincoatCode,
		Message: raincoatMessage,
		Points:  s.Points,
		Credits: s.Credits,
	}, nil
}
