package repository

import (
	"context"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase/interfaces"
)

// RewardMemoryRepository serves the fixed reward catalog and earning rules.
type RewardMemoryRepository struct {
	rewards []entities.Reward
	rules   []entities.PointsRule
}

var _ interfaces.IRewardRepository = (*RewardMemoryRepository)(nil)

func NewRewardMemoryRepository() *RewardMemoryRepository {
	return &RewardMemoryRepository{
		rewards: seedRewards(),
		rules:   seedPointsRules(),
	}
}

func (r *RewardMemoryRepository) List(_ context.Context) ([]entities.Reward, error) {
	out := make([]entities.Reward, len(r.rewards))
	copy(out, r.rewards)
	return out, nil
}

func (r *RewardMemoryRepository) GetByID(_ context.Context, id string) (entities.Reward, error) {
	for _, rw := range r.rewards {
		if rw.ID == id {
			return rw, nil
		}
	}
	return entities.Reward{}, nil
}

func (r *RewardMemoryRepository) EarningRules(_ context.Context) ([]entities.PointsRule, error) {
	out := make([]entities.PointsRule, len(r.rules))
	copy(out, r.rules)
	return out, nil
}

func seedRewards() []entities.Reward {
	return []entities.Reward{
		{
			ID:          "massagem",
			Name:        "Sessão de Massagem",
			Description: "15 minutos de relaxamento",
			Cost:        500,
			Code:        "#RELAX789",
			Message:     "Massagem resgatada! Código: #RELAX789. Válida por 7 dias.",
			Available:   true,
		},
		{
			ID:          "protetor-extra",
			Name:        "Protetor Solar Extra",
			Description: "3 créditos adicionais",
			Cost:        300,
			CreditGrant: 3,
			Message:     "3 créditos de protetor solar adicionados à sua conta!",
			Available:   true,
		},
		{
			ID:          "capa-premium",
			Name:        "Capa de Chuva Premium",
			Description: "Impermeável com refletivos",
			Cost:        450,
			Message:     "Capa de chuva premium resgatada! Retire em qualquer ponto.",
			Available:   true,
		},
		{
			ID:          "kit-lanche",
			Name:        "Kit Lanche Grátis",
			Description: "Sanduíche + bebida + sobremesa",
			Cost:        800,
			Message:     "Em breve",
			Available:   false,
		},
	}
}

func seedPointsRules() []entities.PointsRule {
	return []entities.PointsRule{
		{Action: "Entrega completada", Points: 10},
		{Action: "Entrega no prazo", Points: 5},
		{Action: "Avaliação 5 estrelas", Points: 15},
		{Action: "Uso do ponto de apoio", Points: 3},
		{Action: "Indicar amigo", Points: 100},
	}
}
