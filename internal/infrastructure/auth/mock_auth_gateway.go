package auth

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/usecase/interfaces"
)

// Simulated provider round-trip times.
const (
	defaultLoginLatency    = 1000 * time.Millisecond
	defaultRegisterLatency = 1500 * time.Millisecond
)

// MockAuthGateway stands in for the identity provider. Any email/password
// pair authenticates; the email only selects which display name comes back.
// The latency simulation keeps callers honest about blocking on the provider
// and can be tuned or disabled through the environment.
type MockAuthGateway struct {
	latencyDisabled bool
	latencyOverride time.Duration
}

var _ interfaces.IAuthGateway = (*MockAuthGateway)(nil)

var knownCouriers = map[string]string{
	"marcos@email.com": "Marcos Silva",
	"joao@email.com":   "João Santos",
}

const fallbackCourierName = "Juliana Costa"

func NewMockAuthGateway() *MockAuthGateway {
	g := &MockAuthGateway{
		latencyDisabled: isGatewayLatencyDisabled(),
		latencyOverride: gatewayLatencyOverride(),
	}
	logger.S().Infof("[auth][gateway] mock mode enabled latency_disabled=%v", g.latencyDisabled)
	return g
}

func (g *MockAuthGateway) Login(ctx context.Context, email, _ string) (entities.User, error) {
	if err := g.wait(ctx, defaultLoginLatency); err != nil {
		return entities.User{}, err
	}

	name, ok := knownCouriers[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		name = fallbackCourierName
	}

	logger.S().Infof("[auth][gateway] mock login success email=%s", email)
	return entities.User{
		Name:        name,
		Email:       email,
		Phone:       "(11) 98765-4321",
		Vehicle:     entities.VehicleMoto,
		MemberSince: "2023-01-15",
		Level:       entities.LoyaltyBronze,
	}, nil
}

func (g *MockAuthGateway) Register(ctx context.Context, reg entities.Registration) (entities.User, error) {
	if err := g.wait(ctx, defaultRegisterLatency); err != nil {
		return entities.User{}, err
	}

	logger.S().Infof("[auth][gateway] mock register success email=%s vehicle=%s", reg.Email, reg.Vehicle)
	return entities.User{
		Name:        reg.Name,
		Email:       reg.Email,
		Phone:       reg.Phone,
		Vehicle:     reg.Vehicle,
		CPF:         reg.CPF,
		BirthDate:   reg.BirthDate,
		MemberSince: time.Now().Format("2006-01-02"),
		Level:       entities.LoyaltyBronze,
	}, nil
}

func (g *MockAuthGateway) wait(ctx context.Context, d time.Duration) error {
	if g.latencyDisabled {
		return nil
	}
	if g.latencyOverride > 0 {
		d = g.latencyOverride
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isGatewayLatencyDisabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MOCK_GATEWAY_LATENCY_DISABLED")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func gatewayLatencyOverride() time.Duration {
	v := strings.TrimSpace(os.Getenv("MOCK_GATEWAY_LATENCY_MS"))
	if v == "" {
		return 0
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
