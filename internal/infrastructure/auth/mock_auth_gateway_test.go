package auth

import (
	"context"
	"testing"

	"delivery_hub/internal/domain/entities"
)

func TestMockAuthGateway_Login(t *testing.T) {
	t.Setenv("MOCK_GATEWAY_LATENCY_DISABLED", "1")
	g := NewMockAuthGateway()

	t.Run("known courier", func(t *testing.T) {
		u, err := g.Login(context.Background(), "marcos@email.com", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Marcos Silva" || u.Vehicle != entities.VehicleMoto || u.Level != entities.LoyaltyBronze {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("email lookup ignores case and spacing", func(t *testing.T) {
		u, err := g.Login(context.Background(), "  Joao@Email.com ", "123456")
		if err != nil || u.Name != "João Santos" {
			t.Fatalf("unexpected user: %v %+v", err, u)
		}
	})

	t.Run("unknown email falls back", func(t *testing.T) {
		u, err := g.Login(context.Background(), "someone@else.com", "123456")
		if err != nil || u.Name != "Juliana Costa" {
			t.Fatalf("unexpected user: %v %+v", err, u)
		}
	})
}

func TestMockAuthGateway_Register(t *testing.T) {
	t.Setenv("MOCK_GATEWAY_LATENCY_DISABLED", "1")
	g := NewMockAuthGateway()

	reg := entities.Registration{
		Name:    "Ana Lima",
		Email:   "ana@email.com",
		Vehicle: entities.VehicleBicicleta,
		Phone:   "(11) 91234-5678",
	}
	u, err := g.Register(context.Background(), reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != reg.Name || u.Vehicle != reg.Vehicle || u.MemberSince == "" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.Level != entities.LoyaltyBronze {
		t.Fatalf("new accounts start at bronze, got %s", u.Level)
	}
}

func TestMockAuthGateway_LatencyHonorsContext(t *testing.T) {
	t.Setenv("MOCK_GATEWAY_LATENCY_MS", "5000")
	g := NewMockAuthGateway()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Login(ctx, "marcos@email.com", "123456"); err == nil {
		t.Fatalf("expected context error")
	}
}
