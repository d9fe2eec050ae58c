package repository

import (
	"context"
	"testing"
)

func TestSupportPointMemoryRepository_Seed(t *testing.T) {
	r := NewSupportPointMemoryRepository()

	points, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}

	for _, p := range points {
		if p.ID == 0 || p.Name == "" || p.Address == "" || p.Phone == "" {
			t.Fatalf("incomplete point: %+v", p)
		}
		if len(p.Services) == 0 {
			t.Fatalf("point %d has no services", p.ID)
		}
	}

	// Only Ponto Barra Velha is out of service.
	for _, p := range points {
		if (p.ID == 3) == p.Available {
			t.Fatalf("unexpected availability for point %d: %v", p.ID, p.Available)
		}
	}

	premium, err := r.GetByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(premium.Services) != 9 || !premium.Amenities.Cafe {
		t.Fatalf("unexpected premium point: %+v", premium)
	}

	unknown, err := r.GetByID(context.Background(), 42)
	if err != nil || unknown.ID != 0 {
		t.Fatalf("expected zero point, got %v %+v", err, unknown)
	}
}

func TestSupportPointMemoryRepository_ListIsACopy(t *testing.T) {
	r := NewSupportPointMemoryRepository()

	points, _ := r.List(context.Background())
	points[0].Name = "changed"

	again, _ := r.List(context.Background())
	if again[0].Name != "Ponto Vila" {
		t.Fatalf("caller mutation leaked into the catalog: %+v", again[0])
	}
}

func TestRewardMemoryRepository_Seed(t *testing.T) {
	r := NewRewardMemoryRepository()

	rewards, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rewards) != 4 {
		t.Fatalf("expected 4 rewards, got %d", len(rewards))
	}

	available := 0
	for _, rw := range rewards {
		if rw.ID == "" || rw.Name == "" || rw.Cost <= 0 {
			t.Fatalf("incomplete reward: %+v", rw)
		}
		if rw.Available {
			available++
		}
	}
	if available != 3 {
		t.Fatalf("expected 3 available rewards, got %d", available)
	}

	extra, err := r.GetByID(context.Background(), "protetor-extra")
	if err != nil || extra.CreditGrant != 3 {
		t.Fatalf("unexpected reward: %v %+v", err, extra)
	}

	rules, err := r.EarningRules(context.Background())
	if err != nil || len(rules) != 5 {
		t.Fatalf("unexpected rules: %v %+v", err, rules)
	}
	for _, rule := range rules {
		if rule.Action == "" || rule.Points <= 0 {
			t.Fatalf("incomplete rule: %+v", rule)
		}
	}

	unknown, err := r.GetByID(context.Background(), "nope")
	if err != nil || unknown.ID != "" {
		t.Fatalf("expected zero reward, got %v %+v", err, unknown)
	}
}
