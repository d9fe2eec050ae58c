package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery_hub/internal/adapter/persistence/repository"
	"delivery_hub/internal/domain/entities"
)

func newBookingUseCaseForTest(t *testing.T) (*BookingUseCase, *repository.SessionMemoryRepository, entities.Session) {
	t.Helper()

	sessions := repository.NewSessionMemoryRepository()
	uc := NewBookingUseCase(sessions, repository.NewSupportPointMemoryRepository())
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	s := entities.Session{
		ID:       "sess-1",
		User:     &entities.User{Name: "Marcos Silva", Email: "marcos@email.com"},
		Points:   1250,
		Credits:  3,
		Draft:    entities.EmptyDraft(),
		Bookings: seedBookings(),
	}
	if err := sessions.Create(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc, sessions, s
}

func TestBookingUseCase_SelectPoint(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		uc, _, _ := newBookingUseCaseForTest(t)
		if _, err := uc.SelectPoint(context.Background(), "ghost", 1); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("unknown point", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		if _, err := uc.SelectPoint(context.Background(), s.ID, 99); !errors.Is(err, ErrSupportPointNotFound) {
			t.Fatalf("expected ErrSupportPointNotFound, got %v", err)
		}
	})

	t.Run("unavailable point leaves draft untouched", func(t *testing.T) {
		uc, sessions, s := newBookingUseCaseForTest(t)

		if _, err := uc.SelectPoint(context.Background(), s.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Point 3 is out of service.
		if _, err := uc.SelectPoint(context.Background(), s.ID, 3); !errors.Is(err, ErrSupportPointUnavailable) {
			t.Fatalf("expected ErrSupportPointUnavailable, got %v", err)
		}

		stored, _ := sessions.Get(context.Background(), s.ID)
		if stored.Draft.PointID != 1 || stored.Draft.Stage != entities.DraftPointSelected {
			t.Fatalf("draft was mutated: %+v", stored.Draft)
		}
	})
}

func TestBookingUseCase_ChooseService(t *testing.T) {
	t.Run("requires a selected point", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		if _, err := uc.ChooseService(context.Background(), s.ID, entities.ServiceBanho); !errors.Is(err, ErrNoPointSelected) {
			t.Fatalf("expected ErrNoPointSelected, got %v", err)
		}
	})

	t.Run("service must be offered at the point", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)

		if _, err := uc.SelectPoint(context.Background(), s.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Point 1 has no snack service.
		if _, err := uc.ChooseService(context.Background(), s.ID, entities.ServiceLanche); !errors.Is(err, ErrServiceNotOffered) {
			t.Fatalf("expected ErrServiceNotOffered, got %v", err)
		}

		draft, err := uc.ChooseService(context.Background(), s.ID, entities.ServiceBanho)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Stage != entities.DraftServiceChosen || draft.Service != entities.ServiceBanho {
			t.Fatalf("unexpected draft: %+v", draft)
		}
	})
}

func TestBookingUseCase_SetSchedule(t *testing.T) {
	advance := func(t *testing.T, uc *BookingUseCase, sessionID string) {
		t.Helper()
		if _, err := uc.SelectPoint(context.Background(), sessionID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ChooseService(context.Background(), sessionID, entities.ServiceBanho); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("rejects malformed date", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		advance(t, uc, s.ID)
		if _, err := uc.SetSchedule(context.Background(), s.ID, "15/12/2024", "14:00"); !errors.Is(err, ErrInvalidBookingDate) {
			t.Fatalf("expected ErrInvalidBookingDate, got %v", err)
		}
	})

	t.Run("rejects past date", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		advance(t, uc, s.ID)
		if _, err := uc.SetSchedule(context.Background(), s.ID, "2024-05-31", "14:00"); !errors.Is(err, ErrPastBookingDate) {
			t.Fatalf("expected ErrPastBookingDate, got %v", err)
		}
	})

	t.Run("today is allowed", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		advance(t, uc, s.ID)
		if _, err := uc.SetSchedule(context.Background(), s.ID, "2024-06-01", "08:00"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects off-grid time slot", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		advance(t, uc, s.ID)
		if _, err := uc.SetSchedule(context.Background(), s.ID, "2099-01-01", "16:30"); !errors.Is(err, ErrInvalidTimeSlot) {
			t.Fatalf("expected ErrInvalidTimeSlot, got %v", err)
		}
	})

	t.Run("requires service first", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		if _, err := uc.SelectPoint(context.Background(), s.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SetSchedule(context.Background(), s.ID, "2099-01-01", "14:00"); !errors.Is(err, ErrNoServiceChosen) {
			t.Fatalf("expected ErrNoServiceChosen, got %v", err)
		}
	})

	t.Run("complete draft", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)
		advance(t, uc, s.ID)
		draft, err := uc.SetSchedule(context.Background(), s.ID, "2099-01-01", "14:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Stage != entities.DraftScheduleChosen || draft.Date != "2099-01-01" || draft.Time != "14:00" {
			t.Fatalf("unexpected draft: %+v", draft)
		}
	})
}

func TestBookingUseCase_Confirm(t *testing.T) {
	t.Run("incomplete draft", func(t *testing.T) {
		uc, _, s := newBookingUseCaseForTest(t)

		if _, err := uc.Confirm(context.Background(), s.ID); !errors.Is(err, ErrNoPointSelected) {
			t.Fatalf("expected ErrNoPointSelected, got %v", err)
		}

		if _, err := uc.SelectPoint(context.Background(), s.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Confirm(context.Background(), s.ID); !errors.Is(err, ErrIncompleteBooking) {
			t.Fatalf("expected ErrIncompleteBooking, got %v", err)
		}
	})

	t.Run("appends confirmed booking and resets draft", func(t *testing.T) {
		uc, sessions, s := newBookingUseCaseForTest(t)

		if _, err := uc.SelectPoint(context.Background(), s.ID, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ChooseService(context.Background(), s.ID, entities.ServiceMassagem); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SetSchedule(context.Background(), s.ID, "2099-01-01", "14:00"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		booking, err := uc.Confirm(context.Background(), s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.ID == "" || booking.Status != entities.BookingStatusConfirmed {
			t.Fatalf("unexpected booking: %+v", booking)
		}
		if booking.PointName != "Ponto Praia Grande Premium" || booking.Location == "" {
			t.Fatalf("point snapshot missing: %+v", booking)
		}

		stored, _ := sessions.Get(context.Background(), s.ID)
		if len(stored.Bookings) != 3 {
			t.Fatalf("expected 3 bookings, got %d", len(stored.Bookings))
		}
		if stored.Draft.Stage != entities.DraftNoSelection {
			t.Fatalf("draft not reset: %+v", stored.Draft)
		}
	})
}

func TestBookingUseCase_Cancel(t *testing.T) {
	t.Run("removes the booking", func(t *testing.T) {
		uc, sessions, s := newBookingUseCaseForTest(t)

		target := s.Bookings[0].ID
		if err := uc.Cancel(context.Background(), s.ID, target); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := sessions.Get(context.Background(), s.ID)
		if len(stored.Bookings) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(stored.Bookings))
		}
		for _, b := range stored.Bookings {
			if b.ID == target {
				t.Fatalf("booking still present")
			}
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		uc, sessions, s := newBookingUseCaseForTest(t)

		if err := uc.Cancel(context.Background(), s.ID, "nope"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := sessions.Get(context.Background(), s.ID)
		if len(stored.Bookings) != 2 {
			t.Fatalf("bookings changed: %d", len(stored.Bookings))
		}
	})
}

func TestBookingUseCase_ConfirmPending(t *testing.T) {
	uc, sessions, s := newBookingUseCaseForTest(t)

	pending := s.Bookings[1]
	if pending.Status != entities.BookingStatusPending {
		t.Fatalf("fixture out of shape: %+v", pending)
	}

	booking, err := uc.ConfirmPending(context.Background(), s.ID, pending.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != entities.BookingStatusConfirmed {
		t.Fatalf("unexpected status: %s", booking.Status)
	}

	stored, _ := sessions.Get(context.Background(), s.ID)
	if stored.Bookings[1].Status != entities.BookingStatusConfirmed {
		t.Fatalf("status not persisted: %+v", stored.Bookings[1])
	}

	if _, err := uc.ConfirmPending(context.Background(), s.ID, "nope"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
