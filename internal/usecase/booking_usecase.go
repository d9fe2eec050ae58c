package usecase

import (
	"context"
	"errors"
	"time"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSupportPointUnavailable  = errors.New("support point unavailable")
	ErrNoPointSelected          = errors.New("no support point selected")
	ErrNoServiceChosen          = errors.New("no service chosen")
	ErrServiceNotOffered        = errors.New("service not offered at this point")
	ErrInvalidBookingDate       = errors.New("invalid booking date")
	ErrPastBookingDate          = errors.New("booking date in the past")
	ErrInvalidTimeSlot          = errors.New("invalid time slot")
	ErrIncompleteBooking        = errors.New("booking date and time not set")
	ErrBookingNotFound          = errors.New("booking not found")
	ErrInvalidBookingTransition = errors.New("invalid booking status transition")
)

// AllowedTimeSlots are the hourly slots a service can be reserved for.
var AllowedTimeSlots = []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

const bookingDateLayout = "2006-01-02"

// IBookingUseCase drives the reservation workflow:
//
//	NoSelection -> PointSelected -> ServiceChosen -> ScheduleChosen -> (confirm)
//
// Each step validates its precondition and rejections leave the draft
// untouched, so an unavailable point can never become the selection.
// Confirm creates an auto-confirmed booking and resets the draft.

type IBookingUseCase interface {
	SelectPoint(ctx context.Context, sessionID string, pointID int) (entities.BookingDraft, error)
	ChooseService(ctx context.Context, sessionID string, service entities.ServiceTag) (entities.BookingDraft, error)
	SetSchedule(ctx context.Context, sessionID, date, timeSlot string) (entities.BookingDraft, error)
	Draft(ctx context.Context, sessionID string) (entities.BookingDraft, error)
	ClearDraft(ctx context.Context, sessionID string) error
	Confirm(ctx context.Context, sessionID string) (entities.Booking, error)
	List(ctx context.Context, sessionID string) ([]entities.Booking, error)
	Cancel(ctx context.Context, sessionID, bookingID string) error
	ConfirmPending(ctx context.Context, sessionID, bookingID string) (entities.Booking, error)
}

type BookingUseCase struct {
	sessions interfaces.ISessionRepository
	points   interfaces.ISupportPointRepository
	now      func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(sessions interfaces.ISessionRepository, points interfaces.ISupportPointRepository) *BookingUseCase {
	return &BookingUseCase{sessions: sessions, points: points, now: time.Now}
}

// SelectPoint starts a draft at an available support point. Unavailable
// points are rejected before the session is touched: the previous selection
// stays exactly as it was.
func (u *BookingUseCase) SelectPoint(ctx context.Context, sessionID string, pointID int) (entities.BookingDraft, error) {
	p, err := u.points.GetByID(ctx, pointID)
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if p.ID == 0 {
		return entities.BookingDraft{}, ErrSupportPointNotFound
	}
	if !p.Available {
		return entities.BookingDraft{}, ErrSupportPointUnavailable
	}

	return u.updateDraft(ctx, sessionID, func(s *entities.Session) error {
		s.Draft = entities.BookingDraft{Stage: entities.DraftPointSelected, PointID: p.ID}
		return nil
	})
}

// ChooseService picks a service offered by the selected point.
func (u *BookingUseCase) ChooseService(ctx context.Context, sessionID string, service entities.ServiceTag) (entities.BookingDraft, error) {
	return u.updateDraft(ctx, sessionID, func(s *entities.Session) error {
		if s.Draft.PointID == 0 {
			return ErrNoPointSelected
		}
		p, err := u.points.GetByID(ctx, s.Draft.PointID)
		if err != nil {
			return err
		}
		if !p.Offers(service) {
			return ErrServiceNotOffered
		}
		s.Draft.Service = service
		s.Draft.Stage = entities.DraftServiceChosen
		return nil
	})
}

// SetSchedule fixes date and time. Past dates are rejected and the time must
// be one of the fixed hourly slots.
func (u *BookingUseCase) SetSchedule(ctx context.Context, sessionID, date, timeSlot string) (entities.BookingDraft, error) {
	day, err := time.Parse(bookingDateLayout, date)
	if err != nil {
		return entities.BookingDraft{}, ErrInvalidBookingDate
	}
	today := u.now().Format(bookingDateLayout)
	if day.Format(bookingDateLayout) < today {
		return entities.BookingDraft{}, ErrPastBookingDate
	}
	if !isAllowedSlot(timeSlot) {
		return entities.BookingDraft{}, ErrInvalidTimeSlot
	}

	return u.updateDraft(ctx, sessionID, func(s *entities.Session) error {
		if s.Draft.PointID == 0 {
			return ErrNoPointSelected
		}
		if s.Draft.Service == "" {
			return ErrNoServiceChosen
		}
		s.Draft.Date = date
		s.Draft.Time = timeSlot
		s.Draft.Stage = entities.DraftScheduleChosen
		return nil
	})
}

func (u *BookingUseCase) Draft(ctx context.Context, sessionID string) (entities.BookingDraft, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if s.ID == "" {
		return entities.BookingDraft{}, ErrSessionNotFound
	}
	return s.Draft, nil
}

// ClearDraft dismisses the current selection.
func (u *BookingUseCase) ClearDraft(ctx context.Context, sessionID string) error {
	_, err := u.updateDraft(ctx, sessionID, func(s *entities.Session) error {
		s.Draft = entities.EmptyDraft()
		return nil
	})
	return err
}

// Confirm turns a complete draft into a confirmed booking, appends it to the
// session and resets the draft. There is no pending-approval step.
func (u *BookingUseCase) Confirm(ctx context.Context, sessionID string) (entities.Booking, error) {
	var booking entities.Booking

	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		if s.Draft.PointID == 0 {
			return ErrNoPointSelected
		}
		if s.Draft.Date == "" || s.Draft.Time == "" {
			return ErrIncompleteBooking
		}

		p, err := u.points.GetByID(ctx, s.Draft.PointID)
		if err != nil {
			return err
		}
		if p.ID == 0 {
			return ErrSupportPointNotFound
		}

		booking = entities.Booking{
			ID:        uuid.NewString(),
			PointID:   p.ID,
			PointName: p.Name,
			Service:   s.Draft.Service,
			Date:      s.Draft.Date,
			Time:      s.Draft.Time,
			Location:  p.Address,
			Status:    entities.BookingStatusConfirmed,
		}
		s.Bookings = append(s.Bookings, booking)
		s.Draft = entities.EmptyDraft()
		return nil
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if s.ID == "" {
		return entities.Booking{}, ErrSessionNotFound
	}

	logger.S().Infof("[booking][usecase] booking confirmed session=%s booking=%s point=%d service=%s", sessionID, booking.ID, booking.PointID, booking.Service)
	return booking, nil
}

func (u *BookingUseCase) List(ctx context.Context, sessionID string) ([]entities.Booking, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, ErrSessionNotFound
	}
	return s.Bookings, nil
}

// Cancel removes a booking. An unknown id is a no-op success: deletion is
// idempotent, not an error.
func (u *BookingUseCase) Cancel(ctx context.Context, sessionID, bookingID string) error {
	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		kept := s.Bookings[:0]
		for _, b := range s.Bookings {
			if b.ID != bookingID {
				kept = append(kept, b)
			}
		}
		s.Bookings = kept
		return nil
	})
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrSessionNotFound
	}
	return nil
}

// ConfirmPending moves a pending booking forward to confirmed. Backward or
// out-of-graph transitions are rejected by the status table.
func (u *BookingUseCase) ConfirmPending(ctx context.Context, sessionID, bookingID string) (entities.Booking, error) {
	var confirmed entities.Booking

	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		for i := range s.Bookings {
			if s.Bookings[i].ID != bookingID {
				continue
			}
			if err := s.Bookings[i].TransitionTo(entities.BookingStatusConfirmed); err != nil {
				return ErrInvalidBookingTransition
			}
			confirmed = s.Bookings[i]
			return nil
		}
		return ErrBookingNotFound
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if s.ID == "" {
		return entities.Booking{}, ErrSessionNotFound
	}
	return confirmed, nil
}

// updateDraft wraps a session mutation that only touches the draft.
func (u *BookingUseCase) updateDraft(ctx context.Context, sessionID string, mutate interfaces.SessionMutator) (entities.BookingDraft, error) {
	s, err := u.sessions.Update(ctx, sessionID, mutate)
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if s.ID == "" {
		return entities.BookingDraft{}, ErrSessionNotFound
	}
	return s.Draft, nil
}

func isAllowedSlot(t string) bool {
	for _, slot := range AllowedTimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
