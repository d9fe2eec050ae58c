package entities

import "fmt"

// BookingStatus represents the lifecycle of a reservation.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions is the forward-only status graph. Completed and
// cancelled are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanTransition reports whether from -> to is an allowed status change.
// A transition to the same status is allowed, so re-applying one is a no-op.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Booking is a reservation of one service at one support point.
type Booking struct {
	ID        string        `json:"id"`
	PointID   int           `json:"point_id"`
	PointName string        `json:"point_name"`
	Service   ServiceTag    `json:"service"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Location  string        `json:"location"`
	Status    BookingStatus `json:"status"`
}

// TransitionTo applies a status change, rejecting backward moves.
func (b *Booking) TransitionTo(to BookingStatus) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("invalid booking status transition: %s -> %s", b.Status, to)
	}
	b.Status = to
	return nil
}

// DraftStage tracks how far the in-progress reservation has advanced.
type DraftStage string

const (
	DraftNoSelection    DraftStage = "no_selection"
	DraftPointSelected  DraftStage = "point_selected"
	DraftServiceChosen  DraftStage = "service_chosen"
	DraftScheduleChosen DraftStage = "schedule_chosen"
)

// BookingDraft is the in-progress reservation owned by a session. It only
// advances through the stages in order and is cleared when a booking is
// confirmed or the selection is dismissed.
type BookingDraft struct {
	Stage   DraftStage `json:"stage"`
	PointID int        `json:"point_id,omitempty"`
	Service ServiceTag `json:"service,omitempty"`
	Date    string     `json:"date,omitempty"`
	Time    string     `json:"time,omitempty"`
}

// EmptyDraft is the draft of a session with nothing selected.
func EmptyDraft() BookingDraft {
	return BookingDraft{Stage: DraftNoSelection}
}
