package entities

import "time"

// DeliveryStats is the "today's statistics" block. It is seeded all-zero
// and fed by an external analytics collaborator in a real deployment;
// nothing in this service mutates it.
type DeliveryStats struct {
	TotalDeliveries int     `json:"total_deliveries"`
	CompletedToday  int     `json:"completed_today"`
	Earnings        float64 `json:"earnings"`
	Rating          float64 `json:"rating"`
	Efficiency      float64 `json:"efficiency"`
	Today           int     `json:"today"`
	Week            int     `json:"week"`
	Month           int     `json:"month"`
}

// Session is the single owner of all mutable per-courier state: the user,
// the point/credit balances, the booking draft and list, notifications and
// the bootstrap snapshots (weather, location).
//
// Invariants, enforced by the usecases that mutate a session:
//   - Points >= 0 and Credits >= 0 at all times.
//   - Notification read flags never flip back to unread.
//   - The booking draft only advances through its stages in order.
type Session struct {
	ID            string
	User          *User
	Points        int
	Credits       int
	Draft         BookingDraft
	Bookings      []Booking
	Notifications []Notification
	Weather       *Weather
	Location      *Coordinates
	Stats         DeliveryStats
	CreatedAt     time.Time
}

// UnreadCount is the derived unread-notification counter. It is computed on
// demand and never stored, so it cannot drift.
func (s *Session) UnreadCount() int {
	n := 0
	for _, note := range s.Notifications {
		if !note.Read {
			n++
		}
	}
	return n
}
