package response

import (
	"delivery_hub/internal/domain/entities"
)

type BookingResponse struct {
	ID        string `json:"id"`
	PointID   int    `json:"point_id"`
	PointName string `json:"point_name"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		PointID:   b.PointID,
		PointName: b.PointName,
		Service:   string(b.Service),
		Date:      b.Date,
		Time:      b.Time,
		Location:  b.Location,
		Status:    string(b.Status),
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

type BookingDraftResponse struct {
	Stage   string `json:"stage"`
	PointID int    `json:"point_id,omitempty"`
	Service string `json:"service,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

func FromBookingDraft(d entities.BookingDraft) BookingDraftResponse {
	return BookingDraftResponse{
		Stage:   string(d.Stage),
		PointID: d.PointID,
		Service: string(d.Service),
		Date:    d.Date,
		Time:    d.Time,
	}
}

// ConfirmedBookingResponse pairs the new booking with its confirmation toast.
type ConfirmedBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Message string          `json:"message"`
}
