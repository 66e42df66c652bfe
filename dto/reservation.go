package dto

// CreateReservationRequest is the payload for booking a stay. The caller asks
// for a room type; the engine picks the concrete room.
type CreateReservationRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	RoomType      string `json:"roomType" binding:"required"`
	CheckIn       string `json:"checkIn" binding:"required"`
	CheckOut      string `json:"checkOut" binding:"required"`
	PaymentStatus string `json:"paymentStatus"`
}

// UpdateReservationRequest is the payload for editing a reservation. The
// reservation id comes from the URL, so the engine stays stateless between
// calls.
type UpdateReservationRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	RoomType      string `json:"roomType" binding:"required"`
	CheckIn       string `json:"checkIn" binding:"required"`
	CheckOut      string `json:"checkOut" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// ReservationResponse is a reservation joined with its room's type for
// display. The room type is denormalized on read, never stored.
type ReservationResponse struct {
	ID            uint    `json:"id"`
	CustomerName  string  `json:"customerName"`
	RoomType      string  `json:"roomType"`
	RoomNumber    string  `json:"roomNumber"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
}

// OccupancyEntry is one room's point-in-time status.
type OccupancyEntry struct {
	RoomNumber       string  `json:"roomNumber"`
	RoomType         string  `json:"roomType"`
	Condition        string  `json:"condition"`
	Occupied         bool    `json:"occupied"`
	CustomerName     *string `json:"customerName,omitempty"`
	OccupantCheckOut *string `json:"occupantCheckOut,omitempty"`
}
