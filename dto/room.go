package dto

// CreateRoomRequest is the payload for adding a room.
type CreateRoomRequest struct {
	Number    string  `json:"number" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	DailyRate float64 `json:"dailyRate" binding:"required"`
	Condition string  `json:"condition"`
}

// UpdateRoomRequest is the payload for updating a room. The room number is
// taken from the URL and is immutable.
type UpdateRoomRequest struct {
	Type      string  `json:"type" binding:"required"`
	DailyRate float64 `json:"dailyRate" binding:"required"`
	Condition string  `json:"condition" binding:"required"`
}

type RoomResponse struct {
	Number    string  `json:"number"`
	Type      string  `json:"type"`
	DailyRate float64 `json:"dailyRate"`
	Condition string  `json:"condition"`
}

// RoomTypeRate pairs a room type with its daily rate.
type RoomTypeRate struct {
	Type      string  `json:"type"`
	DailyRate float64 `json:"dailyRate"`
}
