package models

import (
	"fmt"
	"time"
)

// Payment status constants
const (
	PaymentUnpaid      = "Unpaid"
	PaymentDepositPaid = "DepositPaid"
	PaymentPaidInFull  = "PaidInFull"
)

type Reservation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CustomerName  string    `json:"customerName" gorm:"not null"`
	RoomNumber    string    `json:"roomNumber" gorm:"not null;index"`
	CheckIn       time.Time `json:"checkIn" gorm:"type:date;not null;index"`
	CheckOut      time.Time `json:"checkOut" gorm:"type:date;not null;index"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus" gorm:"not null;default:Unpaid"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Reservation) ValidatePaymentStatus() error {
	switch r.PaymentStatus {
	case PaymentUnpaid, PaymentDepositPaid, PaymentPaidInFull:
		return nil
	}
	return fmt.Errorf("invalid payment status: %s", r.PaymentStatus)
}

// Overlaps reports whether the reservation's date range intersects
// [checkIn, checkOut). Ranges are half-open: a check-out date may equal the
// next reservation's check-in date without conflict.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && checkIn.Before(r.CheckOut)
}

// OccupiedOn reports whether the reservation covers the given date,
// i.e. checkIn <= date < checkOut.
func (r *Reservation) OccupiedOn(date time.Time) bool {
	return !date.Before(r.CheckIn) && date.Before(r.CheckOut)
}

// Nights returns the number of whole nights between check-in and check-out.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
