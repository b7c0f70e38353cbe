package request

import "time"

// PenaltyRequest computes the final order price at delivery confirmation.
type PenaltyRequest struct {
	Price       float64   `json:"price" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	DeliveredAt time.Time `json:"delivered_at" binding:"required"`
}
