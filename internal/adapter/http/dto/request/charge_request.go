package request

// ChargeRequest adds or reverses an order amount on the commerce's current
// invoice. OrderID is carried for log correlation only.
type ChargeRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount" binding:"required"`
}
