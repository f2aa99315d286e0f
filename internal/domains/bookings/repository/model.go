package repository

// Booking occupies the half-open interval [StartTime, StartTime+DurationMinutes)
// on its date for its turf. It is created only at payment confirmation, only
// its status ever changes afterwards, and it is never deleted.
type Booking struct {
	ID              string  `json:"id"`
	TurfID          string  `json:"turf_id"`
	Date            string  `json:"date"`       // YYYY-MM-DD
	StartTime       string  `json:"start_time"` // HH:MM, 30-minute granularity
	DurationMinutes int     `json:"duration_minutes"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   string  `json:"payment_method"`
	CreatedAt       int64   `json:"created_at"` // unix milliseconds
}
