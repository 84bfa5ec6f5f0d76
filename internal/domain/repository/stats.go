package repository

// StatusTotal is an aggregate row of document counts and amounts
// grouped by status.
type StatusTotal struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}
