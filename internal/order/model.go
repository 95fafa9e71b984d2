package order

// Order is one submitted order. Phone and total are split into columns for
// querying; Data keeps the raw JSON payload exactly as submitted, an
// intentional audit copy for the admin history view.
type Order struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
	// NUMERIC -> string to avoid rounding errors in transit
	Total string `json:"total"`
	Data  string `json:"data"`
}
