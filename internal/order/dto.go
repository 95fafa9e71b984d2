package order

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SubmitOrderRequest payload posted by the public ordering page. Items is an
// opaque list the frontend assembles; it is stored verbatim.
// swagger:model SubmitOrderRequest
type SubmitOrderRequest struct {
	Name         string  `json:"name"         example:"Asha"`
	Phone        string  `json:"phone"        example:"555-1111"`
	PickupOption string  `json:"pickupOption" example:"Friday 5pm"`
	Notes        string  `json:"notes"        example:"no onions"`
	Items        []any   `json:"items"`
	Total        float64 `json:"total"        example:"25.50"`
}

// HistoryEntry is one order in the admin history view, with the stored
// payload parsed back into structured form.
// swagger:model OrderHistoryEntry
type HistoryEntry struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"created_at"`
	Total     float64 `json:"total"`
	Data      any     `json:"data"`
}

// History converts a stored row into its admin-history form. The stored
// payload is returned as whatever JSON it holds; only a payload that no
// longer parses comes back as an empty object, so one bad row cannot fail
// the whole listing.
func (o Order) History() HistoryEntry {
	var data any
	if err := json.Unmarshal([]byte(o.Data), &data); err != nil {
		data = map[string]any{}
	}
	total, _ := decimal.NewFromString(o.Total)
	return HistoryEntry{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Total:     total.InexactFloat64(),
		Data:      data,
	}
}
