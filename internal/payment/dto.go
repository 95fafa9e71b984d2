package payment

import "github.com/shopspring/decimal"

// RecordRequest payload for recording a payment.
// swagger:model RecordPaymentRequest
type RecordRequest struct {
	Phone  string  `json:"phone"  example:"555-1111"`
	Amount float64 `json:"amount" example:"10.00"`
	Note   string  `json:"note"   example:"e-transfer"`
}

// Entry is a payment as listed in the admin view.
// swagger:model PaymentEntry
type Entry struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"created_at"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
}

// Entry converts a stored row into its listing form.
func (p Payment) Entry() Entry {
	amount, _ := decimal.NewFromString(p.Amount)
	return Entry{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		Amount:    amount.InexactFloat64(),
		Note:      p.Note,
	}
}
