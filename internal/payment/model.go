// Package payment is the append-only payment ledger admins record against a
// phone number. The ledger does not require a customer row: a payment may
// precede the customer's first order.
package payment

type Payment struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
	// NUMERIC -> string
	Amount string `json:"amount"`
	Note   string `json:"note"`
}
