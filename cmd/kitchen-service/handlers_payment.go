package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ramasethuai/annapurnaskitchen/internal/payment"
	"github.com/ramasethuai/annapurnaskitchen/internal/store"
)

// listPaymentsHandler godoc
// @Summary Payment history for a phone
// @Tags payments
// @Produce json
// @Param phone query string true "customer phone"
// @Success 200 {array} payment.Entry
// @Failure 400 {object} httpx.HTTPError
// @Router /api/admin/payments [get]
func listPaymentsHandler(repo payment.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
			return
		}
		list, err := repo.ListByPhone(c.Request.Context(), phone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment history failed"})
			return
		}
		out := make([]payment.Entry, 0, len(list))
		for _, p := range list {
			out = append(out, p.Entry())
		}
		c.JSON(http.StatusOK, out)
	}
}

// recordPaymentHandler godoc
// @Summary Record a payment
// @Description Appends a ledger entry. The phone does not need an existing customer row; a payment may precede the first order.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body payment.RecordRequest true "payment"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.HTTPError
// @Router /api/admin/payments [post]
func recordPaymentHandler(repo payment.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.RecordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		req.Phone = strings.TrimSpace(req.Phone)
		req.Note = strings.TrimSpace(req.Note)
		if req.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
			return
		}
		amount := decimal.NewFromFloat(req.Amount)
		if !amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be > 0"})
			return
		}

		p := &payment.Payment{
			Phone:     req.Phone,
			CreatedAt: store.Now(),
			Amount:    amount.StringFixed(2),
			Note:      req.Note,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment save failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
