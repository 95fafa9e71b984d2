package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ramasethuai/annapurnaskitchen/internal/order"
	"github.com/ramasethuai/annapurnaskitchen/internal/store"
)

// submitOrderHandler godoc
// @Summary Submit an order
// @Description Upserts the customer for the phone and appends the order in one transaction. The full payload is kept verbatim for the admin history view.
// @Tags orders
// @Accept json
// @Produce json
// @Param payload body order.SubmitOrderRequest true "order"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.HTTPError
// @Router /api/order [post]
func submitOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.SubmitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Phone = strings.TrimSpace(req.Phone)
		req.PickupOption = strings.TrimSpace(req.PickupOption)
		req.Notes = strings.TrimSpace(req.Notes)
		if req.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
			return
		}
		if req.Items == nil {
			req.Items = []any{}
		}

		payload, _ := json.Marshal(req)
		o := &order.Order{
			Phone:     req.Phone,
			CreatedAt: store.Now(),
			Total:     decimal.NewFromFloat(req.Total).StringFixed(2),
			Data:      string(payload),
		}
		if err := repo.Create(c.Request.Context(), o, req.Name); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order save failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// listOrdersHandler godoc
// @Summary Order history for a phone
// @Tags orders
// @Produce json
// @Param phone query string true "customer phone"
// @Success 200 {array} order.HistoryEntry
// @Failure 400 {object} httpx.HTTPError
// @Router /api/admin/orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
			return
		}
		list, err := repo.ListByPhone(c.Request.Context(), phone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order history failed"})
			return
		}
		out := make([]order.HistoryEntry, 0, len(list))
		for _, o := range list {
			out = append(out, o.History())
		}
		c.JSON(http.StatusOK, out)
	}
}
