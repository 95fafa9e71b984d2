package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ramasethuai/annapurnaskitchen/internal/payment"
	"github.com/ramasethuai/annapurnaskitchen/internal/store"
)

//
// ===== STUB REPO (implements payment.Repository in memory) =====
//

type stubPaymentRepo struct {
	payments []payment.Payment
	nextID   int64
}

func (s *stubPaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	s.nextID++
	cp := *p
	cp.ID = s.nextID
	s.payments = append(s.payments, cp)
	return nil
}

func (s *stubPaymentRepo) ListByPhone(ctx context.Context, phone string) ([]payment.Payment, error) {
	// newest first, like the store
	out := []payment.Payment{}
	for i := len(s.payments) - 1; i >= 0; i-- {
		if s.payments[i].Phone == phone {
			out = append(out, s.payments[i])
		}
	}
	return out, nil
}

func newPaymentRouter(repo payment.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// same routes as main, without the session gate
	r.GET("/api/admin/payments", listPaymentsHandler(repo))
	r.POST("/api/admin/payments", recordPaymentHandler(repo))
	return r
}

//
// ===== TESTS =====
//

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	repo := &stubPaymentRepo{}
	r := newPaymentRouter(repo)

	for _, body := range []string{
		`{"phone":"555-1111","amount":0}`,
		`{"phone":"555-1111","amount":-5}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s: status=%d, expected 400", body, w.Code)
		}
		var got struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Error != "amount must be > 0" {
			t.Fatalf("body=%s: unexpected error: %s", body, w.Body.String())
		}
	}
	if len(repo.payments) != 0 {
		t.Fatalf("rejected payments must not be persisted: %d", len(repo.payments))
	}
}

func TestRecordPayment_PhoneRequired(t *testing.T) {
	repo := &stubPaymentRepo{}
	r := newPaymentRouter(repo)

	for _, body := range []string{
		`{"amount":10}`,
		`{"phone":"   ","amount":10}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s: status=%d, expected 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "phone is required") {
			t.Fatalf("body=%s: unexpected error: %s", body, w.Body.String())
		}
	}
}

func TestRecordPayment_AppendsEntry(t *testing.T) {
	repo := &stubPaymentRepo{}
	r := newPaymentRouter(repo)

	body := `{"phone":"555-1111","amount":10,"note":" e-transfer "}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(repo.payments) != 1 {
		t.Fatalf("payments persisted=%d, expected 1", len(repo.payments))
	}
	p := repo.payments[0]
	if p.Phone != "555-1111" || p.Amount != "10.00" || p.Note != "e-transfer" {
		t.Fatalf("payment fields wrong: %+v", p)
	}
	if len(p.CreatedAt) != len(store.TimeFormat) {
		t.Fatalf("created_at not in fixed-width UTC form: %q", p.CreatedAt)
	}
}

func TestListPayments_PhoneRequired(t *testing.T) {
	r := newPaymentRouter(&stubPaymentRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s, expected 400", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "phone is required") {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestListPayments_MapsEntries(t *testing.T) {
	repo := &stubPaymentRepo{}
	_ = repo.Create(context.Background(), &payment.Payment{
		Phone: "555-1111", CreatedAt: store.Now(), Amount: "10.50", Note: "cash",
	})
	_ = repo.Create(context.Background(), &payment.Payment{
		Phone: "555-1111", CreatedAt: store.Now(), Amount: "5.25",
	})
	r := newPaymentRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments?phone=555-1111", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []payment.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, expected 2", len(got))
	}
	// newest first; amounts come back as numbers
	if got[0].Amount != 5.25 || got[1].Amount != 10.5 {
		t.Fatalf("amounts wrong: %+v", got)
	}
	if got[1].Note != "cash" {
		t.Fatalf("note lost: %+v", got[1])
	}
}
