package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreatePayment(t *testing.T) {
	h, e := newTestHandler()
	body := `{"appointment_id":"appt-1","patient_id":"pat-1","amount":120.5,"payment_method":"card"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var p Payment
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Status != StatusPending {
		t.Errorf("expected pending, got %q", p.Status)
	}
}

func TestHandler_CreatePayment_ZeroAmount(t *testing.T) {
	h, e := newTestHandler()
	body := `{"appointment_id":"appt-1","patient_id":"pat-1","amount":0,"payment_method":"card"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_UpdatePaymentStatus_CompletedOutcome(t *testing.T) {
	h, e := newTestHandler()
	p, _ := h.svc.CreatePayment(context.Background(), validPayment())
	c, rec := newJSONContext(e, http.MethodPut, "/", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues(p.ID)
	if err := h.UpdatePaymentStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Payment *Payment `json:"payment"`
		Outcome string   `json:"outcome"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Outcome != "payment_completed" {
		t.Errorf("expected payment_completed outcome, got %q", resp.Outcome)
	}
	if resp.Payment.Status != StatusCompleted {
		t.Errorf("expected completed status, got %q", resp.Payment.Status)
	}
}

func TestHandler_UpdatePaymentStatus_FailedOutcome(t *testing.T) {
	h, e := newTestHandler()
	p, _ := h.svc.CreatePayment(context.Background(), validPayment())
	c, rec := newJSONContext(e, http.MethodPut, "/", `{"status":"failed"}`)
	c.SetParamNames("id")
	c.SetParamValues(p.ID)
	if err := h.UpdatePaymentStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["outcome"] != "payment_failed" {
		t.Errorf("expected payment_failed outcome, got %v", resp["outcome"])
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, e := newTestHandler()
	h.RegisterRoutes(e.Group("/api/v1"))
	routePaths := make(map[string]bool)
	for _, r := range e.Routes() {
		routePaths[r.Method+":"+r.Path] = true
	}
	expected := []string{
		"POST:/api/v1/payments",
		"GET:/api/v1/payments/:id",
		"PUT:/api/v1/payments/:id/status",
		"GET:/api/v1/patients/:id/payments",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing route: %s", path)
		}
	}
}
