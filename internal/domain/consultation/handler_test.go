package consultation

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

func TestHandler_CreateConsultation(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patient_id":"pat-1","problem":"chest pain","department_id":"dept-1"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	if err := h.CreateConsultation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var con Consultation
	json.Unmarshal(rec.Body.Bytes(), &con)
	if con.ID == "" {
		t.Error("expected ID to be set")
	}
}

func TestHandler_CreateConsultation_DanglingDepartment(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patient_id":"pat-1","problem":"chest pain","department_id":"missing"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	if err := h.CreateConsultation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ChatHistory_RequiresBothParties(t *testing.T) {
	h, e := newTestHandler()
	c, rec := newJSONContext(e, http.MethodGet, "/?patient_id=pat-1", "")
	if err := h.ChatHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without doctor_id, got %d", rec.Code)
	}
}

func TestHandler_ChatHistory(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateChat(context.Background(), &Chat{PatientID: "pat-1", DoctorID: "doc-1", Message: "hello"})
	c, rec := newJSONContext(e, http.MethodGet, "/?patient_id=pat-1&doctor_id=doc-1", "")
	if err := h.ChatHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []*Chat
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Errorf("expected 1 message, got %d", len(items))
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
		"POST:/api/v1/consultations",
		"GET:/api/v1/consultations/:id",
		"GET:/api/v1/patients/:id/consultations",
		"POST:/api/v1/chats",
		"GET:/api/v1/chats/:id",
		"GET:/api/v1/chats/history",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing route: %s", path)
		}
	}
}
