package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func newAuthedContext(e *echo.Echo, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validPatientJSON = `{
	"name": "Alice Brown",
	"age": 34,
	"gender": "female",
	"phone": "555-0100",
	"email": "alice@example.com",
	"address": "12 Main St",
	"emergency_contact": {"name": "Bob Brown", "phone": "555-0101", "relationship": "spouse"}
}`

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()
	c, rec := newAuthedContext(e, http.MethodPost, "/", validPatientJSON, "user-7")
	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var p Patient
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Owner != "user-7" {
		t.Errorf("expected owner user-7, got %q", p.Owner)
	}
}

func TestHandler_CreatePatient_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	c, rec := newAuthedContext(e, http.MethodPost, "/", `{"name":"Alice"}`, "user-7")
	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var body map[string]map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"]["message"] != "missing required fields" {
		t.Errorf("expected coarse message, got %v", body["error"])
	}
}

func TestHandler_GetMyPatient(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreatePatient(context.Background(), "user-7", validPatient())
	c, rec := newAuthedContext(e, http.MethodGet, "/", "", "user-7")
	if err := h.GetMyPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetPatient_NotFound(t *testing.T) {
	h, e := newTestHandler()
	c, rec := newAuthedContext(e, http.MethodGet, "/", "", "user-7")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.GetPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_UpsertMedicalRecord_UsesPathPatient(t *testing.T) {
	h, e := newTestHandler()
	p, _ := h.svc.CreatePatient(context.Background(), "user-7", validPatient())
	body := `{"patient_id":"spoofed","immunizations":["flu 2026"]}`
	c, rec := newAuthedContext(e, http.MethodPut, "/", body, "doc-1")
	c.SetParamNames("id")
	c.SetParamValues(p.ID)
	if err := h.UpsertMedicalRecord(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got MedicalRecord
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.PatientID != p.ID {
		t.Errorf("patient id must come from the path, got %q", got.PatientID)
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
		"POST:/api/v1/patients",
		"GET:/api/v1/patients",
		"GET:/api/v1/patients/me",
		"GET:/api/v1/patients/:id",
		"PUT:/api/v1/patients/:id",
		"DELETE:/api/v1/patients/:id",
		"GET:/api/v1/patients/:id/medical-record",
		"PUT:/api/v1/patients/:id/medical-record",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing route: %s", path)
		}
	}
}
