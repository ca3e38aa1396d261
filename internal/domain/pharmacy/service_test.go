package pharmacy

import (
	"context"
	"testing"
	"time"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

type stubDirectory struct {
	doctors map[string]bool
}

func (s *stubDirectory) DoctorExists(_ context.Context, id string) (bool, error) {
	return s.doctors[id], nil
}

type stubPatients struct {
	patients map[string]bool
}

func (s *stubPatients) PatientExists(_ context.Context, id string) (bool, error) {
	return s.patients[id], nil
}

func newTestService() *Service {
	dir := &stubDirectory{doctors: map[string]bool{"doc-1": true}}
	pats := &stubPatients{patients: map[string]bool{"pat-1": true}}
	return NewService(NewKVPrescriptionRepo(kv.NewMemoryStore()), dir, pats)
}

func validPrescription() *Prescription {
	return &Prescription{
		PatientID:    "pat-1",
		DoctorID:     "doc-1",
		Medications:  []string{"amoxicillin 500mg"},
		Instructions: "three times daily after meals",
	}
}

func TestCreatePrescription_StampsIssuedAt(t *testing.T) {
	svc := newTestService()
	in := validPrescription()
	in.IssuedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now().UTC()
	p, err := svc.CreatePrescription(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IssuedAt.Before(before) {
		t.Errorf("issued_at must be stamped server-side, got %v", p.IssuedAt)
	}
	if p.ID == "" {
		t.Error("expected ID to be set")
	}
}

func TestCreatePrescription_EmptyMedications(t *testing.T) {
	svc := newTestService()
	in := validPrescription()
	in.Medications = nil
	_, err := svc.CreatePrescription(context.Background(), in)
	if apperr.KindOf(err) != apperr.KindInvalidPayload {
		t.Fatalf("expected invalid_payload, got %v", err)
	}
}

func TestCreatePrescription_MissingInstructions(t *testing.T) {
	svc := newTestService()
	in := validPrescription()
	in.Instructions = ""
	_, err := svc.CreatePrescription(context.Background(), in)
	if apperr.KindOf(err) != apperr.KindInvalidPayload {
		t.Fatalf("expected invalid_payload, got %v", err)
	}
}

func TestCreatePrescription_DanglingRefs(t *testing.T) {
	svc := newTestService()
	bad := validPrescription()
	bad.PatientID = "missing"
	if _, err := svc.CreatePrescription(context.Background(), bad); apperr.KindOf(err) != apperr.KindInvalidPayload {
		t.Errorf("expected invalid_payload for dangling patient, got %v", err)
	}
	bad = validPrescription()
	bad.DoctorID = "missing"
	if _, err := svc.CreatePrescription(context.Background(), bad); apperr.KindOf(err) != apperr.KindInvalidPayload {
		t.Errorf("expected invalid_payload for dangling doctor, got %v", err)
	}
	if _, err := svc.ListPrescriptionsByPatient(context.Background(), "pat-1"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Error("failed creates must not mutate the store")
	}
}

func TestGetPrescription_RoundTrip(t *testing.T) {
	svc := newTestService()
	p, _ := svc.CreatePrescription(context.Background(), validPrescription())
	got, err := svc.GetPrescription(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Medications) != 1 || got.Instructions != "three times daily after meals" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestListPrescriptionsByPatient(t *testing.T) {
	dir := &stubDirectory{doctors: map[string]bool{"doc-1": true}}
	pats := &stubPatients{patients: map[string]bool{"pat-1": true, "pat-2": true}}
	svc := NewService(NewKVPrescriptionRepo(kv.NewMemoryStore()), dir, pats)

	first := validPrescription()
	svc.CreatePrescription(context.Background(), first)
	other := validPrescription()
	other.PatientID = "pat-2"
	svc.CreatePrescription(context.Background(), other)

	items, err := svc.ListPrescriptionsByPatient(context.Background(), "pat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(items))
	}
}

func TestListPrescriptionsByPatient_EmptyIsNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.ListPrescriptionsByPatient(context.Background(), "pat-1")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}
