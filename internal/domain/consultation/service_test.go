package consultation

import (
	"context"
	"testing"
	"time"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

// -- Stub existence checkers --

type stubDirectory struct {
	departments map[string]bool
	doctors     map[string]bool
}

func (s *stubDirectory) DepartmentExists(_ context.Context, id string) (bool, error) {
	return s.departments[id], nil
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
	store := kv.NewMemoryStore()
	dir := &stubDirectory{
		departments: map[string]bool{"dept-1": true},
		doctors:     map[string]bool{"doc-1": true},
	}
	pats := &stubPatients{patients: map[string]bool{"pat-1": true}}
	return NewService(NewKVConsultationRepo(store), NewKVChatRepo(store), dir, pats)
}

func TestCreateConsultation_RoundTrip(t *testing.T) {
	svc := newTestService()
	c, err := svc.CreateConsultation(context.Background(), &Consultation{
		PatientID: "pat-1", Problem: "chest pain", DepartmentID: "dept-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Error("expected ID to be set")
	}
	got, err := svc.GetConsultation(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Problem != "chest pain" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestCreateConsultation_MissingProblem(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateConsultation(context.Background(), &Consultation{
		PatientID: "pat-1", DepartmentID: "dept-1",
	})
	if apperr.KindOf(err) != apperr.KindInvalidPayload {
		t.Fatalf("expected invalid_payload, got %v", err)
	}
}

func TestCreateConsultation_DanglingRefs(t *testing.T) {
	svc := newTestService()
	cases := []Consultation{
		{PatientID: "missing", Problem: "p", DepartmentID: "dept-1"},
		{PatientID: "pat-1", Problem: "p", DepartmentID: "missing"},
	}
	for _, c := range cases {
		if _, err := svc.CreateConsultation(context.Background(), &c); apperr.KindOf(err) != apperr.KindInvalidPayload {
			t.Errorf("expected invalid_payload for %+v, got %v", c, err)
		}
	}
	if _, err := svc.ListConsultationsByPatient(context.Background(), "pat-1"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Error("failed creates must not mutate the store")
	}
}

func TestListConsultationsByPatient(t *testing.T) {
	svc := newTestService()
	svc.CreateConsultation(context.Background(), &Consultation{PatientID: "pat-1", Problem: "a", DepartmentID: "dept-1"})
	svc.CreateConsultation(context.Background(), &Consultation{PatientID: "pat-1", Problem: "b", DepartmentID: "dept-1"})
	items, err := svc.ListConsultationsByPatient(context.Background(), "pat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 consultations, got %d", len(items))
	}
	if items[0].Problem != "a" || items[1].Problem != "b" {
		t.Error("expected insertion order")
	}
}

func TestCreateChat_StampsTimestamp(t *testing.T) {
	svc := newTestService()
	before := time.Now().UTC()
	c, err := svc.CreateChat(context.Background(), &Chat{
		PatientID: "pat-1", DoctorID: "doc-1", Message: "hello",
		Timestamp: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Timestamp.Before(before) {
		t.Errorf("timestamp must be stamped server-side, got %v", c.Timestamp)
	}
}

func TestCreateChat_DanglingDoctor(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateChat(context.Background(), &Chat{
		PatientID: "pat-1", DoctorID: "missing", Message: "hello",
	})
	if apperr.KindOf(err) != apperr.KindInvalidPayload {
		t.Fatalf("expected invalid_payload, got %v", err)
	}
}

func TestChatHistory_FiltersBothSides(t *testing.T) {
	svc := newTestService()
	dir := &stubDirectory{
		departments: map[string]bool{},
		doctors:     map[string]bool{"doc-1": true, "doc-2": true},
	}
	pats := &stubPatients{patients: map[string]bool{"pat-1": true, "pat-2": true}}
	store := kv.NewMemoryStore()
	svc = NewService(NewKVConsultationRepo(store), NewKVChatRepo(store), dir, pats)

	svc.CreateChat(context.Background(), &Chat{PatientID: "pat-1", DoctorID: "doc-1", Message: "first"})
	svc.CreateChat(context.Background(), &Chat{PatientID: "pat-1", DoctorID: "doc-2", Message: "other doctor"})
	svc.CreateChat(context.Background(), &Chat{PatientID: "pat-2", DoctorID: "doc-1", Message: "other patient"})
	svc.CreateChat(context.Background(), &Chat{PatientID: "pat-1", DoctorID: "doc-1", Message: "second"})

	items, err := svc.ChatHistory(context.Background(), "pat-1", "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(items))
	}
	if items[0].Message != "first" || items[1].Message != "second" {
		t.Error("expected messages in the order sent")
	}
}

func TestChatHistory_EmptyIsNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.ChatHistory(context.Background(), "pat-1", "doc-1")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}
