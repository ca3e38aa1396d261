// Package consultation manages consultation requests and the chat
// messages exchanged around them.
package consultation

import "time"

// Consultation is a patient's request for care routed to a department.
type Consultation struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	Problem      string `json:"problem"`
	DepartmentID string `json:"department_id"`
}

// Chat is one message between a patient and a doctor. Timestamp is
// stamped server-side at creation.
type Chat struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
