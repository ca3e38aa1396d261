// Package pharmacy manages prescriptions issued by doctors.
package pharmacy

import "time"

// Prescription is an issued set of medications. IssuedAt is stamped
// server-side at creation and never changes.
type Prescription struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	DoctorID     string    `json:"doctor_id"`
	Medications  []string  `json:"medications"`
	Instructions string    `json:"instructions"`
	IssuedAt     time.Time `json:"issued_at"`
}
