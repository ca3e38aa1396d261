// Package billing manages payments for appointments.
package billing

import "github.com/telecare/telecare/internal/platform/apperr"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ValidStatus reports whether s is a known payment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Outcome tags a status transition with its payment outcome kind.
// Pending transitions carry no outcome.
func Outcome(status string) apperr.Kind {
	switch status {
	case StatusCompleted:
		return apperr.KindPaymentCompleted
	case StatusFailed:
		return apperr.KindPaymentFailed
	}
	return ""
}

// Payment records a charge against an appointment. Status starts as
// "pending" and moves to "completed" or "failed".
type Payment struct {
	ID            string  `json:"id"`
	AppointmentID string  `json:"appointment_id"`
	PatientID     string  `json:"patient_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
}
