// Package scheduling manages appointments between patients and doctors.
package scheduling

const (
	StatusScheduled = "scheduled"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// Appointment is a booked slot between a patient and a doctor. Status
// starts as "scheduled"; VideoLink is attached once the call is set up.
type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	Reason          string `json:"reason"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	VideoLink       string `json:"video_link"`
}

// Patch is a partial update. Reference fields are not re-checked.
type Patch struct {
	Reason          *string `json:"reason"`
	AppointmentTime *string `json:"appointment_time"`
	Status          *string `json:"status"`
	VideoLink       *string `json:"video_link"`
}

// Apply merges the patch over the appointment.
func (a *Appointment) Apply(p Patch) {
	if p.Reason != nil {
		a.Reason = *p.Reason
	}
	if p.AppointmentTime != nil {
		a.AppointmentTime = *p.AppointmentTime
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.VideoLink != nil {
		a.VideoLink = *p.VideoLink
	}
}
