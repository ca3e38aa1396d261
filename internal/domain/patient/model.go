// Package patient manages patient profiles and their aggregated
// medical records.
package patient

// EmergencyContact is the person to reach when the patient cannot be.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Patient is a patient profile. Owner is the identity of the caller
// that created the record.
type Patient struct {
	ID                 string           `json:"id"`
	Owner              string           `json:"owner"`
	Name               string           `json:"name"`
	Age                int              `json:"age"`
	Gender             string           `json:"gender"`
	Phone              string           `json:"phone"`
	Email              string           `json:"email"`
	Address            string           `json:"address"`
	EmergencyContact   EmergencyContact `json:"emergency_contact"`
	Allergies          []string         `json:"allergies"`
	CurrentMedications []string         `json:"current_medications"`
	MedicalHistory     []string         `json:"medical_history"`
}

// Patch is a partial update. Nil fields keep their prior values.
type Patch struct {
	Name               *string           `json:"name"`
	Age                *int              `json:"age"`
	Gender             *string           `json:"gender"`
	Phone              *string           `json:"phone"`
	Email              *string           `json:"email"`
	Address            *string           `json:"address"`
	EmergencyContact   *EmergencyContact `json:"emergency_contact"`
	Allergies          *[]string         `json:"allergies"`
	CurrentMedications *[]string         `json:"current_medications"`
	MedicalHistory     *[]string         `json:"medical_history"`
}

// Apply merges the patch over the patient.
func (p *Patient) Apply(patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.EmergencyContact != nil {
		p.EmergencyContact = *patch.EmergencyContact
	}
	if patch.Allergies != nil {
		p.Allergies = *patch.Allergies
	}
	if patch.CurrentMedications != nil {
		p.CurrentMedications = *patch.CurrentMedications
	}
	if patch.MedicalHistory != nil {
		p.MedicalHistory = *patch.MedicalHistory
	}
}

// MedicalRecord aggregates a patient's clinical history. It is keyed by
// patient id and replaced wholesale on every write.
type MedicalRecord struct {
	PatientID         string   `json:"patient_id"`
	ConsultationNotes []string `json:"consultation_notes"`
	Prescriptions     []string `json:"prescriptions"`
	LabResults        []string `json:"lab_results"`
	Immunizations     []string `json:"immunizations"`
}
