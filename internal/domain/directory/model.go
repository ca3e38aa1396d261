// Package directory manages the clinic's departments and doctors.
package directory

// Department groups doctors under a named specialty. Names are unique
// across all departments.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Doctor is a practitioner profile. Owner is the identity of the caller
// that created the record.
type Doctor struct {
	ID           string `json:"id"`
	Owner        string `json:"owner"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Image        string `json:"image"`
	Available    bool   `json:"available"`
}

// DepartmentPatch is a partial update. Nil fields keep their prior
// values; present fields win.
type DepartmentPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply merges the patch over the department.
func (d *Department) Apply(p DepartmentPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
}

// DoctorPatch is a partial update. Reference fields are not re-checked
// against the department store.
type DoctorPatch struct {
	Name         *string `json:"name"`
	DepartmentID *string `json:"department_id"`
	Image        *string `json:"image"`
}

// Apply merges the patch over the doctor.
func (d *Doctor) Apply(p DoctorPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.DepartmentID != nil {
		d.DepartmentID = *p.DepartmentID
	}
	if p.Image != nil {
		d.Image = *p.Image
	}
}
