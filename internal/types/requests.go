package types

import "github.com/go-playground/validator/v10"

// CheckSimilarityRequest asks the service for existing job descriptions
// similar to a proposed new position.
type CheckSimilarityRequest struct {
	Posisi     string `json:"posisi" validate:"required"`
	Departemen string `json:"departemen" validate:"required"`
	Divisi     string `json:"divisi,omitempty"`
	CompanyID  string `json:"companyId,omitempty"`
}

// GenerateRequest asks the service to create a new AI-generated job
// description. Wire names for the optional free-text fields follow the
// service's naming.
type GenerateRequest struct {
	CompanyID        string `json:"companyId" validate:"required"`
	Posisi           string `json:"posisi" validate:"required"`
	Divisi           string `json:"divisi,omitempty"`
	Departemen       string `json:"departemen" validate:"required"`
	Level            string `json:"level,omitempty"`
	ReportsTo        string `json:"atasan_structural,omitempty"`
	ShortDescription string `json:"deskripsi_singkat,omitempty"`
}

// UpdateRequest edits an existing job description. ChangeDescription is a
// hard precondition: the service appends it to the version history.
type UpdateRequest struct {
	Posisi            string `json:"posisi,omitempty"`
	Divisi            string `json:"divisi,omitempty"`
	Departemen        string `json:"departemen,omitempty"`
	Level             string `json:"level,omitempty"`
	MainPurpose       string `json:"mainPurpose,omitempty"`
	ChangedBy         string `json:"changedBy" validate:"required"`
	ChangeDescription string `json:"changeDescription" validate:"required"`
}

// ApproveRequest moves a draft job description to approved.
type ApproveRequest struct {
	ApprovedBy string `json:"approvedBy" validate:"required"`
}

// RejectRequest moves an approved job description to rejected.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Validate validates the CheckSimilarityRequest using the validator.
func (r *CheckSimilarityRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateRequest using the validator.
func (r *UpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ApproveRequest using the validator.
func (r *ApproveRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RejectRequest using the validator.
func (r *RejectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
