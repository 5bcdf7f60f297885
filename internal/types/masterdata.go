package types

// Company is an organizational unit (SBU) owning departments and job descriptions.
type Company struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// DepartmentType classifies a department explicitly rather than by inspecting
// its code string.
type DepartmentType string

// Known department types.
const (
	DepartmentTypeDepartment DepartmentType = "department"
	DepartmentTypeDivision   DepartmentType = "division"
)

// Department is reference data scoped to exactly one company. A department
// list fetched for one company must never be presented for another.
type Department struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"companyId"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Type      DepartmentType `json:"type,omitempty"`
	IsActive  bool           `json:"isActive"`
}

// JobLevel is reference data describing a seniority level.
type JobLevel struct {
	ID       string `json:"id"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
