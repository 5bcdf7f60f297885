// Package types provides type definitions for structured data exchanged with the Job-Description Service.
package types

import (
	"fmt"
	"time"
)

// Status is the lifecycle status of a job description.
type Status string

// Lifecycle statuses. Archived is terminal.
const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusArchived Status = "archived"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusArchived
}

// JobInformation holds the identifying fields of a position.
// Wire names follow the service's Indonesian field naming.
type JobInformation struct {
	Posisi     string `json:"posisi"`
	Divisi     string `json:"divisi,omitempty"`
	Departemen string `json:"departemen"`
}

// DescriptionItem is one numbered duty in the job description body.
type DescriptionItem struct {
	No          int    `json:"no"`
	Description string `json:"description"`
}

// Relationships lists the internal and external working relationships of a position.
type Relationships struct {
	Internal []string `json:"internal"`
	External []string `json:"external"`
}

// Education holds the education requirement of a position.
type Education struct {
	Level string   `json:"level"`
	Major []string `json:"major"`
}

// JobRequirements holds the qualification sections of a job description.
type JobRequirements struct {
	Pendidikan   Education `json:"pendidikan"`
	Keterampilan []string  `json:"keterampilan"`
	Pelatihan    []string  `json:"pelatihan"`
}

// VersionSnapshot is one immutable entry in a job description's version history.
type VersionSnapshot struct {
	ID                string    `json:"id,omitempty"`
	Version           int       `json:"version"`
	ChangedBy         string    `json:"changedBy"`
	ChangeDescription string    `json:"changeDescription,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// JobDescription is the root record managed by the Job-Description Service.
// Versions are ordered ascending by version number; Version always equals
// the number of entries in Versions.
type JobDescription struct {
	ID              string            `json:"id"`
	JobCode         string            `json:"jobCode"`
	Company         *Company          `json:"company,omitempty"`
	JobInformation  JobInformation    `json:"jobInformation"`
	Level           *JobLevel         `json:"level,omitempty"`
	Status          Status            `json:"status"`
	Version         int               `json:"version"`
	AIGenerated     bool              `json:"aiGenerated"`
	MainPurpose     string            `json:"mainPurpose"`
	JobDescriptions []DescriptionItem `json:"jobDescriptions,omitempty"`
	Relationships   Relationships     `json:"relationships"`
	JobRequirements JobRequirements   `json:"jobRequirements"`
	Versions        []VersionSnapshot `json:"versions,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	ApprovedAt      *time.Time        `json:"approvedAt,omitempty"`
	ApprovedBy      string            `json:"approvedBy,omitempty"`
}

// ValidateVersionLog checks the version-history invariants: version numbers
// start at 1, increase by exactly 1 per entry, and the record's Version equals
// the number of entries. An empty Versions list is accepted because list
// endpoints return records without their history.
func (jd *JobDescription) ValidateVersionLog() error {
	if jd.Version < 1 {
		return fmt.Errorf("version must be positive, got %d", jd.Version)
	}
	if len(jd.Versions) == 0 {
		return nil
	}
	if len(jd.Versions) != jd.Version {
		return fmt.Errorf("version %d does not match %d history entries", jd.Version, len(jd.Versions))
	}
	for i, snap := range jd.Versions {
		if snap.Version != i+1 {
			return fmt.Errorf("history entry %d has version %d, want %d", i, snap.Version, i+1)
		}
	}
	return nil
}

// CurrentSnapshot returns the history entry matching the record's current
// version, or nil if the history is absent.
func (jd *JobDescription) CurrentSnapshot() *VersionSnapshot {
	for i := range jd.Versions {
		if jd.Versions[i].Version == jd.Version {
			return &jd.Versions[i]
		}
	}
	return nil
}
