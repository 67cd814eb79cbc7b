package models

import "time"

// Supplier is the core vendor record. Field names on the wire follow the
// frontend contract (camelCase for supplier attributes).
type Supplier struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	Region            string    `json:"region"`
	Rating            float64   `json:"rating"`
	AIScore           int       `json:"aiScore"`
	Products          []string  `json:"products"`
	Certifications    []string  `json:"certifications"`
	WalmartVerified   bool      `json:"walmartVerified"`
	YearsInBusiness   int       `json:"yearsInBusiness"`
	ProjectsCompleted int       `json:"projectsCompleted"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	CreatedBy         string    `json:"created_by,omitempty"`
	UpdatedBy         string    `json:"updated_by,omitempty"`
}
