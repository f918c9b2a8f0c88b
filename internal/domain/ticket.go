package domain

import (
	"time"
)

type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusResolved TicketStatus = "resolved"
)

// Ticket is a patient-submitted triage request.
type Ticket struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	BP               string       `json:"bp,omitempty"`
	SugarLevel       string       `json:"sugar_level,omitempty"`
	Weight           *float64     `json:"weight,omitempty"`
	Symptoms         string       `json:"symptoms,omitempty"`
	Status           TicketStatus `json:"status"`
	PatientID        int64        `json:"patient_id"`
	AssignedDoctorID *int64       `json:"assigned_doctor_id,omitempty"`
	ImageURL         string       `json:"image_url,omitempty"`
	DocsURL          string       `json:"docs_url,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type CreateTicketDTO struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	BP          string   `json:"bp"`
	SugarLevel  string   `json:"sugar_level"`
	Weight      *float64 `json:"weight"`
	Symptoms    string   `json:"symptoms"`
}

type UpdateTicketDTO struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	BP          *string  `json:"bp"`
	SugarLevel  *string  `json:"sugar_level"`
	Weight      *float64 `json:"weight"`
	Symptoms    *string  `json:"symptoms"`
	ImageURL    *string  `json:"image_url"`
	DocsURL     *string  `json:"docs_url"`
}

func (d UpdateTicketDTO) IsEmpty() bool {
	return d.Title == nil && d.Description == nil && d.BP == nil &&
		d.SugarLevel == nil && d.Weight == nil && d.Symptoms == nil &&
		d.ImageURL == nil && d.DocsURL == nil
}
