package domain

import (
	"time"
)

// Report is a doctor's diagnosis tied one-to-one to a ticket.
type Report struct {
	ID              int64     `json:"id"`
	TicketID        int64     `json:"ticket_id"`
	DoctorID        int64     `json:"doctor_id"`
	Diagnosis       string    `json:"diagnosis"`
	Recommendations string    `json:"recommendations"`
	Medications     []string  `json:"medications"`
	ImageURL        string    `json:"image_url,omitempty"`
	DocsURL         string    `json:"docs_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateReportDTO struct {
	Diagnosis       string   `json:"diagnosis" binding:"required"`
	Recommendations string   `json:"recommendations" binding:"required"`
	Medications     []string `json:"medications"`
	ImageURL        string   `json:"image_url"`
	DocsURL         string   `json:"docs_url"`
}
