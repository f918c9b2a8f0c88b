package domain

import (
	"time"
)

type NotificationType string

const (
	NotificationUserRegistered       NotificationType = "user_registered"
	NotificationRegistrationAccepted NotificationType = "registration_accepted"
	NotificationRegistrationRejected NotificationType = "registration_rejected"
	NotificationTicketCreated        NotificationType = "ticket_created"
	NotificationTicketAssigned       NotificationType = "ticket_assigned"
	NotificationReportSubmitted      NotificationType = "report_submitted"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
