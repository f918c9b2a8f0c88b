package domain

import (
	"time"
)

type Feedback struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserRole  UserRole  `json:"user_role"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateFeedbackDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}
