package models

import "time"

// Goal is a free-text personal goal. Creating and completing goals both pay
// out once per goal id; un-completing never refunds.
type Goal struct {
	ID          string     `json:"id" validate:"required"`
	Text        string     `json:"text" validate:"required"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
