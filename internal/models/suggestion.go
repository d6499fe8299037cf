package models

import "time"

// Suggestion is an append-only feedback record from the public contact form.
// The email is free text supplied by the submitter and is not tied to a User.
type Suggestion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"required"`
	Message   string    `json:"message" gorm:"type:text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
