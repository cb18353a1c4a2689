package models

import "time"

// Group maps one teacher to many students within a college/department.
// Membership is by student identifier, not by embedding.
type Group struct {
	GroupID    string    `json:"_id" db:"id"`
	Name       string    `json:"name" db:"name"`
	College    string    `json:"college" db:"college"`
	Department string    `json:"department" db:"department"`
	Teacher    string    `json:"teacher" db:"teacher"`
	Students   []string  `json:"students" db:"students"`
	CreatedBy  string    `json:"createdBy" db:"created_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
