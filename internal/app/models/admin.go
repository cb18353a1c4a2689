package models

import "time"

// Admin is an institution administrator account.
type Admin struct {
	ID          int64     `json:"-" db:"id"`
	AdminID     string    `json:"adminId" db:"admin_id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	Institution string    `json:"institution" db:"institution"`
	Department  string    `json:"department" db:"department"`
	Role        string    `json:"role" db:"role"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
