package models

import "time"

// Teacher is a reviewer account.
type Teacher struct {
	ID          int64     `json:"-" db:"id"`
	TeacherID   string    `json:"teacherId" db:"teacher_id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Department  string    `json:"department" db:"department"`
	College     string    `json:"college" db:"college"`
	Designation string    `json:"designation" db:"designation"`
	Experience  int       `json:"experience" db:"experience"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
