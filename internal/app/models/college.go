package models

import "time"

// College groups departments under one institution. Institution names are
// unique; admin registration creates the pair lazily.
type College struct {
	CollegeID   string       `json:"_id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Code        string       `json:"code" db:"code"`
	Address     string       `json:"address" db:"address"`
	Departments []Department `json:"departments" db:"departments"`
	CreatedBy   string       `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}

// Department is a named sub-unit of a college.
type Department struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
