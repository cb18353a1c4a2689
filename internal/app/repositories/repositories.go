package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	TeacherRepository *TeacherRepository
	AdminRepository   *AdminRepository
	CollegeRepository *CollegeRepository
	GroupRepository   *GroupRepository
	MessageRepository *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		AdminRepository:   NewAdminRepository(db),
		CollegeRepository: NewCollegeRepository(db),
		GroupRepository:   NewGroupRepository(db),
		MessageRepository: NewMessageRepository(db),
	}
}
