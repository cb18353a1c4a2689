package services

import (
	"context"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/repositories"
	"github.com/nandan/studenthub/internal/pkg/auth"
)

// StudentStore is the persistence surface student-facing services depend on.
// Mutate loads the document, applies fn, and writes it back under optimistic
// concurrency; fn must be a pure transformation of the passed student.
type StudentStore interface {
	Create(ctx context.Context, s *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Mutate(ctx context.Context, studentID string, fn func(*models.Student) error) (*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	ListWithPendingCertificates(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, term string, limit int) ([]*models.Student, error)
	ListByStudentIDs(ctx context.Context, studentIDs []string) ([]*models.Student, error)
	ListSummaries(ctx context.Context) ([]dto.StudentSummary, error)
}

// TeacherStore is the persistence surface for teacher accounts.
type TeacherStore interface {
	Create(ctx context.Context, t *models.Teacher) error
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
	ListAll(ctx context.Context) ([]*models.Teacher, error)
}

// AdminStore is the persistence surface for admin accounts.
type AdminStore interface {
	Create(ctx context.Context, a *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// CollegeStore is the persistence surface for colleges.
type CollegeStore interface {
	Create(ctx context.Context, c *models.College) error
	GetByID(ctx context.Context, id string) (*models.College, error)
	GetByName(ctx context.Context, name string) (*models.College, error)
	ListAll(ctx context.Context) ([]*models.College, error)
	AddDepartment(ctx context.Context, collegeID string, dept models.Department) (*models.College, error)
}

// GroupStore is the persistence surface for student groups.
type GroupStore interface {
	Create(ctx context.Context, g *models.Group) error
	GetByID(ctx context.Context, id string) (*models.Group, error)
	ListByCreatedBy(ctx context.Context, createdBy string) ([]*models.Group, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.Group, error)
	Update(ctx context.Context, g *models.Group) error
}

// MessageStore is the persistence surface for group messages.
type MessageStore interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ListForStudent(ctx context.Context, studentID string) ([]*models.Message, error)
	MarkRead(ctx context.Context, messageID, studentID string) error
	UnreadCount(ctx context.Context, studentID string) (int, error)
}

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	StudentService     *StudentService
	TeacherService     *TeacherService
	CertificateService *CertificateService
	ProjectService     *ProjectService
	MarksService       *MarksService
	CollegeService     *CollegeService
	GroupService       *GroupService
	MessageService     *MessageService
}

// NewServices wires every service onto the shared repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(repos.StudentRepository, repos.TeacherRepository,
			repos.AdminRepository, repos.CollegeRepository, jwtService),
		StudentService:     NewStudentService(repos.StudentRepository),
		TeacherService:     NewTeacherService(repos.TeacherRepository),
		CertificateService: NewCertificateService(repos.StudentRepository),
		ProjectService:     NewProjectService(repos.StudentRepository),
		MarksService:       NewMarksService(repos.StudentRepository),
		CollegeService:     NewCollegeService(repos.CollegeRepository),
		GroupService:       NewGroupService(repos.GroupRepository),
		MessageService:     NewMessageService(repos.MessageRepository, repos.GroupRepository, repos.StudentRepository),
	}
}
