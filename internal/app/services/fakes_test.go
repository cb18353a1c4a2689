package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
)

// fakeStudentStore keeps student documents in memory. Mutate commits only
// when fn succeeds, matching the repository's transactional behavior.
type fakeStudentStore struct {
	students map[string]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	store := &fakeStudentStore{students: map[string]*models.Student{}}
	for _, s := range students {
		store.students[s.StudentID] = s
	}
	return store
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	for _, existing := range f.students {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.RollNumber == s.RollNumber && existing.College == s.College {
			return apperrors.ErrRollNumberAlreadyExists
		}
	}
	f.students[s.StudentID] = cloneStudent(s)
	return nil
}

func (f *fakeStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	s, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return cloneStudent(s), nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return cloneStudent(s), nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Mutate(_ context.Context, studentID string, fn func(*models.Student) error) (*models.Student, error) {
	s, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	working := cloneStudent(s)
	if err := fn(working); err != nil {
		return nil, err
	}
	working.Version++
	working.UpdatedAt = time.Now().UTC()
	f.students[studentID] = working
	return cloneStudent(working), nil
}

func (f *fakeStudentStore) ListAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, cloneStudent(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (f *fakeStudentStore) ListWithPendingCertificates(ctx context.Context) ([]*models.Student, error) {
	all, _ := f.ListAll(ctx)
	out := []*models.Student{}
	for _, s := range all {
		for _, c := range s.AcademicCertificates {
			if c.Status == models.StatusPending {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Search(ctx context.Context, term string, limit int) ([]*models.Student, error) {
	all, _ := f.ListAll(ctx)
	term = strings.ToLower(term)
	out := []*models.Student{}
	for _, s := range all {
		if len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.StudentID), term) ||
			strings.Contains(strings.ToLower(s.RollNumber), term) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) ListByStudentIDs(_ context.Context, studentIDs []string) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, id := range studentIDs {
		if s, ok := f.students[id]; ok {
			out = append(out, cloneStudent(s))
		}
	}
	return out, nil
}

func (f *fakeStudentStore) ListSummaries(ctx context.Context) ([]dto.StudentSummary, error) {
	all, _ := f.ListAll(ctx)
	out := make([]dto.StudentSummary, 0, len(all))
	for _, s := range all {
		out = append(out, dto.StudentSummary{
			StudentID:  s.StudentID,
			Name:       s.Name,
			Email:      s.Email,
			College:    s.College,
			Department: s.Department,
			Year:       s.Year,
			Semester:   s.Semester,
			CGPA:       s.CGPA,
		})
	}
	return out, nil
}

func cloneStudent(s *models.Student) *models.Student {
	raw, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	var out models.Student
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	out.Password = s.Password
	out.Version = s.Version
	return &out
}

type fakeTeacherStore struct {
	teachers map[string]*models.Teacher
}

func newFakeTeacherStore(teachers ...*models.Teacher) *fakeTeacherStore {
	store := &fakeTeacherStore{teachers: map[string]*models.Teacher{}}
	for _, t := range teachers {
		store.teachers[t.TeacherID] = t
	}
	return store
}

func (f *fakeTeacherStore) Create(_ context.Context, t *models.Teacher) error {
	for _, existing := range f.teachers {
		if existing.Email == t.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.teachers[t.TeacherID] = t
	return nil
}

func (f *fakeTeacherStore) GetByEmail(_ context.Context, email string) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherStore) ListAll(_ context.Context) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0, len(f.teachers))
	for _, t := range f.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeacherID < out[j].TeacherID })
	return out, nil
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: map[string]*models.Admin{}}
}

func (f *fakeAdminStore) Create(_ context.Context, a *models.Admin) error {
	for _, existing := range f.admins {
		if existing.Email == a.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.admins[a.AdminID] = a
	return nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

type fakeCollegeStore struct {
	colleges map[string]*models.College
}

func newFakeCollegeStore() *fakeCollegeStore {
	return &fakeCollegeStore{colleges: map[string]*models.College{}}
}

func (f *fakeCollegeStore) Create(_ context.Context, c *models.College) error {
	for _, existing := range f.colleges {
		if existing.Name == c.Name {
			return apperrors.ErrCollegeAlreadyExists
		}
	}
	f.colleges[c.CollegeID] = c
	return nil
}

func (f *fakeCollegeStore) GetByID(_ context.Context, id string) (*models.College, error) {
	c, ok := f.colleges[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return c, nil
}

func (f *fakeCollegeStore) GetByName(_ context.Context, name string) (*models.College, error) {
	for _, c := range f.colleges {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (f *fakeCollegeStore) ListAll(_ context.Context) ([]*models.College, error) {
	out := make([]*models.College, 0, len(f.colleges))
	for _, c := range f.colleges {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCollegeStore) AddDepartment(_ context.Context, collegeID string, dept models.Department) (*models.College, error) {
	c, ok := f.colleges[collegeID]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	c.Departments = append(c.Departments, dept)
	return c, nil
}

type fakeGroupStore struct {
	groups map[string]*models.Group
}

func newFakeGroupStore(groups ...*models.Group) *fakeGroupStore {
	store := &fakeGroupStore{groups: map[string]*models.Group{}}
	for _, g := range groups {
		store.groups[g.GroupID] = g
	}
	return store
}

func (f *fakeGroupStore) Create(_ context.Context, g *models.Group) error {
	f.groups[g.GroupID] = g
	return nil
}

func (f *fakeGroupStore) GetByID(_ context.Context, id string) (*models.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	return g, nil
}

func (f *fakeGroupStore) ListByCreatedBy(_ context.Context, createdBy string) ([]*models.Group, error) {
	out := []*models.Group{}
	for _, g := range f.groups {
		if g.CreatedBy == createdBy {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGroupStore) ListByTeacher(_ context.Context, teacherID string) ([]*models.Group, error) {
	out := []*models.Group{}
	for _, g := range f.groups {
		if g.Teacher == teacherID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGroupStore) Update(_ context.Context, g *models.Group) error {
	if _, ok := f.groups[g.GroupID]; !ok {
		return apperrors.ErrGroupNotFound
	}
	f.groups[g.GroupID] = g
	return nil
}

// fakeMessageStore lists newest first, like the repository's ORDER BY.
type fakeMessageStore struct {
	messages []*models.Message
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{}
}

func (f *fakeMessageStore) Create(_ context.Context, m *models.Message) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageStore) GetByID(_ context.Context, id string) (*models.Message, error) {
	for _, m := range f.messages {
		if m.MessageID == id {
			return m, nil
		}
	}
	return nil, apperrors.ErrMessageNotFound
}

func (f *fakeMessageStore) ListForStudent(_ context.Context, studentID string) ([]*models.Message, error) {
	out := []*models.Message{}
	for i := len(f.messages) - 1; i >= 0; i-- {
		m := f.messages[i]
		for _, r := range m.Recipients {
			if r.StudentID == studentID {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeMessageStore) MarkRead(ctx context.Context, messageID, studentID string) error {
	m, err := f.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	for i := range m.Recipients {
		if m.Recipients[i].StudentID != studentID {
			continue
		}
		if !m.Recipients[i].IsRead {
			now := time.Now().UTC()
			m.Recipients[i].IsRead = true
			m.Recipients[i].ReadAt = &now
		}
		return nil
	}
	return apperrors.ErrRecipientNotFound
}

func (f *fakeMessageStore) UnreadCount(_ context.Context, studentID string) (int, error) {
	count := 0
	for _, m := range f.messages {
		for _, r := range m.Recipients {
			if r.StudentID == studentID && !r.IsRead {
				count++
			}
		}
	}
	return count, nil
}
