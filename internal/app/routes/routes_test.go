package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/controllers"
	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/auth"
)

// In-memory stores backing the full router under test.

type memStudents struct{ byID map[string]*models.Student }

func (m *memStudents) Create(_ context.Context, s *models.Student) error {
	for _, existing := range m.byID {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.byID[s.StudentID] = s
	return nil
}

func (m *memStudents) GetByStudentID(_ context.Context, id string) (*models.Student, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *memStudents) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range m.byID {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *memStudents) Mutate(ctx context.Context, id string, fn func(*models.Student) error) (*models.Student, error) {
	s, err := m.GetByStudentID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *memStudents) ListAll(_ context.Context) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range m.byID {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStudents) ListWithPendingCertificates(ctx context.Context) ([]*models.Student, error) {
	all, _ := m.ListAll(ctx)
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

func (m *memStudents) Search(ctx context.Context, term string, limit int) ([]*models.Student, error) {
	all, _ := m.ListAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStudents) ListByStudentIDs(_ context.Context, ids []string) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, id := range ids {
		if s, ok := m.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStudents) ListSummaries(ctx context.Context) ([]dto.StudentSummary, error) {
	all, _ := m.ListAll(ctx)
	out := make([]dto.StudentSummary, 0, len(all))
	for _, s := range all {
		out = append(out, dto.StudentSummary{StudentID: s.StudentID, Name: s.Name, CGPA: s.CGPA})
	}
	return out, nil
}

type memTeachers struct{ byID map[string]*models.Teacher }

func (m *memTeachers) Create(_ context.Context, t *models.Teacher) error {
	m.byID[t.TeacherID] = t
	return nil
}

func (m *memTeachers) GetByEmail(_ context.Context, email string) (*models.Teacher, error) {
	for _, t := range m.byID {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (m *memTeachers) ListAll(_ context.Context) ([]*models.Teacher, error) {
	out := []*models.Teacher{}
	for _, t := range m.byID {
		out = append(out, t)
	}
	return out, nil
}

type memAdmins struct{ byID map[string]*models.Admin }

func (m *memAdmins) Create(_ context.Context, a *models.Admin) error {
	m.byID[a.AdminID] = a
	return nil
}

func (m *memAdmins) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range m.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

type memColleges struct{ byID map[string]*models.College }

func (m *memColleges) Create(_ context.Context, c *models.College) error {
	for _, existing := range m.byID {
		if existing.Name == c.Name {
			return apperrors.ErrCollegeAlreadyExists
		}
	}
	m.byID[c.CollegeID] = c
	return nil
}

func (m *memColleges) GetByID(_ context.Context, id string) (*models.College, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (m *memColleges) GetByName(_ context.Context, name string) (*models.College, error) {
	for _, c := range m.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (m *memColleges) ListAll(_ context.Context) ([]*models.College, error) {
	out := []*models.College{}
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memColleges) AddDepartment(ctx context.Context, id string, dept models.Department) (*models.College, error) {
	c, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Departments = append(c.Departments, dept)
	return c, nil
}

type memGroups struct{ byID map[string]*models.Group }

func (m *memGroups) Create(_ context.Context, g *models.Group) error {
	m.byID[g.GroupID] = g
	return nil
}

func (m *memGroups) GetByID(_ context.Context, id string) (*models.Group, error) {
	if g, ok := m.byID[id]; ok {
		return g, nil
	}
	return nil, apperrors.ErrGroupNotFound
}

func (m *memGroups) ListByCreatedBy(_ context.Context, createdBy string) ([]*models.Group, error) {
	out := []*models.Group{}
	for _, g := range m.byID {
		if g.CreatedBy == createdBy {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGroups) ListByTeacher(_ context.Context, teacherID string) ([]*models.Group, error) {
	out := []*models.Group{}
	for _, g := range m.byID {
		if g.Teacher == teacherID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGroups) Update(_ context.Context, g *models.Group) error {
	if _, ok := m.byID[g.GroupID]; !ok {
		return apperrors.ErrGroupNotFound
	}
	m.byID[g.GroupID] = g
	return nil
}

type memMessages struct{ all []*models.Message }

func (m *memMessages) Create(_ context.Context, msg *models.Message) error {
	msg.CreatedAt = time.Now().UTC()
	m.all = append(m.all, msg)
	return nil
}

func (m *memMessages) GetByID(_ context.Context, id string) (*models.Message, error) {
	for _, msg := range m.all {
		if msg.MessageID == id {
			return msg, nil
		}
	}
	return nil, apperrors.ErrMessageNotFound
}

func (m *memMessages) ListForStudent(_ context.Context, studentID string) ([]*models.Message, error) {
	out := []*models.Message{}
	for i := len(m.all) - 1; i >= 0; i-- {
		for _, r := range m.all[i].Recipients {
			if r.StudentID == studentID {
				out = append(out, m.all[i])
				break
			}
		}
	}
	return out, nil
}

func (m *memMessages) MarkRead(ctx context.Context, messageID, studentID string) error {
	msg, err := m.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	for i := range msg.Recipients {
		if msg.Recipients[i].StudentID == studentID {
			if !msg.Recipients[i].IsRead {
				now := time.Now().UTC()
				msg.Recipients[i].IsRead = true
				msg.Recipients[i].ReadAt = &now
			}
			return nil
		}
	}
	return apperrors.ErrRecipientNotFound
}

func (m *memMessages) UnreadCount(_ context.Context, studentID string) (int, error) {
	count := 0
	for _, msg := range m.all {
		for _, r := range msg.Recipients {
			if r.StudentID == studentID && !r.IsRead {
				count++
			}
		}
	}
	return count, nil
}

type testEnv struct {
	router   *gin.Engine
	students *memStudents
	groups   *memGroups
	jwt      *auth.JWTService
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	students := &memStudents{byID: map[string]*models.Student{}}
	teachers := &memTeachers{byID: map[string]*models.Teacher{}}
	admins := &memAdmins{byID: map[string]*models.Admin{}}
	colleges := &memColleges{byID: map[string]*models.College{}}
	groups := &memGroups{byID: map[string]*models.Group{}}
	messages := &memMessages{}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studenthub.test",
	})

	authService := services.NewAuthService(students, teachers, admins, colleges, jwtService)
	studentService := services.NewStudentService(students)
	teacherService := services.NewTeacherService(teachers)
	certificateService := services.NewCertificateService(students)
	projectService := services.NewProjectService(students)
	marksService := services.NewMarksService(students)
	collegeService := services.NewCollegeService(colleges)
	groupService := services.NewGroupService(groups)
	messageService := services.NewMessageService(messages, groups, students)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService),
		controllers.NewStudentController(studentService, teacherService),
		controllers.NewCertificateController(certificateService),
		controllers.NewProjectController(projectService),
		controllers.NewMarksController(marksService, studentService),
		controllers.NewCollegeController(collegeService),
		controllers.NewGroupController(groupService),
		controllers.NewMessageController(messageService),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &testEnv{router: router, students: students, groups: groups, jwt: jwtService}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestConnectivityProbe(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "Backend connected successfully!" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestStudentRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/register", gin.H{
		"name":            "Asha Verma",
		"email":           "asha@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"college":         "Madras Institute of Technology",
		"department":      "Computer Science",
		"year":            2,
		"semester":        3,
		"rollNumber":      "CS2024-017",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Student registered successfully" {
		t.Errorf("message = %q", body["message"])
	}
	studentID, _ := body["studentId"].(string)
	if studentID == "" {
		t.Fatal("no studentId in register response")
	}

	w = env.do(t, http.MethodPost, "/api/login", gin.H{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	if body["message"] != "Login successful" {
		t.Errorf("message = %q", body["message"])
	}
	if body["studentId"] != studentID {
		t.Errorf("studentId = %v, want %q", body["studentId"], studentID)
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("no token in login response")
	}

	// the document endpoint must never expose the password
	w = env.do(t, http.MethodGet, "/api/students/"+studentID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get student status = %d, want 200", w.Code)
	}
	if _, ok := decodeBody(t, w)["password"]; ok {
		t.Error("student document leaks the password field")
	}
}

func TestLoginWrongPasswordAnswers400(t *testing.T) {
	env := newTestEnv()

	env.do(t, http.MethodPost, "/api/register", gin.H{
		"name":            "Asha Verma",
		"email":           "asha@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"college":         "MIT",
		"department":      "CS",
		"year":            2,
		"semester":        3,
		"rollNumber":      "CS-01",
	})

	w := env.do(t, http.MethodPost, "/api/login", gin.H{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] == "" {
		t.Error("no error field in body")
	}
}

func TestUnknownStudentAnswers404(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/students/NOPE123", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "student not found" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestReviewEndpointMessages(t *testing.T) {
	env := newTestEnv()
	env.students.byID["MIT111aaa"] = &models.Student{
		StudentID: "MIT111aaa",
		Name:      "Asha",
		Skills:    map[string]int{},
		AcademicCertificates: []models.AcademicCertificate{{
			ID:     "cert-1",
			Skills: []string{"AWS"},
			Status: models.StatusPending,
		}},
	}

	w := env.do(t, http.MethodPut, "/api/teacher/academic-certificates/MIT111aaa/cert-1/review", gin.H{
		"status":   "approved",
		"feedback": "Well done",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "Certificate approved successfully" {
		t.Errorf("message = %q", body["message"])
	}

	if env.students.byID["MIT111aaa"].Skills["AWS"] != 1 {
		t.Errorf("AWS skill count = %d, want 1", env.students.byID["MIT111aaa"].Skills["AWS"])
	}

	// second verdict on the same certificate
	w = env.do(t, http.MethodPut, "/api/teacher/academic-certificates/MIT111aaa/cert-1/review", gin.H{
		"status": "rejected",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second review status = %d, want 400", w.Code)
	}

	// invalid verdict
	w = env.do(t, http.MethodPut, "/api/teacher/academic-certificates/MIT111aaa/cert-1/review", gin.H{
		"status": "maybe",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status review = %d, want 400", w.Code)
	}
}

func TestAddMarksEndpoint(t *testing.T) {
	env := newTestEnv()
	env.students.byID["MIT111aaa"] = &models.Student{StudentID: "MIT111aaa", Name: "Asha"}

	w := env.do(t, http.MethodPost, "/api/students/MIT111aaa/marks", gin.H{
		"semester": 1,
		"year":     1,
		"sgpa":     8.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Marks added successfully" {
		t.Errorf("message = %q", body["message"])
	}
	if body["cgpa"] != 8.5 {
		t.Errorf("cgpa = %v, want 8.5", body["cgpa"])
	}
	student, ok := body["student"].(map[string]interface{})
	if !ok {
		t.Fatal("no student summary in response")
	}
	if student["semesterMarksCount"] != float64(1) {
		t.Errorf("semesterMarksCount = %v, want 1", student["semesterMarksCount"])
	}

	// duplicate (semester, year)
	w = env.do(t, http.MethodPost, "/api/students/MIT111aaa/marks", gin.H{
		"semester": 1,
		"year":     1,
		"sgpa":     9.0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate marks status = %d, want 400", w.Code)
	}

	// missing sgpa
	w = env.do(t, http.MethodPost, "/api/students/MIT111aaa/marks", gin.H{
		"semester": 2,
		"year":     1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields status = %d, want 400", w.Code)
	}
}

func TestSearchQueryValidation(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/search/students?query=a", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "search query must be at least 2 characters" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestMessagingFlow(t *testing.T) {
	env := newTestEnv()
	env.students.byID["MIT111aaa"] = &models.Student{StudentID: "MIT111aaa", Name: "Asha"}
	env.groups.byID["grp-1"] = &models.Group{
		GroupID:  "grp-1",
		Name:     "CS Batch A",
		Teacher:  "MITt1",
		Students: []string{"MIT111aaa"},
	}

	w := env.do(t, http.MethodPost, "/api/messages/send", gin.H{
		"senderId":   "MITt1",
		"senderName": "Prof. Rao",
		"senderType": "teacher",
		"groupId":    "grp-1",
		"subject":    "Exam schedule",
		"message":    "Midterms start Monday.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("send status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["recipientCount"] != float64(1) {
		t.Errorf("recipientCount = %v, want 1", body["recipientCount"])
	}
	messageID, _ := body["messageId"].(string)
	if messageID == "" {
		t.Fatal("no messageId in response")
	}

	w = env.do(t, http.MethodGet, "/api/messages/unread-count/MIT111aaa", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unread-count status = %d, want 200", w.Code)
	}
	if body = decodeBody(t, w); body["unreadCount"] != float64(1) {
		t.Errorf("unreadCount = %v, want 1", body["unreadCount"])
	}

	w = env.do(t, http.MethodPut, "/api/messages/"+messageID+"/read/MIT111aaa", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mark-read status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/messages/unread-count/MIT111aaa", nil)
	if body = decodeBody(t, w); body["unreadCount"] != float64(0) {
		t.Errorf("unreadCount = %v after read, want 0", body["unreadCount"])
	}

	w = env.do(t, http.MethodGet, "/api/messages/student/MIT111aaa", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("inbox status = %d, want 200", w.Code)
	}
	var views []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("inbox is not a JSON array: %v", err)
	}
	if len(views) != 1 || views[0]["isRead"] != true {
		t.Errorf("inbox = %+v, want one read message", views)
	}
}

func TestAdminListingsRequireAdminToken(t *testing.T) {
	env := newTestEnv()

	// no token
	w := env.do(t, http.MethodGet, "/api/admin/students", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", w.Code)
	}

	// student token
	studentToken, err := env.jwt.GenerateToken("MIT111aaa", "Asha", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status with student token = %d, want 403", rec.Code)
	}

	// admin token
	adminToken, err := env.jwt.GenerateToken("MITa1", "Dean", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with admin token = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
}

func TestGroupLifecycle(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/groups", gin.H{
		"name":       "CS Batch A",
		"college":    "MIT",
		"department": "CS",
		"teacher":    "MITt1",
		"students":   []string{"MIT111aaa"},
		"createdBy":  "MITa1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/groups/MITa1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list-by-creator status = %d, want 200", w.Code)
	}
	var groups []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("list is not a JSON array: %v", err)
	}
	if len(groups) != 1 || groups[0]["name"] != "CS Batch A" {
		t.Errorf("groups = %+v, want the created group", groups)
	}

	w = env.do(t, http.MethodGet, "/api/teacher/groups/MITt1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list-by-teacher status = %d, want 200", w.Code)
	}
}
