package dto

// StudentRegisterRequest is the student sign-up body.
type StudentRegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	College         string `json:"college" binding:"required"`
	Department      string `json:"department" binding:"required"`
	Year            int    `json:"year" binding:"required"`
	Semester        int    `json:"semester" binding:"required"`
	RollNumber      string `json:"rollNumber" binding:"required"`
}

// TeacherRegisterRequest is the teacher sign-up body.
type TeacherRegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	PhoneNumber     string `json:"phoneNumber"`
	Department      string `json:"department" binding:"required"`
	College         string `json:"college" binding:"required"`
	Designation     string `json:"designation"`
	Experience      int    `json:"experience"`
}

// AdminRegisterRequest is the admin sign-up body.
type AdminRegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Institution     string `json:"institution" binding:"required"`
	Department      string `json:"department" binding:"required"`
	Role            string `json:"role"`
}

// LoginRequest is shared by all three login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StudentRegisterResponse acknowledges a student registration.
type StudentRegisterResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"studentId"`
}

// TeacherRegisterResponse acknowledges a teacher registration.
type TeacherRegisterResponse struct {
	Message   string `json:"message"`
	TeacherID string `json:"teacherId"`
	Name      string `json:"name"`
}

// AdminRegisterResponse acknowledges an admin registration.
type AdminRegisterResponse struct {
	Message     string `json:"message"`
	AdminID     string `json:"adminId"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Department  string `json:"department"`
}

// StudentLoginResponse mirrors the original contract plus an access token.
type StudentLoginResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Token     string `json:"token"`
}

// TeacherLoginResponse mirrors the original contract plus an access token.
type TeacherLoginResponse struct {
	Message   string `json:"message"`
	TeacherID string `json:"teacherId"`
	Name      string `json:"name"`
	Token     string `json:"token"`
}

// AdminLoginResponse mirrors the original contract plus an access token.
type AdminLoginResponse struct {
	Message     string `json:"message"`
	AdminID     string `json:"adminId"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Department  string `json:"department"`
	Token       string `json:"token"`
}
