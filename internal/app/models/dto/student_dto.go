package dto

// ProfileUpdateForm is the multipart profile merge-update. Empty fields are
// left untouched; document files arrive as file parts and become data URIs.
// Skills, languages, and hobbies arrive comma-separated.
type ProfileUpdateForm struct {
	AadharNumber    string   `form:"aadharNumber"`
	MobileNumber    string   `form:"mobileNumber"`
	CollegeEmail    string   `form:"collegeEmail"`
	LinkedinProfile string   `form:"linkedinProfile"`
	GithubProfile   string   `form:"githubProfile"`
	Skills          string   `form:"skills"`
	Languages       string   `form:"languages"`
	Hobbies         string   `form:"hobbies"`
	CurrentSGPA     *float64 `form:"currentSGPA"`
	OverallCGPA     *float64 `form:"overallCGPA"`
}

// StudentSummary is the teacher-dashboard projection of a student.
type StudentSummary struct {
	StudentID  string  `json:"studentId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	College    string  `json:"college"`
	Department string  `json:"department"`
	Year       int     `json:"year"`
	Semester   int     `json:"semester"`
	CGPA       float64 `json:"cgpa"`
}
