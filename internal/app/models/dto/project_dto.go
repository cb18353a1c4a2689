package dto

// CreateProjectRequest adds a portfolio project to a student.
type CreateProjectRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	GithubLink  string `json:"githubLink" binding:"required"`
	DeployLink  string `json:"deployLink"`
}
