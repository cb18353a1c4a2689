package dto

// CreateCollegeRequest registers a college with its initial departments.
type CreateCollegeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Code        string              `json:"code" binding:"required"`
	Address     string              `json:"address"`
	Departments []DepartmentRequest `json:"departments"`
	CreatedBy   string              `json:"createdBy" binding:"required"`
}

// DepartmentRequest adds one department to a college.
type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}
