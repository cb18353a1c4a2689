package dto

// CreateGroupRequest creates a teacher-to-students group. Member identifiers
// are stored verbatim; referential checks are deliberately absent.
type CreateGroupRequest struct {
	Name       string   `json:"name" binding:"required"`
	College    string   `json:"college" binding:"required"`
	Department string   `json:"department" binding:"required"`
	Teacher    string   `json:"teacher" binding:"required"`
	Students   []string `json:"students"`
	CreatedBy  string   `json:"createdBy" binding:"required"`
}

// UpdateGroupRequest fully replaces the three mutable group fields.
type UpdateGroupRequest struct {
	Name     string   `json:"name" binding:"required"`
	Teacher  string   `json:"teacher" binding:"required"`
	Students []string `json:"students"`
}
