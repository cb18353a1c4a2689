package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/logger"
)

// GroupService handles teacher-to-students group management
type GroupService struct {
	groupStore GroupStore
}

// NewGroupService creates a new group service instance
func NewGroupService(groupStore GroupStore) *GroupService {
	return &GroupService{groupStore: groupStore}
}

// Create registers a new group. Member identifiers are stored as given;
// there is no referential check against the student table.
func (s *GroupService) Create(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		GroupID:    uuid.NewString(),
		Name:       req.Name,
		College:    req.College,
		Department: req.Department,
		Teacher:    req.Teacher,
		Students:   req.Students,
		CreatedBy:  req.CreatedBy,
	}

	if err := s.groupStore.Create(ctx, group); err != nil {
		return nil, err
	}

	logger.Info().
		Str("groupId", group.GroupID).
		Str("teacher", group.Teacher).
		Int("students", len(group.Students)).
		Msg("Group created")
	return group, nil
}

// ListByCreator returns groups created by the given admin.
func (s *GroupService) ListByCreator(ctx context.Context, createdBy string) ([]*models.Group, error) {
	return s.groupStore.ListByCreatedBy(ctx, createdBy)
}

// ListByTeacher returns groups assigned to the given teacher.
func (s *GroupService) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Group, error) {
	return s.groupStore.ListByTeacher(ctx, teacherID)
}

// Update replaces a group's name, teacher, and membership.
func (s *GroupService) Update(ctx context.Context, groupID string, req *dto.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.groupStore.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Teacher = req.Teacher
	group.Students = req.Students

	if err := s.groupStore.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}
