package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/logger"
)

// MessageService handles group broadcast messaging and per-recipient read
// state
type MessageService struct {
	messageStore MessageStore
	groupStore   GroupStore
	studentStore StudentStore
}

// NewMessageService creates a new message service instance
func NewMessageService(messageStore MessageStore, groupStore GroupStore, studentStore StudentStore) *MessageService {
	return &MessageService{
		messageStore: messageStore,
		groupStore:   groupStore,
		studentStore: studentStore,
	}
}

// Send broadcasts a message to every current member of the group. The
// recipient list is a snapshot: students added to the group later never see
// the message, and names are resolved at send time.
func (s *MessageService) Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	group, err := s.groupStore.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	members, err := s.studentStore.ListByStudentIDs(ctx, group.Students)
	if err != nil {
		return nil, err
	}

	recipients := make([]models.Recipient, 0, len(members))
	for _, m := range members {
		recipients = append(recipients, models.Recipient{
			StudentID:   m.StudentID,
			StudentName: m.Name,
		})
	}

	message := &models.Message{
		MessageID:  uuid.NewString(),
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		SenderType: req.SenderType,
		Subject:    req.Subject,
		Message:    req.Message,
		GroupID:    group.GroupID,
		GroupName:  group.Name,
		Recipients: recipients,
	}

	if err := s.messageStore.Create(ctx, message); err != nil {
		return nil, err
	}

	logger.Info().
		Str("messageId", message.MessageID).
		Str("groupId", group.GroupID).
		Int("recipients", len(recipients)).
		Msg("Message sent")
	return message, nil
}

// ListForStudent returns the student's inbox, newest first, each message
// flattened to that student's read state.
func (s *MessageService) ListForStudent(ctx context.Context, studentID string) ([]dto.StudentMessageView, error) {
	messages, err := s.messageStore.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	views := []dto.StudentMessageView{}
	for _, m := range messages {
		for _, r := range m.Recipients {
			if r.StudentID != studentID {
				continue
			}
			views = append(views, dto.StudentMessageView{
				MessageID:  m.MessageID,
				SenderID:   m.SenderID,
				SenderName: m.SenderName,
				SenderType: m.SenderType,
				Subject:    m.Subject,
				Message:    m.Message,
				GroupName:  m.GroupName,
				CreatedAt:  m.CreatedAt,
				IsRead:     r.IsRead,
				ReadAt:     r.ReadAt,
			})
			break
		}
	}
	return views, nil
}

// MarkRead flags the student's copy of the message as read. Marking twice is
// a no-op that keeps the first read timestamp.
func (s *MessageService) MarkRead(ctx context.Context, messageID, studentID string) error {
	return s.messageStore.MarkRead(ctx, messageID, studentID)
}

// UnreadCount reports how many messages the student has not read yet.
func (s *MessageService) UnreadCount(ctx context.Context, studentID string) (int, error) {
	return s.messageStore.UnreadCount(ctx, studentID)
}
