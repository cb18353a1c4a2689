package dto

import "time"

// SendMessageRequest broadcasts to a group. Every field is required.
type SendMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	SenderName string `json:"senderName" binding:"required"`
	SenderType string `json:"senderType" binding:"required"`
	GroupID    string `json:"groupId" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// SendMessageResponse acknowledges a broadcast.
type SendMessageResponse struct {
	Message        string `json:"message"`
	MessageID      string `json:"messageId"`
	RecipientCount int    `json:"recipientCount"`
}

// StudentMessageView is one message flattened to a single recipient's
// perspective.
type StudentMessageView struct {
	MessageID  string     `json:"_id"`
	SenderID   string     `json:"senderId"`
	SenderName string     `json:"senderName"`
	SenderType string     `json:"senderType"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	GroupName  string     `json:"groupName"`
	CreatedAt  time.Time  `json:"createdAt"`
	IsRead     bool       `json:"isRead"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
}

// UnreadCountResponse carries a student's unread message count.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
