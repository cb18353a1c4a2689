package models

import "time"

// Message is a sender-to-group broadcast. The recipient list is a snapshot
// of the group membership at send time; later group edits do not touch it.
type Message struct {
	MessageID  string      `json:"_id" db:"id"`
	SenderID   string      `json:"senderId" db:"sender_id"`
	SenderName string      `json:"senderName" db:"sender_name"`
	SenderType string      `json:"senderType" db:"sender_type"`
	Subject    string      `json:"subject" db:"subject"`
	Message    string      `json:"message" db:"message"`
	GroupID    string      `json:"groupId" db:"group_id"`
	GroupName  string      `json:"groupName" db:"group_name"`
	Recipients []Recipient `json:"recipients" db:"recipients"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
}

// Recipient is one student's copy of a message with its read state.
type Recipient struct {
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName"`
	IsRead      bool       `json:"isRead"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
}
