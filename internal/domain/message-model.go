package domain

import (
	"gorm.io/gorm"
)

type MessageType string

const (
	MessageTypeQuestion MessageType = "QUESTION"
	MessageTypeAnswer   MessageType = "ANSWER"
)

type RoomStatus string

const (
	RoomStatusAnswerPending RoomStatus = "ANSWER_PENDING"
	RoomStatusAnswered      RoomStatus = "ANSWERED"
)

// MatchingMessage is one entry in the question/answer thread attached to a
// matching. The thread is append-only; room status is always derived from the
// last message and never stored.
type MatchingMessage struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	MatchingID uint        `gorm:"not null;index" json:"matching_id"`
	Type       MessageType `gorm:"type:varchar(10);not null" json:"type"`
	AuthorID   uint        `gorm:"not null" json:"author_id"`
	Content    string      `gorm:"type:text;not null" json:"content"`

	gorm.Model
}

// DeriveRoomStatus computes the thread status from messages ordered by
// creation time ascending. An empty thread is waiting for its first question.
func DeriveRoomStatus(messages []MatchingMessage) RoomStatus {
	if len(messages) == 0 {
		return RoomStatusAnswerPending
	}
	if messages[len(messages)-1].Type == MessageTypeAnswer {
		return RoomStatusAnswered
	}
	return RoomStatusAnswerPending
}
