package models

import (
	"time"
)

// Conversation is an unordered pair of users, persisted with UserAID < UserBID
// so the pair is unique regardless of who started it.
type Conversation struct {
	ID            int64     `json:"id" db:"id"`
	UserAID       int64     `json:"userAId" db:"user_a_id"`
	UserBID       int64     `json:"userBId" db:"user_b_id"`
	LastMessageAt time.Time `json:"lastMessageAt" db:"last_message_at"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Relations, no db tag
	Other       *User `json:"other,omitempty"`
	UnreadCount int   `json:"unreadCount"`
}

// NormalizeConversationPair orders two user IDs into the canonical (a, b)
// form with a < b used by the conversations unique constraint.
func NormalizeConversationPair(userA, userB int64) (int64, int64) {
	if userA > userB {
		return userB, userA
	}
	return userA, userB
}

// OtherParticipant returns the participant that is not the given user,
// or 0 when the user is not part of the conversation.
func (c *Conversation) OtherParticipant(userID int64) int64 {
	switch userID {
	case c.UserAID:
		return c.UserBID
	case c.UserBID:
		return c.UserAID
	}
	return 0
}

// HasParticipant reports whether the user belongs to the conversation
func (c *Conversation) HasParticipant(userID int64) bool {
	return userID == c.UserAID || userID == c.UserBID
}

// Message defines a direct message within a conversation
type Message struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID int64     `json:"conversationId" db:"conversation_id"`
	SenderID       int64     `json:"senderId" db:"sender_id"`
	ReceiverID     int64     `json:"receiverId" db:"receiver_id"`
	Content        string    `json:"content" db:"content"`
	IsRead         bool      `json:"isRead" db:"is_read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
