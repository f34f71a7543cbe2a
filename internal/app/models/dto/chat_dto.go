package dto

// StartConversationRequest opens (or returns) a conversation with another user
type StartConversationRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// SendMessageRequest is the payload for sending a direct message
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
