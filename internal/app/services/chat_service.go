package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// ChatService handles conversations and direct messages
type ChatService struct {
	messageRepo *repositories.MessageRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(messageRepo *repositories.MessageRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// StartConversation opens (or returns) the conversation between the caller
// and another user.
func (s *ChatService) StartConversation(ctx context.Context, userID, otherID int64) (*models.Conversation, error) {
	if userID == otherID {
		return nil, apperrors.NewValidationError("cannot start a conversation with yourself")
	}

	// make sure the other party exists before creating the pair
	if _, err := s.userRepo.GetRole(ctx, otherID); err != nil {
		return nil, err
	}

	return s.messageRepo.GetOrCreateConversation(ctx, userID, otherID)
}

// ListConversations retrieves the caller's conversations by recent activity
func (s *ChatService) ListConversations(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	return s.messageRepo.ListConversations(ctx, userID)
}

// SendMessage delivers a message into a conversation the caller belongs to
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("message content cannot be empty")
	}

	conv, err := s.messageRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, apperrors.ErrNotParticipant
	}

	msg := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     conv.OtherParticipant(senderID),
		Content:        req.Content,
	}
	if err := s.messageRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessages returns the conversation history oldest first and marks
// messages addressed to the caller as read.
func (s *ChatService) GetMessages(ctx context.Context, conversationID, userID int64) ([]*models.Message, error) {
	conv, err := s.messageRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, apperrors.ErrNotParticipant
	}

	return s.messageRepo.FetchAndAcknowledge(ctx, conversationID, userID)
}

// Participant reports whether a user belongs to a conversation. The live
// message feed uses this before subscribing a socket.
func (s *ChatService) Participant(ctx context.Context, conversationID, userID int64) (bool, error) {
	conv, err := s.messageRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return false, err
	}
	return conv.HasParticipant(userID), nil
}
