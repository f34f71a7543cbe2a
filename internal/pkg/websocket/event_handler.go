package websocket

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/services"
)

// EventHandler persists chat events arriving over websockets so the message
// history matches what connected clients saw.
type EventHandler struct {
	chatService *services.ChatService
	hub         *Hub
	logger      zerolog.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(chatService *services.ChatService, hub *Hub, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		chatService: chatService,
		hub:         hub,
		logger:      logger,
	}
}

// Start begins consuming events from the hub
func (h *EventHandler) Start() {
	events := make(chan *Event, 64)
	h.hub.AddListener(events)
	go h.process(events)
}

func (h *EventHandler) process(events chan *Event) {
	for event := range events {
		// events with an ID were already persisted by the REST path
		if event.Content == "" || event.ID != 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		msg, err := h.chatService.SendMessage(ctx, event.ConversationID, event.SenderID, &dto.SendMessageRequest{
			Content: event.Content,
		})
		cancel()

		if err != nil {
			h.logger.Error().
				Err(err).
				Int64("conversationId", event.ConversationID).
				Int64("senderId", event.SenderID).
				Msg("Failed to persist chat event")
			continue
		}
		event.ID = msg.ID
	}
}
